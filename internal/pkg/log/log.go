package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger = zap.Must(zap.NewProduction()).Sugar()
	Logger = zap.Must(zap.NewDevelopment()).Sugar()
)

// SetLevel rebuilds Logger with the given level ("debug", "info", ...).
// Production encoding is used when production is true.
func SetLevel(level string, production bool) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewDevelopmentConfig()
	if production {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build()
	if err != nil {
		return err
	}

	Logger = l.Sugar()

	return nil
}
