package config

import (
	"context"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/viper"
)

const (
	BackendYtDlp   = "ytdlp"
	BackendLibrary = "library"
)

type Config struct {
	Log struct {
		Level      string `mapstructure:"level" env:"LOG_LEVEL"`
		Production bool   `mapstructure:"production" env:"LOG_PRODUCTION"`
	} `mapstructure:"log"`
	HTTP struct {
		Addr       string        `mapstructure:"addr" env:"HTTP_ADDR"`
		SessionTTL time.Duration `mapstructure:"session_ttl" env:"HTTP_SESSION_TTL"`
	} `mapstructure:"http"`
	YtDlp struct {
		Binary       string `mapstructure:"binary" env:"YTDLP_BINARY"`
		CacheDir     string `mapstructure:"cache_dir" env:"YTDLP_CACHE_DIR"`
		InfoAttempts uint   `mapstructure:"info_attempts" env:"YTDLP_INFO_ATTEMPTS"`
	} `mapstructure:"ytdlp"`
	FFmpeg struct {
		Binary string `mapstructure:"binary" env:"FFMPEG_BINARY"`
	} `mapstructure:"ffmpeg"`
	Metadata struct {
		Backend   string `mapstructure:"backend" env:"METADATA_BACKEND"`
		CacheSize int    `mapstructure:"cache_size" env:"METADATA_CACHE_SIZE"`
	} `mapstructure:"metadata"`
	TempDir  string `mapstructure:"temp_dir" env:"TEMP_DIR"`
	Telegram struct {
		Bot struct {
			Token string `mapstructure:"token" env:"TELEGRAM_BOT_TOKEN"`
		} `mapstructure:"bot"`
		App struct {
			ID         int    `mapstructure:"id" env:"TELEGRAM_APP_ID"`
			Hash       string `mapstructure:"hash" env:"TELEGRAM_APP_HASH"`
			SessionDir string `mapstructure:"session_dir" env:"TELEGRAM_APP_SESSION_DIR"`
		} `mapstructure:"app"`
	} `mapstructure:"telegram"`
}

// NewConfig reads the yaml file at configPath, or the environment when the
// path is empty, and fills in defaults for everything left unset.
func NewConfig(ctx context.Context, configPath string) (*Config, error) {
	var conf Config
	if len(configPath) == 0 {
		if err := envconfig.Process(ctx, &conf); err != nil {
			return nil, errors.Wrap(err, "failed to process config environment variables")
		}
		conf.setDefaults()
		return &conf, conf.validate()
	}

	f, err := os.Open(configPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open config file '%s'", configPath)
	}
	defer f.Close()

	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(f); err != nil {
		return nil, errors.Wrap(err, "failed to read config yaml file")
	}
	if err := v.Unmarshal(&conf); err != nil {
		return nil, errors.Wrap(err, "failed to decode config yaml file")
	}

	conf.setDefaults()
	return &conf, conf.validate()
}

func (c *Config) setDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = ":8080"
	}
	if c.HTTP.SessionTTL == 0 {
		c.HTTP.SessionTTL = 2 * time.Hour
	}
	if c.YtDlp.Binary == "" {
		c.YtDlp.Binary = "yt-dlp"
	}
	if c.YtDlp.CacheDir == "" {
		c.YtDlp.CacheDir = "/tmp/yt-dlp"
	}
	if c.YtDlp.InfoAttempts == 0 {
		c.YtDlp.InfoAttempts = 1
	}
	if c.FFmpeg.Binary == "" {
		c.FFmpeg.Binary = "ffmpeg"
	}
	if c.Metadata.Backend == "" {
		c.Metadata.Backend = BackendYtDlp
	}
	if c.Metadata.CacheSize == 0 {
		c.Metadata.CacheSize = 1_000
	}
	if c.TempDir == "" {
		c.TempDir = os.TempDir()
	}
	if c.Telegram.App.SessionDir == "" {
		c.Telegram.App.SessionDir = "sessions"
	}
}

func (c *Config) validate() error {
	switch c.Metadata.Backend {
	case BackendYtDlp, BackendLibrary:
	default:
		return errors.Errorf("unknown metadata backend '%s'", c.Metadata.Backend)
	}
	if c.Metadata.CacheSize < 0 {
		return errors.New("metadata cache size must not be negative")
	}
	return nil
}

// BotEnabled reports whether the telegram frontend should run.
func (c *Config) BotEnabled() bool {
	return c.Telegram.Bot.Token != ""
}

// UserBotEnabled reports whether large clips can be uploaded via MTProto.
func (c *Config) UserBotEnabled() bool {
	return c.BotEnabled() && c.Telegram.App.ID != 0 && c.Telegram.App.Hash != ""
}
