package app

import (
	"context"

	"github.com/far4599/yt-trim/internal/app/bot"
	"github.com/far4599/yt-trim/internal/app/web"
	"github.com/far4599/yt-trim/internal/config"
	"github.com/far4599/yt-trim/internal/media"
	"github.com/far4599/yt-trim/internal/metadata"
	"github.com/far4599/yt-trim/internal/pkg/log"
	"github.com/far4599/yt-trim/internal/pkg/ytdlp"
	"github.com/far4599/yt-trim/internal/repository"
	"github.com/far4599/yt-trim/internal/service"
	"golang.org/x/sync/errgroup"
)

type App struct {
	conf *config.Config
}

func NewApp(conf *config.Config) *App {
	return &App{
		conf: conf,
	}
}

// NewVideoService wires the yt-dlp/ffmpeg backed service described by conf.
func NewVideoService(conf *config.Config) (*service.VideoService, error) {
	inMemRepo, err := repository.NewInMemRepository(conf.Metadata.CacheSize)
	if err != nil {
		return nil, err
	}

	runner := ytdlp.NewRunner(conf.YtDlp.Binary, conf.YtDlp.CacheDir)

	var fetcher metadata.InfoFetcher = metadata.NewYtDlpFetcher(runner)
	if conf.Metadata.Backend == config.BackendLibrary {
		fetcher = metadata.NewLibraryFetcher()
	}

	retriever := media.NewRetriever(
		media.NewYtDlpDownloader(runner),
		media.NewFFmpegTrimmer(conf.FFmpeg.Binary),
		conf.TempDir,
	)

	return service.NewVideoService(conf.YtDlp.InfoAttempts, inMemRepo, fetcher, retriever)
}

// Run serves the web UI and, when a token is configured, the telegram bot.
func (app *App) Run(ctx context.Context) error {
	vs, err := NewVideoService(app.conf)
	if err != nil {
		return err
	}

	errGroup, errCtx := errgroup.WithContext(ctx)

	errGroup.Go(func() error {
		return web.NewServer(app.conf, vs).Run(errCtx)
	})

	if app.conf.BotEnabled() {
		errGroup.Go(func() error {
			return bot.NewApp(app.conf, vs).Run(errCtx)
		})
	} else {
		log.Logger.Info("telegram bot disabled, no token configured")
	}

	return errGroup.Wait()
}
