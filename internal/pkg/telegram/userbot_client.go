package telegram

import (
	"context"
	"os"
	"path/filepath"

	"github.com/far4599/yt-trim/internal/config"
	"github.com/far4599/yt-trim/internal/models"
	"github.com/far4599/yt-trim/internal/pkg/log"
	"github.com/gotd/td/session"
	"github.com/gotd/td/telegram"
	"github.com/gotd/td/telegram/message"
	"github.com/gotd/td/telegram/message/styling"
	"github.com/gotd/td/telegram/uploader"
	"github.com/gotd/td/tg"
	"github.com/pkg/errors"
)

// UserBotClient logs in through MTProto with the bot token. It is used for
// clips over the bot API upload limit.
type UserBotClient struct {
	conf *config.Config

	client *telegram.Client
	ready  chan struct{}
}

func NewUserBotClient(conf *config.Config) *UserBotClient {
	sessionDir := conf.Telegram.App.SessionDir

	opts := telegram.Options{
		Logger:    log.Logger.Desugar(),
		NoUpdates: true,
		SessionStorage: &session.FileStorage{
			Path: filepath.Join(sessionDir, "session.json"),
		},
	}

	return &UserBotClient{
		conf:   conf,
		client: telegram.NewClient(conf.Telegram.App.ID, conf.Telegram.App.Hash, opts),
		ready:  make(chan struct{}),
	}
}

// Run keeps the connection open until ctx is cancelled.
func (c *UserBotClient) Run(ctx context.Context) error {
	sessionDir := c.conf.Telegram.App.SessionDir
	if err := os.MkdirAll(sessionDir, 0700); err != nil {
		return errors.Wrapf(err, "failed to create sessions dir '%s'", sessionDir)
	}

	return c.client.Run(ctx, func(ctx context.Context) error {
		status, err := c.client.Auth().Status(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to get auth status")
		}

		if !status.Authorized {
			if _, err := c.client.Auth().Bot(ctx, c.conf.Telegram.Bot.Token); err != nil {
				return errors.Wrap(err, "failed to login as userbot")
			}
		}

		log.Logger.Info("userbot connected")
		close(c.ready)

		<-ctx.Done()
		return ctx.Err()
	})
}

// UploadClip sends clip from memory to the peer as audio or video.
func (c *UserBotClient) UploadClip(ctx context.Context, to tg.InputPeerClass, title string, clip *models.Clip, audio bool) error {
	select {
	case <-c.ready:
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "userbot is not connected")
	}

	up := NewUploaderProgress()
	defer up.Close()

	go func() {
		for p := range up.ProgressChan() {
			log.Logger.Debugw("uploading clip", "file", clip.Filename, "progress", p)
		}
	}()

	api := tg.NewClient(c.client)
	u := uploader.NewUploader(api).WithProgress(up)
	s := message.NewSender(api).WithUploader(u)

	f, err := u.FromBytes(ctx, clip.Filename, clip.Data)
	if err != nil {
		return errors.Wrapf(err, "failed to upload '%s'", clip.Filename)
	}

	var md message.MediaOption
	if audio {
		md = message.Audio(f).Title(title).Performer(title)
	} else {
		md = message.Video(f, styling.Plain(title))
	}

	if _, err = s.To(to).Media(ctx, md); err != nil {
		return errors.Wrap(err, "failed to send clip")
	}

	return nil
}
