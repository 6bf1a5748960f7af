package bot

import (
	"context"

	"github.com/far4599/yt-trim/internal/config"
	"github.com/far4599/yt-trim/internal/pkg/telegram"
	"github.com/far4599/yt-trim/internal/service"
	"golang.org/x/sync/errgroup"
	"gopkg.in/tucnak/telebot.v3"
)

type Bot struct {
	conf *config.Config

	vs *service.VideoService
}

func NewApp(conf *config.Config, vs *service.VideoService) *Bot {
	return &Bot{
		conf: conf,
		vs:   vs,
	}
}

// Run polls for updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	botClient, err := telegram.NewBotClient(b.conf.Telegram.Bot.Token)
	if err != nil {
		return err
	}

	errGroup, errCtx := errgroup.WithContext(ctx)

	var uploader service.Uploader
	if b.conf.UserBotEnabled() {
		userbot := telegram.NewUserBotClient(b.conf)
		uploader = userbot

		errGroup.Go(func() error {
			return userbot.Run(errCtx)
		})
	}

	tmh := service.NewMessageHandler(b.conf, b.vs, uploader)
	b.setMessageHandlers(botClient.Bot(), tmh)

	errGroup.Go(func() error {
		return botClient.Run(errCtx)
	})

	err = errGroup.Wait()
	if ctx.Err() != nil {
		return nil
	}

	return err
}

func (b *Bot) setMessageHandlers(bot *telebot.Bot, tmh *service.TelegramMessageHandler) {
	bot.Handle("/start", tmh.OnStart())
	bot.Handle("/help", tmh.OnStart())
	bot.Handle(telebot.OnText, tmh.OnNewMessage())
	bot.Handle(telebot.OnCallback, tmh.OnCallback())
}
