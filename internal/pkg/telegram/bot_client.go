package telegram

import (
	"context"
	"time"

	"github.com/far4599/yt-trim/internal/pkg/log"
	"github.com/pkg/errors"
	"gopkg.in/tucnak/telebot.v3"
)

// BotAPIUploadLimit is the largest file the bot API accepts from a bot.
const BotAPIUploadLimit = 50 << 20

const pollTimeout = 10 * time.Second

// BotClient wraps a long polling telebot instance.
type BotClient struct {
	bot *telebot.Bot
}

func NewBotClient(token string) (*BotClient, error) {
	pref := telebot.Settings{
		Token:  token,
		Poller: &telebot.LongPoller{Timeout: pollTimeout},
		OnError: func(err error, c telebot.Context) {
			if c != nil && c.Sender() != nil {
				log.Logger.Errorw("bot handler failed", "user", c.Sender().ID, "error", err)
				return
			}
			log.Logger.Errorw("bot failed", "error", err)
		},
	}

	bot, err := telebot.NewBot(pref)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create telegram bot")
	}

	return &BotClient{
		bot: bot,
	}, nil
}

func (c *BotClient) Bot() *telebot.Bot {
	return c.bot
}

// Run polls for updates until ctx is cancelled.
func (c *BotClient) Run(ctx context.Context) error {
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		log.Logger.Infow("bot listens to new messages", "username", c.bot.Me.Username)
		c.bot.Start()
	}()

	select {
	case <-ctx.Done():
		c.bot.Stop()
		<-stopped
		return nil
	case <-stopped:
		return errors.New("telegram poller stopped")
	}
}
