package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/far4599/yt-trim/internal/config"
	"github.com/far4599/yt-trim/internal/models"
	"github.com/far4599/yt-trim/internal/pkg/log"
	"github.com/far4599/yt-trim/internal/pkg/telegram"
	"github.com/far4599/yt-trim/internal/timerange"
	"github.com/far4599/yt-trim/internal/youtube"
	"github.com/gotd/td/tg"
	"github.com/pkg/errors"
	"gopkg.in/tucnak/telebot.v3"
)

const (
	videoEmoji = "🎥"
	audioEmoji = "🎧"

	helpText = "Send me a YouTube link, optionally followed by start and end time:\n" +
		"https://youtu.be/dQw4w9WgXcQ 0:30 1:15"
)

// Uploader sends clips too large for the bot API.
type Uploader interface {
	UploadClip(ctx context.Context, to tg.InputPeerClass, title string, clip *models.Clip, audio bool) error
}

type TelegramMessageHandler struct {
	conf *config.Config

	vs       *VideoService
	uploader Uploader
}

// NewMessageHandler builds the bot handlers. uploader may be nil, large
// clips are refused then.
func NewMessageHandler(conf *config.Config, vs *VideoService, uploader Uploader) *TelegramMessageHandler {
	return &TelegramMessageHandler{
		conf:     conf,
		vs:       vs,
		uploader: uploader,
	}
}

func (h *TelegramMessageHandler) OnStart() telebot.HandlerFunc {
	return func(m telebot.Context) error {
		return m.Send(helpText)
	}
}

func (h *TelegramMessageHandler) OnNewMessage() telebot.HandlerFunc {
	return func(m telebot.Context) (err error) {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		url, pending, ok := parseMessage(m.Text())
		if !ok {
			return m.Reply(ErrInvalidURL.Error())
		}

		tmpMsg, err := m.Bot().Send(m.Sender(), "gathering info")
		if err != nil {
			return err
		}
		defer func() {
			if err != nil {
				defer m.Bot().Send(m.Sender(), fmt.Sprintf("error: '%s'", err))
			}

			m.Bot().Delete(tmpMsg)
		}()

		m.Notify(telebot.Typing)

		info, state, id, err := h.prepareRequest(ctx, url, pending)
		if err != nil {
			return err
		}

		msg, opts := createVideoInfoMessage(info, state, id)

		return m.Send(msg, opts...)
	}
}

func (h *TelegramMessageHandler) OnCallback() telebot.HandlerFunc {
	return func(m telebot.Context) (err error) {
		defer func() {
			if err != nil {
				log.Logger.Errorw("callback failed", "error", err)
				m.Send(fmt.Sprintf("error: '%s'", err))
			}
		}()

		defer m.Respond()

		kindStr, id, ok := strings.Cut(strings.TrimSpace(m.Callback().Data), "|")
		if !ok {
			return errors.New("malformed callback data")
		}

		kind, err := models.ParseMediaKind(kindStr)
		if err != nil {
			return err
		}

		cached, ok := h.vs.GetRequest(id)
		if !ok {
			return errors.Wrap(ErrNotFound, "request expired, send the link again")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Hour)
		defer cancel()

		status, err := m.Bot().Send(m.Sender(), "starting download")
		if err != nil {
			return err
		}
		defer m.Bot().Delete(status)

		clip, err := h.vs.Clip(ctx, models.DownloadRequest{
			URL:   cached.URL,
			Kind:  kind,
			Range: cached.Range,
			Info:  cached.Info,
		}, statusUpdater(m.Bot(), status))
		if err != nil {
			return err
		}

		return h.sendClip(ctx, m, cached.Info.Title, clip, kind)
	}
}

func (h *TelegramMessageHandler) sendClip(ctx context.Context, m telebot.Context, title string, clip *models.Clip, kind models.MediaKind) error {
	audio := kind == models.MediaAudio

	if len(clip.Data) > telegram.BotAPIUploadLimit {
		if h.uploader == nil {
			return errors.Errorf("clip is too large to send (%s)", humanize.Bytes(uint64(len(clip.Data))))
		}
		return h.uploader.UploadClip(ctx, &tg.InputPeerUser{UserID: m.Sender().ID}, title, clip, audio)
	}

	file := telebot.FromReader(bytes.NewReader(clip.Data))
	if audio {
		m.Notify(telebot.UploadingAudio)
		return m.Send(&telebot.Audio{
			File:     file,
			Title:    title,
			FileName: clip.Filename,
			MIME:     clip.MIMEType,
		})
	}

	m.Notify(telebot.UploadingVideo)
	return m.Send(&telebot.Video{
		File:      file,
		Caption:   title,
		FileName:  clip.Filename,
		MIME:      clip.MIMEType,
		Streaming: true,
	})
}

// statusUpdater edits msg when the stage changes or every ten percent.
func statusUpdater(bot *telebot.Bot, msg *telebot.Message) models.ProgressFunc {
	var (
		lastStage  models.Stage
		lastBucket = -1
	)

	return func(p models.Progress) {
		bucket := int(p.Percent) / 10
		if p.Stage == lastStage && (p.Stage != models.StageDownloading || bucket == lastBucket) {
			return
		}
		lastStage, lastBucket = p.Stage, bucket

		if _, err := bot.Edit(msg, p.String()); err != nil {
			log.Logger.Debugw("failed to update status message", "error", err)
		}
	}
}

// prepareRequest looks up url, applies the requested range and stores the
// request for the inline buttons.
func (h *TelegramMessageHandler) prepareRequest(ctx context.Context, url string, pending pendingRange) (*models.VideoInfo, timerange.State, string, error) {
	info, err := h.vs.GetVideoInfo(ctx, url)
	if err != nil {
		return nil, timerange.State{}, "", err
	}

	state := pending.apply(info.Duration)

	id := h.vs.SaveRequest(&models.CachedDownloadRequest{
		URL:   url,
		Range: state.Range(),
		Info:  *info,
	})

	return info, state, id, nil
}

// pendingRange holds the optional start/end texts of a message.
type pendingRange struct {
	start, end string
}

func (r pendingRange) apply(duration int) timerange.State {
	s := timerange.NewState(duration)
	if r.end != "" {
		s = s.EditEnd(r.end)
	}
	if r.start != "" {
		s = s.EditStart(r.start)
	}
	return s
}

// parseMessage splits "<url> [start] [end]".
func parseMessage(text string) (string, pendingRange, bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 || len(fields) > 3 || !youtube.IsValidURL(fields[0]) {
		return "", pendingRange{}, false
	}

	var r pendingRange
	if len(fields) > 1 {
		r.start = fields[1]
	}
	if len(fields) > 2 {
		r.end = fields[2]
	}

	return fields[0], r, true
}

func createVideoInfoMessage(info *models.VideoInfo, state timerange.State, requestID string) (msg any, options []any) {
	caption := fmt.Sprintf("%s\n%s - %s (of %s)", info.Title, state.StartText, state.EndText, timerange.Format(info.Duration))

	if len(info.ThumbURL) > 0 {
		msg = &telebot.Photo{
			File: telebot.File{
				FileURL: info.ThumbURL,
			},
			Caption: caption,
		}
	} else {
		msg = caption
	}

	if !state.Range().Valid(info.Duration) {
		return msg, nil
	}

	inlineMenu := &telebot.ReplyMarkup{}
	inlineMenu.Inline(inlineMenu.Row(
		inlineMenu.Data(audioEmoji+" MP3", string(models.MediaAudio), requestID),
		inlineMenu.Data(videoEmoji+" MP4", string(models.MediaVideo), requestID),
	))

	options = append(options, inlineMenu)

	return
}
