package media

import (
	"context"
	"os"
	"path/filepath"

	"github.com/far4599/yt-trim/internal/models"
	"github.com/far4599/yt-trim/internal/pkg/ytdlp"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	audioFormat = "bestaudio/best"
	videoFormat = "bv*[ext=mp4]+ba[ext=m4a]/b[ext=mp4]/b"
)

// YtDlpDownloader downloads with the yt-dlp binary. Audio is converted to
// mp3 and video remuxed into mp4 so the resulting extension is known upfront.
type YtDlpDownloader struct {
	runner *ytdlp.Runner
}

func NewYtDlpDownloader(runner *ytdlp.Runner) *YtDlpDownloader {
	return &YtDlpDownloader{runner: runner}
}

func (d *YtDlpDownloader) Download(ctx context.Context, url string, kind models.MediaKind, dir string, onProgress models.ProgressFunc) (string, error) {
	name := uuid.New().String()
	path := filepath.Join(dir, name+"."+kind.Ext())

	args := append(downloadArgs(kind),
		"-o", filepath.Join(dir, name+".%(ext)s"),
		"--no-playlist",
		"--newline",
		"--force-overwrites",
	)

	_, err := d.runner.Run(ctx, url, func(line string) {
		if onProgress == nil {
			return
		}
		if p, ok := ytdlp.ParseProgress(line); ok {
			onProgress(p)
		}
	}, args...)
	if err != nil {
		return "", err
	}

	if _, err = os.Stat(path); err != nil {
		return "", errors.Wrapf(err, "yt-dlp did not produce '%s'", path)
	}

	return path, nil
}

func downloadArgs(kind models.MediaKind) []string {
	if kind == models.MediaVideo {
		return []string{
			"-f", videoFormat,
			"--merge-output-format", "mp4",
			"--remux-video", "mp4",
		}
	}

	return []string{
		"-f", audioFormat,
		"-x",
		"--audio-format", "mp3",
	}
}
