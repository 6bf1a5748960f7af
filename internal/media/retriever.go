package media

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/far4599/yt-trim/internal/filename"
	"github.com/far4599/yt-trim/internal/models"
	"github.com/far4599/yt-trim/internal/pkg/log"
	"github.com/pkg/errors"
)

var ErrInvalidRange = fmt.Errorf("invalid time range")

// Retriever downloads a video, trims it and hands back the extract in memory.
// Download and trim run one after another on the calling goroutine.
type Retriever struct {
	downloader Downloader
	trimmer    Trimmer
	tempDir    string
}

func NewRetriever(downloader Downloader, trimmer Trimmer, tempDir string) *Retriever {
	return &Retriever{
		downloader: downloader,
		trimmer:    trimmer,
		tempDir:    tempDir,
	}
}

func (r *Retriever) Clip(ctx context.Context, req models.DownloadRequest, onProgress models.ProgressFunc) (*models.Clip, error) {
	if onProgress == nil {
		onProgress = func(models.Progress) {}
	}

	if !req.Range.Valid(req.Info.Duration) {
		return nil, errors.Wrapf(ErrInvalidRange, "%s of a %ds video", req.Range, req.Info.Duration)
	}

	dir, err := os.MkdirTemp(r.tempDir, "yt-trim-")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create temp dir")
	}
	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			log.Logger.Warnw("failed to remove temp dir", "dir", dir, "error", err)
		}
	}()

	onProgress(models.Progress{Stage: models.StageDownloading})

	src, err := r.downloader.Download(ctx, req.URL, req.Kind, dir, onProgress)
	if err != nil {
		onProgress(models.Progress{Stage: models.StageFailed, Detail: err.Error()})
		return nil, errors.Wrap(err, "download failed")
	}

	onProgress(models.Progress{Stage: models.StageTrimming, Detail: req.Range.String()})

	trimmed, err := r.trimmer.Trim(ctx, src, req.Range, req.Kind)
	if err != nil {
		onProgress(models.Progress{Stage: models.StageFailed, Detail: err.Error()})
		return nil, errors.Wrap(err, "trim failed")
	}

	data, err := os.ReadFile(trimmed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read trimmed file")
	}

	for _, p := range []string{src, trimmed} {
		if err := os.Remove(p); err != nil {
			log.Logger.Warnw("failed to remove temp file", "path", p, "error", err)
		}
	}

	title := req.Title
	if title == "" {
		title = req.Info.Title
	}

	clip := &models.Clip{
		Data:     data,
		Filename: filename.WithExt(title, req.Info.ID, req.Kind.Ext()),
		MIMEType: req.Kind.MIMEType(),
	}

	size := humanize.Bytes(uint64(len(data)))
	onProgress(models.Progress{Stage: models.StageDone, Detail: size})

	log.Logger.Infow("clip ready",
		"id", req.Info.ID,
		"kind", req.Kind,
		"range", req.Range.String(),
		"file", clip.Filename,
		"size", size,
	)

	return clip, nil
}
