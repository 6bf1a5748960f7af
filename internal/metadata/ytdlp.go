package metadata

import (
	"context"
	"math"

	"github.com/far4599/yt-trim/internal/models"
	"github.com/far4599/yt-trim/internal/pkg/ytdlp"
	"github.com/pkg/errors"
	"github.com/valyala/fastjson"
)

// YtDlpFetcher reads metadata from `yt-dlp -j`.
type YtDlpFetcher struct {
	runner *ytdlp.Runner
}

func NewYtDlpFetcher(runner *ytdlp.Runner) *YtDlpFetcher {
	return &YtDlpFetcher{runner: runner}
}

func (f *YtDlpFetcher) FetchInfo(ctx context.Context, url string) (*models.VideoInfo, error) {
	out, err := f.runner.Run(ctx, url, nil, "--skip-download", "--no-playlist", "-j")
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}

	return parseInfo(out)
}

func parseInfo(b []byte) (*models.VideoInfo, error) {
	v, err := new(fastjson.Parser).ParseBytes(b)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse yt-dlp json")
	}

	id := string(v.GetStringBytes("id"))
	if id == "" {
		return nil, ErrNotFound
	}

	info := &models.VideoInfo{
		ID:       id,
		Title:    string(v.GetStringBytes("title")),
		Duration: int(math.Round(v.GetFloat64("duration"))),
		ThumbURL: string(v.GetStringBytes("thumbnail")),
	}

	if info.ThumbURL == "" {
		info.ThumbURL = bestThumbnail(v.GetArray("thumbnails"))
	}

	return info, nil
}

// bestThumbnail picks the widest entry of yt-dlp's thumbnails list.
func bestThumbnail(thumbs []*fastjson.Value) string {
	var (
		best  string
		width = -1
	)
	for _, t := range thumbs {
		u := string(t.GetStringBytes("url"))
		if u == "" {
			continue
		}
		if w := t.GetInt("width"); w > width {
			best, width = u, w
		}
	}

	return best
}
