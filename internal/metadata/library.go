package metadata

import (
	"context"

	"github.com/far4599/yt-trim/internal/models"
	"github.com/kkdai/youtube/v2"
	"github.com/pkg/errors"
)

// LibraryFetcher reads metadata in-process through kkdai/youtube.
type LibraryFetcher struct {
	client *youtube.Client
}

func NewLibraryFetcher() *LibraryFetcher {
	return &LibraryFetcher{client: &youtube.Client{}}
}

func (f *LibraryFetcher) FetchInfo(ctx context.Context, url string) (*models.VideoInfo, error) {
	video, err := f.client.GetVideoContext(ctx, url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get video info")
	}

	info := &models.VideoInfo{
		ID:       video.ID,
		Title:    video.Title,
		Duration: int(video.Duration.Seconds()),
	}

	var width uint
	for _, t := range video.Thumbnails {
		if info.ThumbURL == "" || t.Width > width {
			info.ThumbURL, width = t.URL, t.Width
		}
	}

	return info, nil
}
