package metadata

import (
	"context"
	"fmt"

	"github.com/far4599/yt-trim/internal/models"
)

var ErrNotFound = fmt.Errorf("not found")

// InfoFetcher looks up title, duration and thumbnail of a video.
type InfoFetcher interface {
	FetchInfo(ctx context.Context, url string) (*models.VideoInfo, error)
}
