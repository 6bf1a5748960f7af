package media

import (
	"context"

	"github.com/far4599/yt-trim/internal/models"
	"github.com/far4599/yt-trim/internal/timerange"
)

// Downloader fetches the best stream of kind for url into dir and returns
// the path of the written file.
type Downloader interface {
	Download(ctx context.Context, url string, kind models.MediaKind, dir string, onProgress models.ProgressFunc) (string, error)
}

// Trimmer cuts input to r without re-encoding and returns the path of the
// new file. The input is left in place.
type Trimmer interface {
	Trim(ctx context.Context, input string, r timerange.TimeRange, kind models.MediaKind) (string, error)
}
