package media

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/far4599/yt-trim/internal/models"
	"github.com/far4599/yt-trim/internal/timerange"
)

// TrimError is returned when ffmpeg exits with a non-zero status.
type TrimError struct {
	Output string
	Err    error
}

func (e *TrimError) Error() string {
	out := strings.TrimSpace(e.Output)
	if out == "" {
		return fmt.Sprintf("ffmpeg: %v", e.Err)
	}
	return fmt.Sprintf("ffmpeg: %v: %s", e.Err, out)
}

func (e *TrimError) Unwrap() error {
	return e.Err
}

// FFmpegTrimmer cuts with stream copy so no quality is lost.
type FFmpegTrimmer struct {
	binary string
}

func NewFFmpegTrimmer(binary string) *FFmpegTrimmer {
	return &FFmpegTrimmer{binary: binary}
}

func (t *FFmpegTrimmer) Trim(ctx context.Context, input string, r timerange.TimeRange, kind models.MediaKind) (string, error) {
	output := trimmedPath(input)

	cmd := exec.CommandContext(ctx, t.binary, trimArgs(input, output, r, kind)...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return "", &TrimError{Output: out.String(), Err: err}
	}

	return output, nil
}

// trimmedPath turns /tmp/x.mp3 into /tmp/x.trim.mp3.
func trimmedPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + ".trim" + ext
}

func trimArgs(input, output string, r timerange.TimeRange, kind models.MediaKind) []string {
	args := []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-i", input,
		"-ss", timerange.Format(r.Start),
		"-to", timerange.Format(r.End),
	}

	if kind == models.MediaVideo {
		args = append(args, "-c", "copy")
	} else {
		args = append(args, "-acodec", "copy")
	}

	return append(args, output)
}
