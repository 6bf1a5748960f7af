package media

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/far4599/yt-trim/internal/models"
	"github.com/far4599/yt-trim/internal/timerange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrimArgs(t *testing.T) {
	r := timerange.TimeRange{Start: 10, End: 3725}

	assert.Equal(t, []string{
		"-y", "-hide_banner", "-loglevel", "error",
		"-i", "in.mp3", "-ss", "00:00:10", "-to", "01:02:05",
		"-acodec", "copy", "out.mp3",
	}, trimArgs("in.mp3", "out.mp3", r, models.MediaAudio))

	assert.Equal(t, []string{
		"-y", "-hide_banner", "-loglevel", "error",
		"-i", "in.mp4", "-ss", "00:00:10", "-to", "01:02:05",
		"-c", "copy", "out.mp4",
	}, trimArgs("in.mp4", "out.mp4", r, models.MediaVideo))
}

func TestTrimmedPath(t *testing.T) {
	assert.Equal(t, "/tmp/x/abc.trim.mp3", trimmedPath("/tmp/x/abc.mp3"))
	assert.Equal(t, "/tmp/x/abc.trim", trimmedPath("/tmp/x/abc"))
}

func fakeFFmpeg(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not supported on windows")
	}

	path := filepath.Join(t.TempDir(), "ffmpeg")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))

	return path
}

func TestFFmpegTrimmerNonZeroExit(t *testing.T) {
	bin := fakeFFmpeg(t, "echo 'in.mp3: Invalid data found when processing input' >&2\nexit 1\n")

	_, err := NewFFmpegTrimmer(bin).Trim(context.Background(), "in.mp3", timerange.TimeRange{Start: 0, End: 1}, models.MediaAudio)

	var te *TrimError
	require.ErrorAs(t, err, &te)
	assert.Contains(t, te.Output, "Invalid data found")
}

func TestFFmpegTrimmerWritesOutput(t *testing.T) {
	// the last argument is the output path
	bin := fakeFFmpeg(t, `for a; do out="$a"; done
echo trimmed > "$out"
`)
	in := filepath.Join(t.TempDir(), "src.mp4")

	out, err := NewFFmpegTrimmer(bin).Trim(context.Background(), in, timerange.TimeRange{Start: 1, End: 2}, models.MediaVideo)
	require.NoError(t, err)

	assert.Equal(t, trimmedPath(in), out)
	assert.FileExists(t, out)
}
