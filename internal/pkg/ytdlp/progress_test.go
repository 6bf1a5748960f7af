package ytdlp

import (
	"testing"

	"github.com/far4599/yt-trim/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	assert.Equal(t, " 42.3%", StripANSI("\x1b[0;94m 42.3%\x1b[0m"))
	assert.Equal(t, "plain", StripANSI("plain"))
	assert.Equal(t, "ETA 00:03", StripANSI("\x1b[K\x1b[0;33mETA 00:03\x1b[0m"))
}

func TestParseProgress(t *testing.T) {
	tests := []struct {
		name string
		line string
		want models.Progress
		ok   bool
	}{
		{
			name: "regular line",
			line: "[download]  42.3% of    3.45MiB at    1.20MiB/s ETA 00:03",
			want: models.Progress{Stage: models.StageDownloading, Percent: 42.3, Speed: "1.20MiB/s", ETA: "00:03"},
			ok:   true,
		},
		{
			name: "approximate size with fragments",
			line: "[download]   7.0% of ~  10.00MiB at  512.00KiB/s ETA 00:19 (frag 1/14)",
			want: models.Progress{Stage: models.StageDownloading, Percent: 7, Speed: "512.00KiB/s", ETA: "00:19"},
			ok:   true,
		},
		{
			name: "finished",
			line: "[download] 100% of    3.45MiB in 00:00:02 at 1.63MiB/s",
			want: models.Progress{Stage: models.StageDownloading, Percent: 100, Speed: "1.63MiB/s"},
			ok:   true,
		},
		{
			name: "unknown speed",
			line: "[download]   0.0% of    3.45MiB at  Unknown B/s ETA Unknown",
			want: models.Progress{Stage: models.StageDownloading, Percent: 0},
			ok:   true,
		},
		{
			name: "coloured",
			line: "[download] \x1b[0;94m 55.5%\x1b[0m of 1.00MiB at \x1b[0;32m2.00MiB/s\x1b[0m ETA \x1b[0;33m00:01\x1b[0m",
			want: models.Progress{Stage: models.StageDownloading, Percent: 55.5, Speed: "2.00MiB/s", ETA: "00:01"},
			ok:   true,
		},
		{name: "destination line", line: "[download] Destination: /tmp/x.webm"},
		{name: "other tool", line: "[ExtractAudio] Destination: /tmp/x.mp3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseProgress(tt.line)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
