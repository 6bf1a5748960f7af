package ytdlp

import (
	"regexp"
	"strconv"

	"github.com/far4599/yt-trim/internal/models"
)

var (
	ansiRe = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`)

	// [download]  42.3% of ~  3.45MiB at    1.20MiB/s ETA 00:03 (frag 2/9)
	// [download] 100% of    3.45MiB in 00:00:02 at 1.63MiB/s
	progressRe = regexp.MustCompile(
		`^\[download\]\s+(\d+(?:\.\d+)?)%` +
			`(?:\s+of\s+~?\s*\S+)?` +
			`(?:\s+in\s+\S+)?` +
			`(?:\s+at\s+(\S+))?` +
			`(?:\s+ETA\s+(\S+))?`,
	)
)

// StripANSI removes terminal colour and cursor control sequences.
func StripANSI(s string) string {
	return ansiRe.ReplaceAllString(s, "")
}

// ParseProgress extracts percent, speed and ETA from a yt-dlp
// "[download]" line printed with --newline.
func ParseProgress(line string) (models.Progress, bool) {
	m := progressRe.FindStringSubmatch(StripANSI(line))
	if m == nil {
		return models.Progress{}, false
	}

	pct, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return models.Progress{}, false
	}

	p := models.Progress{
		Stage:   models.StageDownloading,
		Percent: pct,
		Speed:   m[2],
		ETA:     m[3],
	}
	if p.Speed == "Unknown" {
		p.Speed = ""
	}
	if p.ETA == "Unknown" {
		p.ETA = ""
	}

	return p, true
}
