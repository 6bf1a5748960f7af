package filename

import (
	"strings"
	"unicode/utf8"
)

const maxLength = 100

var illegal = strings.NewReplacer(
	`\`, "_", "/", "_", ":", "_", "*", "_", "?", "_",
	`"`, "_", "<", "_", ">", "_", "|", "_",
)

// Sanitize makes a title safe to use as a file name on common filesystems.
// Characters forbidden on Windows become '_', control characters are dropped
// and the result is cut to 100 characters. An empty result yields fallbackID.
func Sanitize(title, fallbackID string) string {
	s := illegal.Replace(title)

	s = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)

	if utf8.RuneCountInString(s) > maxLength {
		s = string([]rune(s)[:maxLength])
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return fallbackID
	}

	return s
}

// WithExt sanitizes title and appends ext.
func WithExt(title, fallbackID, ext string) string {
	return Sanitize(title, fallbackID) + "." + ext
}
