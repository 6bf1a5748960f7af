package youtube

import (
	"net/url"
	"strings"
)

const shortHost = "youtu.be"

var webHosts = map[string]struct{}{
	"www.youtube.com": {},
	"youtube.com":     {},
	"m.youtube.com":   {},
}

// IsValidURL reports whether s looks like a YouTube watch or short link.
// No network access is performed.
func IsValidURL(s string) bool {
	_, ok := VideoID(s)
	return ok
}

// VideoID returns the video id carried by a URL accepted by IsValidURL.
func VideoID(s string) (string, bool) {
	u, err := url.Parse(s)
	if err != nil {
		return "", false
	}

	if _, ok := webHosts[u.Host]; ok {
		// a blank v counts as missing
		v := u.Query()["v"]
		if len(v) == 0 || v[0] == "" {
			return "", false
		}
		return v[0], true
	}

	if u.Host == shortHost {
		id := strings.Trim(u.Path, "/")
		if id == "" {
			return "", false
		}
		return id, true
	}

	return "", false
}
