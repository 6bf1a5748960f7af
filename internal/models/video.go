package models

import (
	"fmt"

	"github.com/far4599/yt-trim/internal/timerange"
)

// VideoInfo is the metadata snapshot fetched once per URL.
type VideoInfo struct {
	ID       string
	Title    string
	Duration int // seconds
	ThumbURL string
}

type MediaKind string

const (
	MediaAudio MediaKind = "audio"
	MediaVideo MediaKind = "video"
)

func ParseMediaKind(s string) (MediaKind, error) {
	switch MediaKind(s) {
	case MediaAudio, MediaVideo:
		return MediaKind(s), nil
	default:
		return "", fmt.Errorf("unknown media kind '%s'", s)
	}
}

func (k MediaKind) Ext() string {
	if k == MediaVideo {
		return "mp4"
	}
	return "mp3"
}

func (k MediaKind) MIMEType() string {
	if k == MediaVideo {
		return "video/mp4"
	}
	return "audio/mpeg"
}

// DownloadRequest lives for the duration of one fetch.
type DownloadRequest struct {
	URL   string
	Kind  MediaKind
	Range timerange.TimeRange
	// Title is the user-edited name, Info.Title is used when it is empty.
	Title string
	Info  VideoInfo
}

// Clip is a trimmed extract held in memory.
type Clip struct {
	Data     []byte
	Filename string
	MIMEType string
}

// CachedDownloadRequest is what a telegram inline button points at.
type CachedDownloadRequest struct {
	URL   string
	Range timerange.TimeRange
	Info  VideoInfo
}
