package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{name: "watch url", url: "https://www.youtube.com/watch?v=abc123", want: true},
		{name: "bare host", url: "https://youtube.com/watch?v=abc123", want: true},
		{name: "mobile host", url: "https://m.youtube.com/watch?v=abc123&t=10", want: true},
		{name: "blank v", url: "https://www.youtube.com/watch?v=", want: false},
		{name: "v without value", url: "https://www.youtube.com/watch?v", want: false},
		{name: "blank v with other params", url: "https://www.youtube.com/watch?v=&list=x", want: false},
		{name: "short link", url: "https://youtu.be/abc123", want: true},
		{name: "short link trailing slash", url: "https://youtu.be/abc123/", want: true},
		{name: "short link without id", url: "https://youtu.be/", want: false},
		{name: "watch without v", url: "https://www.youtube.com/watch?list=PL1", want: false},
		{name: "other host", url: "https://example.com/watch?v=abc", want: false},
		{name: "not a url", url: "not a url", want: false},
		{name: "empty", url: "", want: false},
		{name: "malformed", url: "http://[::1", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidURL(tt.url))
		})
	}
}

func TestVideoID(t *testing.T) {
	id, ok := VideoID("https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42")
	assert.True(t, ok)
	assert.Equal(t, "dQw4w9WgXcQ", id)

	id, ok = VideoID("https://youtu.be/dQw4w9WgXcQ")
	assert.True(t, ok)
	assert.Equal(t, "dQw4w9WgXcQ", id)

	_, ok = VideoID("https://vimeo.com/123")
	assert.False(t, ok)

	id, ok = VideoID("https://www.youtube.com/watch?v=&list=x")
	assert.False(t, ok)
	assert.Empty(t, id)
}
