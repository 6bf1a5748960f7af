package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInfo(t *testing.T) {
	info, err := parseInfo([]byte(`{
		"id": "abc123",
		"title": "Some / Song",
		"duration": 212.6,
		"thumbnail": "https://i.ytimg.com/vi/abc123/maxresdefault.jpg",
		"formats": []
	}`))
	require.NoError(t, err)

	assert.Equal(t, "abc123", info.ID)
	assert.Equal(t, "Some / Song", info.Title)
	assert.Equal(t, 213, info.Duration)
	assert.Equal(t, "https://i.ytimg.com/vi/abc123/maxresdefault.jpg", info.ThumbURL)
}

func TestParseInfoThumbnailFallback(t *testing.T) {
	info, err := parseInfo([]byte(`{
		"id": "abc123",
		"duration": 10,
		"thumbnails": [
			{"url": "https://i.ytimg.com/small.jpg", "width": 120},
			{"url": "https://i.ytimg.com/big.jpg", "width": 1280},
			{"url": "https://i.ytimg.com/mid.jpg", "width": 480}
		]
	}`))
	require.NoError(t, err)

	assert.Equal(t, "https://i.ytimg.com/big.jpg", info.ThumbURL)
	assert.Equal(t, "", info.Title)
}

func TestParseInfoErrors(t *testing.T) {
	_, err := parseInfo([]byte(`not json`))
	assert.Error(t, err)

	_, err = parseInfo([]byte(`{"title": "no id"}`))
	assert.ErrorIs(t, err, ErrNotFound)
}
