package repository

import (
	"testing"
	"time"

	"github.com/far4599/yt-trim/internal/models"
	"github.com/far4599/yt-trim/internal/timerange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemRepositoryInfo(t *testing.T) {
	repo, err := NewInMemRepository(2)
	require.NoError(t, err)

	repo.SaveInfo("https://youtu.be/a", &models.VideoInfo{ID: "a"})
	repo.SaveInfo("https://youtu.be/b", &models.VideoInfo{ID: "b"})

	info, ok := repo.GetInfo("https://youtu.be/a")
	require.True(t, ok)
	assert.Equal(t, "a", info.ID)

	// "a" was used last, so "b" goes first
	repo.SaveInfo("https://youtu.be/c", &models.VideoInfo{ID: "c"})
	_, ok = repo.GetInfo("https://youtu.be/b")
	assert.False(t, ok)
}

func TestInMemRepositoryRequest(t *testing.T) {
	repo, err := NewInMemRepository(10)
	require.NoError(t, err)

	id := repo.SaveRequest(&models.CachedDownloadRequest{
		URL:   "https://youtu.be/a",
		Range: timerange.TimeRange{Start: 1, End: 2},
	})
	assert.LessOrEqual(t, len(id), 64)

	req, ok := repo.GetRequest(id)
	require.True(t, ok)
	assert.Equal(t, "https://youtu.be/a", req.URL)

	_, ok = repo.GetRequest("missing")
	assert.False(t, ok)
}

func TestNewInMemRepositoryInvalidSize(t *testing.T) {
	_, err := NewInMemRepository(0)
	assert.Error(t, err)
}

func TestSessionRepository(t *testing.T) {
	repo := NewSessionRepository(time.Minute)

	s, created := repo.Get("")
	require.True(t, created)
	require.NotEmpty(t, s.ID)

	again, created := repo.Get(s.ID)
	assert.False(t, created)
	assert.Same(t, s, again)

	other, created := repo.Get("unknown-id")
	assert.True(t, created)
	assert.NotEqual(t, s.ID, other.ID)
	assert.Equal(t, 2, repo.Count())
}
