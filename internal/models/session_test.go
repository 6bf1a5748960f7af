package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionLoadVideoClearsProgress(t *testing.T) {
	s := NewSession("id")
	s.LoadVideo("https://youtu.be/a", &VideoInfo{ID: "a", Title: "A", Duration: 30})
	s.SetProgress(Progress{Stage: StageDone, Detail: "1.2 MB"})
	assert.Equal(t, "done: 1.2 MB", s.Progress())

	s.LoadVideo("https://youtu.be/b", &VideoInfo{ID: "b", Title: "B", Duration: 60})
	assert.Empty(t, s.Progress())
	assert.Equal(t, "B", s.Title)
	assert.Equal(t, "00:01:00", s.Time.EndText)
}

func TestSessionClearVideoClearsProgress(t *testing.T) {
	s := NewSession("id")
	s.LoadVideo("https://youtu.be/a", &VideoInfo{ID: "a", Duration: 30})
	s.SetProgress(Progress{Stage: StageFailed, Detail: "video unavailable"})

	s.ClearVideo("not a url")
	assert.Empty(t, s.Progress())
	assert.Nil(t, s.Info)
	assert.Equal(t, "not a url", s.URL)
}

func TestSessionTryStart(t *testing.T) {
	s := NewSession("id")

	assert.True(t, s.TryStart())
	assert.False(t, s.TryStart())
	assert.True(t, s.Busy())

	s.Done()
	assert.False(t, s.Busy())
}
