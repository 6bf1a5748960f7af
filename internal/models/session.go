package models

import (
	"sync"

	"github.com/far4599/yt-trim/internal/timerange"
	"go.uber.org/atomic"
)

// Session is the state of one browser session. Handlers take the lock for
// everything except progress, which the download goroutine updates on its own.
type Session struct {
	ID string

	mu    sync.Mutex
	URL   string
	Info  *VideoInfo
	Title string
	Time  timerange.State
	Err   string

	progress *atomic.String
	busy     *atomic.Bool
}

func NewSession(id string) *Session {
	return &Session{
		ID:       id,
		progress: atomic.NewString(""),
		busy:     atomic.NewBool(false),
	}
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// LoadVideo stores freshly fetched metadata and clears the status of the
// previous download. The time selection is kept when the same duration is
// loaded again.
func (s *Session) LoadVideo(url string, info *VideoInfo) {
	s.URL = url
	s.Info = info
	s.Title = info.Title
	s.Time = s.Time.Reset(info.Duration)
	s.Err = ""
	s.progress.Store("")
}

// ClearVideo forgets the loaded video and the status of its last download.
func (s *Session) ClearVideo(url string) {
	s.URL = url
	s.Info = nil
	s.Title = ""
	s.progress.Store("")
}

func (s *Session) SetProgress(p Progress) {
	s.progress.Store(p.String())
}

func (s *Session) Progress() string {
	return s.progress.Load()
}

// TryStart marks the session busy. It returns false if a download is
// already running.
func (s *Session) TryStart() bool {
	return s.busy.CompareAndSwap(false, true)
}

func (s *Session) Done() {
	s.busy.Store(false)
}

func (s *Session) Busy() bool {
	return s.busy.Load()
}
