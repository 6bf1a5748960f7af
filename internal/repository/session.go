package repository

import (
	"time"

	"github.com/far4599/yt-trim/internal/models"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// SessionRepository holds web sessions until they have been idle for ttl.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		cache: cache.New(ttl, ttl/2),
	}
}

// Get returns the session for id, creating a new one with a fresh id when
// id is unknown or expired. Every access extends the session's lifetime.
func (r *SessionRepository) Get(id string) (sess *models.Session, created bool) {
	if id != "" {
		if v, ok := r.cache.Get(id); ok {
			if s, ok := v.(*models.Session); ok {
				r.cache.Set(id, s, cache.DefaultExpiration)
				return s, false
			}
		}
	}

	s := models.NewSession(uuid.New().String())
	r.cache.Set(s.ID, s, cache.DefaultExpiration)

	return s, true
}

func (r *SessionRepository) Count() int {
	return r.cache.ItemCount()
}
