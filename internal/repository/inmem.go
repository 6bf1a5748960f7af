package repository

import (
	"github.com/far4599/yt-trim/internal/models"
	"github.com/far4599/yt-trim/internal/pkg/hash"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
)

const (
	infoPrefix    = "info:"
	requestPrefix = "req:"
)

// InMemRepository keeps video metadata and pending bot requests in a
// bounded LRU.
type InMemRepository struct {
	*lru.Cache
}

func NewInMemRepository(size int) (*InMemRepository, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}

	return &InMemRepository{
		Cache: cache,
	}, nil
}

func (r *InMemRepository) SaveInfo(url string, info *models.VideoInfo) {
	r.Add(infoPrefix+hash.Sha256(url), info)
}

func (r *InMemRepository) GetInfo(url string) (*models.VideoInfo, bool) {
	v, ok := r.Get(infoPrefix + hash.Sha256(url))
	if !ok {
		return nil, false
	}

	info, ok := v.(*models.VideoInfo)
	return info, ok
}

// SaveRequest stores req under a fresh id short enough for telegram
// callback data.
func (r *InMemRepository) SaveRequest(req *models.CachedDownloadRequest) string {
	id := uuid.New().String()
	r.Add(requestPrefix+id, req)

	return id
}

func (r *InMemRepository) GetRequest(id string) (*models.CachedDownloadRequest, bool) {
	v, ok := r.Get(requestPrefix + id)
	if !ok {
		return nil, false
	}

	req, ok := v.(*models.CachedDownloadRequest)
	if !ok {
		defer r.Remove(requestPrefix + id)
		return nil, false
	}

	return req, true
}
