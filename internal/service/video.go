package service

import (
	"context"
	"fmt"

	"github.com/avast/retry-go/v4"
	"github.com/far4599/yt-trim/internal/metadata"
	"github.com/far4599/yt-trim/internal/models"
	"github.com/far4599/yt-trim/internal/pkg/log"
	"github.com/far4599/yt-trim/internal/repository"
	"github.com/far4599/yt-trim/internal/youtube"
	"github.com/pkg/errors"
)

var (
	ErrInvalidURL = fmt.Errorf("not a valid YouTube URL")
	ErrNotFound   = metadata.ErrNotFound
)

// Clipper produces a trimmed extract for a request.
type Clipper interface {
	Clip(ctx context.Context, req models.DownloadRequest, onProgress models.ProgressFunc) (*models.Clip, error)
}

type VideoService struct {
	maxRetry uint
	repo     *repository.InMemRepository
	fetcher  metadata.InfoFetcher
	clipper  Clipper
}

func NewVideoService(maxRetry uint, repo *repository.InMemRepository, fetcher metadata.InfoFetcher, clipper Clipper) (*VideoService, error) {
	if maxRetry == 0 {
		maxRetry = 1
	}

	return &VideoService{
		maxRetry: maxRetry,
		repo:     repo,
		fetcher:  fetcher,
		clipper:  clipper,
	}, nil
}

// GetVideoInfo returns metadata for url, served from the cache after the
// first successful lookup.
func (s *VideoService) GetVideoInfo(ctx context.Context, url string) (*models.VideoInfo, error) {
	if !youtube.IsValidURL(url) {
		return nil, ErrInvalidURL
	}

	if info, ok := s.repo.GetInfo(url); ok {
		return info, nil
	}

	var info *models.VideoInfo
	err := retry.Do(
		func() error {
			res, errF := s.fetcher.FetchInfo(ctx, url)
			if errF != nil {
				log.Logger.Debugw("video info attempt failed", "url", url, "error", errF)
				return errF
			}

			info = res

			return nil
		},
		retry.Context(ctx),
		retry.Attempts(s.maxRetry),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get info for '%s'", url)
	}

	if info.ID == "" {
		if id, ok := youtube.VideoID(url); ok {
			info.ID = id
		}
	}

	s.repo.SaveInfo(url, info)

	return info, nil
}

// Clip downloads and trims. There is no retry, a failure ends the request.
func (s *VideoService) Clip(ctx context.Context, req models.DownloadRequest, onProgress models.ProgressFunc) (*models.Clip, error) {
	if !youtube.IsValidURL(req.URL) {
		return nil, ErrInvalidURL
	}

	return s.clipper.Clip(ctx, req, onProgress)
}

// SaveRequest remembers a pending request for a frontend that can only carry
// a short id, telegram inline buttons for instance.
func (s *VideoService) SaveRequest(req *models.CachedDownloadRequest) string {
	return s.repo.SaveRequest(req)
}

func (s *VideoService) GetRequest(id string) (*models.CachedDownloadRequest, bool) {
	return s.repo.GetRequest(id)
}
