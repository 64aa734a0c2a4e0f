package service

import (
	"context"
	"fmt"
	"time"

	"bookden/internal/domains/rating/model"
	"bookden/internal/domains/rating/repository"
	"bookden/pkg/cache"
	"bookden/pkg/logger"
)

// ServiceInterface is the rating domain's business logic contract.
type ServiceInterface interface {
	Types(ctx context.Context) ([]model.RatingType, error)
	CreateRating(ctx context.Context, req model.CreateRatingRequest, ip string, userID *int64) (*model.Rating, error)
	BookStats(ctx context.Context, bookID int64) (*model.BookRatingStats, error)
}

const (
	typesCacheKey = "ratings:types"
	typesCacheTTL = time.Hour
	statsCacheTTL = 5 * time.Minute
)

type ratingService struct {
	repo  repository.RatingRepository
	cache cache.Cache
}

func NewRatingService(repo repository.RatingRepository, cache cache.Cache) ServiceInterface {
	return &ratingService{repo: repo, cache: cache}
}

func statsCacheKey(bookID int64) string {
	return fmt.Sprintf("ratings:stats:%d", bookID)
}

func (s *ratingService) Types(ctx context.Context) ([]model.RatingType, error) {
	var cached []model.RatingType
	found, err := s.cache.Get(ctx, typesCacheKey, &cached)
	if err != nil {
		logger.Error("rating type cache read failed", err)
	}
	if found {
		return cached, nil
	}

	types, err := s.repo.Types(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, typesCacheKey, types, typesCacheTTL); err != nil {
		logger.Error("rating type cache write failed", err)
	}

	return types, nil
}

func (s *ratingService) CreateRating(ctx context.Context, req model.CreateRatingRequest, ip string, userID *int64) (*model.Rating, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	known, err := s.repo.TypeExists(ctx, req.RatingTypeID)
	if err != nil {
		return nil, err
	}
	if !known {
		return nil, model.ErrRatingTypeNotFound
	}

	// Pre-insert check carries the friendly rejection; the unique
	// constraint closes the remaining race window with the same error.
	exists, err := s.repo.ExistsByBookAndIP(ctx, req.BookID, ip)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.ErrAlreadyRated
	}

	rating := &model.Rating{
		BookID:       req.BookID,
		RatingTypeID: req.RatingTypeID,
		UserID:       userID,
		Comment:      req.Comment,
		IP:           ip,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Create(ctx, rating); err != nil {
		return nil, err
	}

	// The book's cached stats are stale now.
	if err := s.cache.Delete(ctx, statsCacheKey(req.BookID)); err != nil {
		logger.Error("rating stats cache invalidation failed", err)
	}

	return rating, nil
}

func (s *ratingService) BookStats(ctx context.Context, bookID int64) (*model.BookRatingStats, error) {
	key := statsCacheKey(bookID)

	var cached model.BookRatingStats
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		logger.Error("rating stats cache read failed", err)
	}
	if found {
		return &cached, nil
	}

	stats, err := s.repo.Stats(ctx, bookID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, stats, statsCacheTTL); err != nil {
		logger.Error("rating stats cache write failed", err)
	}

	return stats, nil
}
