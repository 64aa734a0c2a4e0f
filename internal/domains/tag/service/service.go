package service

import (
	"context"
	"time"

	"bookden/internal/domains/tag/model"
	"bookden/internal/domains/tag/repository"
	"bookden/pkg/cache"
	"bookden/pkg/logger"
)

// ServiceInterface is the tag domain's business logic contract.
type ServiceInterface interface {
	Cloud(ctx context.Context) ([]model.TagCloudEntry, error)
}

const (
	cloudCacheKey = "tags:cloud"
	cloudCacheTTL = 30 * time.Minute
)

type tagService struct {
	repo  repository.TagRepository
	cache cache.Cache
}

func NewTagService(repo repository.TagRepository, cache cache.Cache) ServiceInterface {
	return &tagService{repo: repo, cache: cache}
}

func (s *tagService) Cloud(ctx context.Context) ([]model.TagCloudEntry, error) {
	var cached []model.TagCloudEntry
	found, err := s.cache.Get(ctx, cloudCacheKey, &cached)
	if err != nil {
		logger.Error("tag cloud cache read failed", err)
	}
	if found {
		return cached, nil
	}

	tags, err := s.repo.Cloud(ctx)
	if err != nil {
		return nil, err
	}
	assignWeights(tags)

	if err := s.cache.Set(ctx, cloudCacheKey, tags, cloudCacheTTL); err != nil {
		logger.Error("tag cloud cache write failed", err)
	}

	return tags, nil
}

// assignWeights scales use counts onto the 1-10 display range relative to
// the most used tag.
func assignWeights(tags []model.TagCloudEntry) {
	var max int64
	for _, tag := range tags {
		if tag.UseCount > max {
			max = tag.UseCount
		}
	}
	if max == 0 {
		for i := range tags {
			tags[i].Weight = 1
		}
		return
	}

	for i := range tags {
		weight := int(tags[i].UseCount * 10 / max)
		if weight < 1 {
			weight = 1
		}
		tags[i].Weight = weight
	}
}
