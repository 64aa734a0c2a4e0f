package service

import (
	"context"
	"strings"
	"time"

	"bookden/internal/domains/book/model"
	"bookden/internal/domains/book/repository"
	"bookden/pkg/cache"
	"bookden/pkg/logger"
)

// ServiceInterface is the book domain's business logic contract.
type ServiceInterface interface {
	ListBooks(ctx context.Context, query model.ListBooksQuery) (*model.ListBooksResult, error)
	GetBookDetail(ctx context.Context, id int64) (*model.BookDetail, error)
	SearchBooks(ctx context.Context, keyword string, limit int) ([]model.Book, error)
	LatestBooks(ctx context.Context, limit int) ([]model.Book, error)
	HotBooks(ctx context.Context, limit int) ([]model.Book, error)
	Categories(ctx context.Context) ([]model.Category, error)
}

const (
	categoriesCacheKey = "books:categories"
	categoriesCacheTTL = 10 * time.Minute

	maxSuggestions = 10
	defaultLimit   = 10
)

type bookService struct {
	repo  repository.BookRepository
	cache cache.Cache
}

func NewBookService(repo repository.BookRepository, cache cache.Cache) ServiceInterface {
	return &bookService{repo: repo, cache: cache}
}

func (s *bookService) ListBooks(ctx context.Context, query model.ListBooksQuery) (*model.ListBooksResult, error) {
	query.Normalize()
	if err := query.Validate(); err != nil {
		return nil, err
	}

	books, total, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, err
	}

	return &model.ListBooksResult{
		List:  books,
		Total: total,
		Page:  query.Page,
		Limit: query.Limit,
	}, nil
}

func (s *bookService) GetBookDetail(ctx context.Context, id int64) (*model.BookDetail, error) {
	detail, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Viewing a detail page counts toward hotness. Failure here must not
	// break the read path.
	if err := s.repo.IncrementHotValue(ctx, id); err != nil {
		logger.Error("failed to bump hot value", err)
	}

	return detail, nil
}

func (s *bookService) SearchBooks(ctx context.Context, keyword string, limit int) ([]model.Book, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, model.ErrInvalidKeyword
	}
	if limit < 1 || limit > maxSuggestions {
		limit = maxSuggestions
	}
	return s.repo.Search(ctx, keyword, limit)
}

func (s *bookService) LatestBooks(ctx context.Context, limit int) ([]model.Book, error) {
	return s.repo.Latest(ctx, normalizeLimit(limit))
}

func (s *bookService) HotBooks(ctx context.Context, limit int) ([]model.Book, error) {
	return s.repo.Hot(ctx, normalizeLimit(limit))
}

// Categories serves the category list through the cache layer; the list is
// reference data that rarely changes and backs every landing page render.
func (s *bookService) Categories(ctx context.Context) ([]model.Category, error) {
	var cached []model.Category
	found, err := s.cache.Get(ctx, categoriesCacheKey, &cached)
	if err != nil {
		logger.Error("category cache read failed", err)
	}
	if found {
		return cached, nil
	}

	categories, err := s.repo.Categories(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, categoriesCacheKey, categories, categoriesCacheTTL); err != nil {
		logger.Error("category cache write failed", err)
	}

	return categories, nil
}

func normalizeLimit(limit int) int {
	if limit < 1 || limit > 100 {
		return defaultLimit
	}
	return limit
}
