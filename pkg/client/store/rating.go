package store

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"bookden/pkg/client"
)

// RatingsAPI is the slice of the SDK the rating store consumes.
type RatingsAPI interface {
	Types(ctx context.Context) ([]client.RatingType, error)
	Create(ctx context.Context, req client.CreateRatingRequest) (*client.Rating, error)
	BookStats(ctx context.Context, bookID int64) (*client.BookRatingStats, error)
}

// RatingStore caches the rating type catalogue and one book's stats.
type RatingStore struct {
	notifier

	api    RatingsAPI
	logger zerolog.Logger

	mu               sync.Mutex
	ratingTypes      []client.RatingType
	currentBookStats *client.BookRatingStats
	loading          bool
	err              string
}

func NewRatingStore(api RatingsAPI, logger zerolog.Logger) *RatingStore {
	return &RatingStore{api: api, logger: logger}
}

func (s *RatingStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
	s.notify()
}

func (s *RatingStore) finish() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
	s.notify()
}

func (s *RatingStore) recordError(op string, err error) {
	s.logger.Error().Err(err).Str("op", op).Msg("rating store operation failed")
	s.mu.Lock()
	s.err = err.Error()
	s.mu.Unlock()
}

// FetchRatingTypes loads the catalogue. Failures record the error and
// keep the previous catalogue.
func (s *RatingStore) FetchRatingTypes(ctx context.Context) {
	s.begin()
	defer s.finish()

	types, err := s.api.Types(ctx)
	if err != nil {
		s.recordError("fetch_rating_types", err)
		return
	}

	s.mu.Lock()
	s.ratingTypes = types
	s.mu.Unlock()
}

// FetchBookRatingStats loads the stats for one book.
func (s *RatingStore) FetchBookRatingStats(ctx context.Context, bookID int64) {
	s.begin()
	defer s.finish()

	stats, err := s.api.BookStats(ctx, bookID)
	if err != nil {
		s.recordError("fetch_book_rating_stats", err)
		return
	}

	s.mu.Lock()
	s.currentBookStats = stats
	s.mu.Unlock()
}

// CreateRating submits a rating and, on success, re-fetches the book's
// stats so the cached view reflects the write. The caller gets the
// submission error, duplicate conflicts included.
func (s *RatingStore) CreateRating(ctx context.Context, bookID, ratingTypeID int64, comment string) error {
	s.begin()
	defer s.finish()

	_, err := s.api.Create(ctx, client.CreateRatingRequest{
		BookID:       bookID,
		RatingTypeID: ratingTypeID,
		Comment:      comment,
	})
	if err != nil {
		s.recordError("create_rating", err)
		return err
	}

	stats, err := s.api.BookStats(ctx, bookID)
	if err != nil {
		// The write landed; a failed refresh only leaves stats stale.
		s.recordError("refresh_book_rating_stats", err)
		return nil
	}

	s.mu.Lock()
	s.currentBookStats = stats
	s.mu.Unlock()
	return nil
}

func (s *RatingStore) RatingTypes() []client.RatingType {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]client.RatingType(nil), s.ratingTypes...)
}

// CurrentBookStats returns nil until a fetch succeeds.
func (s *RatingStore) CurrentBookStats() *client.BookRatingStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentBookStats
}

func (s *RatingStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *RatingStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
