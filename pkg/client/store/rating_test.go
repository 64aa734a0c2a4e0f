package store

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookden/pkg/client"
)

type stubRatingsAPI struct {
	types []client.RatingType

	createErr   error
	createCalls int

	stats      *client.BookRatingStats
	statsCalls int
}

func (s *stubRatingsAPI) Types(ctx context.Context) ([]client.RatingType, error) {
	return s.types, nil
}

func (s *stubRatingsAPI) Create(ctx context.Context, req client.CreateRatingRequest) (*client.Rating, error) {
	s.createCalls++
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &client.Rating{ID: 1, BookID: req.BookID, RatingTypeID: req.RatingTypeID}, nil
}

func (s *stubRatingsAPI) BookStats(ctx context.Context, bookID int64) (*client.BookRatingStats, error) {
	s.statsCalls++
	return s.stats, nil
}

func TestCreateRating_RefetchesStats(t *testing.T) {
	api := &stubRatingsAPI{
		stats: &client.BookRatingStats{BookID: 5, TotalRatings: 3},
	}
	store := NewRatingStore(api, zerolog.Nop())

	err := store.CreateRating(context.Background(), 5, 1, "great")
	require.NoError(t, err)

	assert.Equal(t, 1, api.createCalls)
	assert.Equal(t, 1, api.statsCalls, "a successful write re-queries the stats")

	stats := store.CurrentBookStats()
	require.NotNil(t, stats)
	assert.Equal(t, 3, stats.TotalRatings)
}

func TestCreateRating_ConflictPropagates(t *testing.T) {
	api := &stubRatingsAPI{createErr: &client.APIError{Code: 409, Message: "already rated"}}
	store := NewRatingStore(api, zerolog.Nop())

	err := store.CreateRating(context.Background(), 5, 1, "")
	assert.True(t, client.IsConflict(err))
	assert.Zero(t, api.statsCalls, "no refresh after a rejected write")
	assert.Equal(t, "api error 409: already rated", store.Err())
}

func TestFetchRatingTypes(t *testing.T) {
	api := &stubRatingsAPI{types: []client.RatingType{
		{ID: 1, Name: "excellent", Level: 5},
		{ID: 2, Name: "good", Level: 4},
	}}
	store := NewRatingStore(api, zerolog.Nop())

	store.FetchRatingTypes(context.Background())
	assert.Len(t, store.RatingTypes(), 2)
	assert.False(t, store.Loading())
}

func TestFetchBookRatingStats(t *testing.T) {
	api := &stubRatingsAPI{stats: &client.BookRatingStats{BookID: 7, TotalRatings: 1}}
	store := NewRatingStore(api, zerolog.Nop())

	assert.Nil(t, store.CurrentBookStats())
	store.FetchBookRatingStats(context.Background(), 7)

	stats := store.CurrentBookStats()
	require.NotNil(t, stats)
	assert.Equal(t, int64(7), stats.BookID)
}
