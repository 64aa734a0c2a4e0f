package client

import (
	"context"
	"fmt"
	"net/http"
)

// RatingsAPI shapes rating requests.
type RatingsAPI struct {
	client *Client
}

// CreateRatingRequest is the payload for submitting a rating.
type CreateRatingRequest struct {
	BookID       int64  `json:"book_id"`
	RatingTypeID int64  `json:"rating_type_id"`
	Comment      string `json:"comment,omitempty"`
}

func (a *RatingsAPI) Types(ctx context.Context) ([]RatingType, error) {
	types := make([]RatingType, 0)
	if err := a.client.request(ctx, http.MethodGet, "/ratings/types", nil, nil, &types); err != nil {
		return nil, err
	}
	return types, nil
}

func (a *RatingsAPI) Create(ctx context.Context, req CreateRatingRequest) (*Rating, error) {
	var rating Rating
	if err := a.client.request(ctx, http.MethodPost, "/ratings", nil, req, &rating); err != nil {
		return nil, err
	}
	return &rating, nil
}

func (a *RatingsAPI) BookStats(ctx context.Context, bookID int64) (*BookRatingStats, error) {
	var stats BookRatingStats
	path := fmt.Sprintf("/ratings/books/%d/stats", bookID)
	if err := a.client.request(ctx, http.MethodGet, path, nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
