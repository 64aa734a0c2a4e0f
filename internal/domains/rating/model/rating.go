package model

import "time"

// RatingType is a severity-levelled verdict a reader can attach to a book.
type RatingType struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Level       int    `json:"level"`
}

// Rating references one book and one rating type. A rating is attributed to
// a requester either by account or by originating network address.
type Rating struct {
	ID           int64     `json:"id"`
	BookID       int64     `json:"book_id"`
	RatingTypeID int64     `json:"rating_type_id"`
	UserID       *int64    `json:"user_id"`
	Comment      *string   `json:"comment"`
	IP           string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// RatingTypeStats is a rating type with its share of a book's ratings.
type RatingTypeStats struct {
	RatingType
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// BookRatingStats aggregates all ratings of one book by type.
type BookRatingStats struct {
	BookID       int64             `json:"book_id"`
	TotalRatings int               `json:"total_ratings"`
	RatingTypes  []RatingTypeStats `json:"rating_types"`
}
