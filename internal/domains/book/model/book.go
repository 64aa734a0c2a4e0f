package model

import "time"

// Book represents a browsable book. Books are created server-side by an
// ingestion process outside this service and are read-only here.
type Book struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	Cover      *string   `json:"cover"`
	Intro      *string   `json:"intro"`
	FileSize   int64     `json:"file_size"`
	CategoryID *int64    `json:"category_id"`
	Tag        *string   `json:"tag"`
	HotValue   int64     `json:"hot_value"`
	Downloads  int64     `json:"downloads"`
	CreatedAt  time.Time `json:"created_at"`
}

// BookDetail is a Book plus file metadata and its embedded ratings.
type BookDetail struct {
	Book

	MD5        *string `json:"md5"`
	FileName   *string `json:"file_name"`
	StoredName *string `json:"stored_name"`
	FileURL    *string `json:"file_url"`
	Parts      int     `json:"parts"`

	Ratings []BookRating `json:"ratings"`
}

// BookRating is a rating row joined with its rating-type name and level,
// as embedded in a book detail response.
type BookRating struct {
	ID           int64     `json:"id"`
	BookID       int64     `json:"book_id"`
	RatingTypeID int64     `json:"rating_type_id"`
	RatingName   string    `json:"rating_name"`
	Level        int       `json:"level"`
	Comment      *string   `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}

// Category is a flat browsing category.
type Category struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	BookCount int    `json:"book_count"`
}
