package model

import "errors"

var (
	// ErrAlreadyRated: at most one rating per (book, origin address) pair.
	ErrAlreadyRated = errors.New("already rated this book")

	ErrRatingTypeNotFound = errors.New("rating type not found")
)
