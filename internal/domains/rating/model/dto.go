package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateRatingRequest is the body of POST /ratings.
type CreateRatingRequest struct {
	BookID       int64   `json:"book_id"`
	RatingTypeID int64   `json:"rating_type_id"`
	Comment      *string `json:"comment"`
}

func (r CreateRatingRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BookID,
			validation.Required.Error("book_id is required"),
			validation.Min(int64(1)),
		),
		validation.Field(&r.RatingTypeID,
			validation.Required.Error("rating_type_id is required"),
			validation.Min(int64(1)),
		),
		validation.Field(&r.Comment,
			validation.Length(0, 500).Error("comment must not exceed 500 characters"),
		),
	)
}
