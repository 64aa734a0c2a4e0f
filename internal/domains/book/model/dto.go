package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Sort columns accepted by the list endpoint. Anything else is rejected
// before it can reach the ORDER BY clause.
const (
	SortCreatedAt = "created_at"
	SortHotValue  = "hot_value"
	SortDownloads = "downloads"
)

// ListBooksQuery carries the filters of GET /books.
type ListBooksQuery struct {
	Page       int    `form:"page"`
	Limit      int    `form:"limit"`
	Sort       string `form:"sort"`
	CategoryID int64  `form:"category_id"`
	Keyword    string `form:"keyword"`
}

// Normalize applies defaults for omitted fields.
func (q *ListBooksQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > 100 {
		q.Limit = 10
	}
	if q.Sort == "" {
		q.Sort = SortCreatedAt
	}
}

func (q ListBooksQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Sort,
			validation.In(SortCreatedAt, SortHotValue, SortDownloads).Error("sort must be one of created_at, hot_value, downloads"),
		),
		validation.Field(&q.CategoryID, validation.Min(int64(0))),
		validation.Field(&q.Keyword, validation.Length(0, 100)),
	)
}

// Offset converts the 1-based page into a row offset.
func (q ListBooksQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// ListBooksResult is the paginated payload of GET /books.
type ListBooksResult struct {
	List  []Book `json:"list"`
	Total int    `json:"total"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}
