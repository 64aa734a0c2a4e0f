package repository

import (
	"context"

	"bookden/internal/domains/book/model"
)

// BookRepository defines data access for books and categories.
type BookRepository interface {
	// List returns a filtered page of books plus the total row count
	// for the same filter.
	List(ctx context.Context, query model.ListBooksQuery) ([]model.Book, int, error)

	// GetByID returns one book with file metadata and its ratings joined
	// with rating-type name/level. model.ErrBookNotFound when absent.
	GetByID(ctx context.Context, id int64) (*model.BookDetail, error)

	// Search returns title/author suggestion matches, capped at limit.
	Search(ctx context.Context, keyword string, limit int) ([]model.Book, error)

	// Latest returns the most recently ingested books.
	Latest(ctx context.Context, limit int) ([]model.Book, error)

	// Hot returns books ordered by hotness.
	Hot(ctx context.Context, limit int) ([]model.Book, error)

	// Categories returns all categories with their book counts.
	Categories(ctx context.Context) ([]model.Category, error)

	// IncrementHotValue bumps the hotness counter of a book.
	IncrementHotValue(ctx context.Context, id int64) error
}
