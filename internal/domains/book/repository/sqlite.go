package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"bookden/internal/domains/book/model"
)

type sqliteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates the SQLite-backed book repository.
func NewSQLiteRepository(db *sql.DB) BookRepository {
	return &sqliteRepository{db: db}
}

const bookColumns = `id, title, author, cover, intro, file_size, category_id, tag, hot_value, downloads, created_at`

// buildWhereClause translates list filters into a WHERE clause and args.
// Both the count query and the page query run over the same clause so the
// reported total always matches the filter.
func buildWhereClause(query model.ListBooksQuery) (string, []interface{}) {
	conditions := []string{"1=1"}
	args := []interface{}{}

	if query.CategoryID > 0 {
		conditions = append(conditions, "category_id = ?")
		args = append(args, query.CategoryID)
	}

	if query.Keyword != "" {
		conditions = append(conditions, "(title LIKE ? OR author LIKE ? OR intro LIKE ?)")
		pattern := "%" + query.Keyword + "%"
		args = append(args, pattern, pattern, pattern)
	}

	return strings.Join(conditions, " AND "), args
}

func (r *sqliteRepository) List(ctx context.Context, query model.ListBooksQuery) ([]model.Book, int, error) {
	whereClause, args := buildWhereClause(query)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM books WHERE %s", whereClause)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count query failed: %w", err)
	}

	// Sort column is whitelisted by the DTO before it gets here.
	listQuery := fmt.Sprintf(
		"SELECT %s FROM books WHERE %s ORDER BY %s DESC LIMIT ? OFFSET ?",
		bookColumns, whereClause, query.Sort,
	)
	args = append(args, query.Limit, query.Offset())

	books, err := r.queryBooks(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}

	return books, total, nil
}

func (r *sqliteRepository) GetByID(ctx context.Context, id int64) (*model.BookDetail, error) {
	detail := &model.BookDetail{}
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, author, cover, intro, file_size, category_id, tag,
		       hot_value, downloads, created_at,
		       md5, file_name, stored_name, file_url, parts
		FROM books WHERE id = ?`, id)

	err := row.Scan(
		&detail.ID, &detail.Title, &detail.Author, &detail.Cover, &detail.Intro,
		&detail.FileSize, &detail.CategoryID, &detail.Tag,
		&detail.HotValue, &detail.Downloads, &detail.CreatedAt,
		&detail.MD5, &detail.FileName, &detail.StoredName, &detail.FileURL, &detail.Parts,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get book %d: %w", id, err)
	}

	ratings, err := r.bookRatings(ctx, id)
	if err != nil {
		return nil, err
	}
	detail.Ratings = ratings

	return detail, nil
}

func (r *sqliteRepository) bookRatings(ctx context.Context, bookID int64) ([]model.BookRating, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT r.id, r.book_id, r.rating_type_id, rt.name, rt.level, r.comment, r.created_at
		FROM book_ratings r
		LEFT JOIN rating_types rt ON r.rating_type_id = rt.id
		WHERE r.book_id = ?
		ORDER BY r.created_at DESC`, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to query book ratings: %w", err)
	}
	defer rows.Close()

	ratings := make([]model.BookRating, 0)
	for rows.Next() {
		var rating model.BookRating
		if err := rows.Scan(
			&rating.ID, &rating.BookID, &rating.RatingTypeID,
			&rating.RatingName, &rating.Level, &rating.Comment, &rating.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan rating row: %w", err)
		}
		ratings = append(ratings, rating)
	}

	return ratings, rows.Err()
}

func (r *sqliteRepository) Search(ctx context.Context, keyword string, limit int) ([]model.Book, error) {
	pattern := "%" + keyword + "%"
	query := fmt.Sprintf(
		"SELECT %s FROM books WHERE title LIKE ? OR author LIKE ? ORDER BY hot_value DESC LIMIT ?",
		bookColumns,
	)
	return r.queryBooks(ctx, query, pattern, pattern, limit)
}

func (r *sqliteRepository) Latest(ctx context.Context, limit int) ([]model.Book, error) {
	query := fmt.Sprintf("SELECT %s FROM books ORDER BY created_at DESC LIMIT ?", bookColumns)
	return r.queryBooks(ctx, query, limit)
}

func (r *sqliteRepository) Hot(ctx context.Context, limit int) ([]model.Book, error) {
	query := fmt.Sprintf("SELECT %s FROM books ORDER BY hot_value DESC LIMIT ?", bookColumns)
	return r.queryBooks(ctx, query, limit)
}

func (r *sqliteRepository) Categories(ctx context.Context) ([]model.Category, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.name, COUNT(b.id)
		FROM categories c
		LEFT JOIN books b ON b.category_id = c.id
		GROUP BY c.id, c.name
		ORDER BY c.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := make([]model.Category, 0)
	for rows.Next() {
		var category model.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.BookCount); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}

func (r *sqliteRepository) IncrementHotValue(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "UPDATE books SET hot_value = hot_value + 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to increment hot value: %w", err)
	}
	return nil
}

func (r *sqliteRepository) queryBooks(ctx context.Context, query string, args ...interface{}) ([]model.Book, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("book query failed: %w", err)
	}
	defer rows.Close()

	books := make([]model.Book, 0)
	for rows.Next() {
		var book model.Book
		if err := rows.Scan(
			&book.ID, &book.Title, &book.Author, &book.Cover, &book.Intro,
			&book.FileSize, &book.CategoryID, &book.Tag,
			&book.HotValue, &book.Downloads, &book.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan book row: %w", err)
		}
		books = append(books, book)
	}

	return books, rows.Err()
}
