package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bookden/internal/domains/rating/model"

	"github.com/mattn/go-sqlite3"
)

// RatingRepository defines data access for rating types and book ratings.
type RatingRepository interface {
	// Types returns all rating types ordered by level descending.
	Types(ctx context.Context) ([]model.RatingType, error)

	// TypeExists reports whether a rating type ID is known.
	TypeExists(ctx context.Context, id int64) (bool, error)

	// ExistsByBookAndIP reports whether the origin address already rated
	// the book.
	ExistsByBookAndIP(ctx context.Context, bookID int64, ip string) (bool, error)

	// Create inserts a rating. The UNIQUE(book_id, ip) constraint turns a
	// lost race between check and insert into model.ErrAlreadyRated.
	Create(ctx context.Context, rating *model.Rating) error

	// Stats returns per-type rating counts for a book.
	Stats(ctx context.Context, bookID int64) (*model.BookRatingStats, error)
}

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) RatingRepository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) Types(ctx context.Context) ([]model.RatingType, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, description, level FROM rating_types ORDER BY level DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to query rating types: %w", err)
	}
	defer rows.Close()

	types := make([]model.RatingType, 0)
	for rows.Next() {
		var ratingType model.RatingType
		if err := rows.Scan(&ratingType.ID, &ratingType.Name, &ratingType.Description, &ratingType.Level); err != nil {
			return nil, fmt.Errorf("failed to scan rating type row: %w", err)
		}
		types = append(types, ratingType)
	}

	return types, rows.Err()
}

func (r *sqliteRepository) TypeExists(ctx context.Context, id int64) (bool, error) {
	var exists int
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM rating_types WHERE id = ?)", id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check rating type: %w", err)
	}
	return exists == 1, nil
}

func (r *sqliteRepository) ExistsByBookAndIP(ctx context.Context, bookID int64, ip string) (bool, error) {
	var exists int
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM book_ratings WHERE book_id = ? AND ip = ?)",
		bookID, ip).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check existing rating: %w", err)
	}
	return exists == 1, nil
}

func (r *sqliteRepository) Create(ctx context.Context, rating *model.Rating) error {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO book_ratings (book_id, rating_type_id, user_id, comment, ip)
		VALUES (?, ?, ?, ?, ?)`,
		rating.BookID, rating.RatingTypeID, rating.UserID, rating.Comment, rating.IP)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return model.ErrAlreadyRated
		}
		return fmt.Errorf("failed to insert rating: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read rating id: %w", err)
	}
	rating.ID = id

	return nil
}

func (r *sqliteRepository) Stats(ctx context.Context, bookID int64) (*model.BookRatingStats, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT rt.id, rt.name, rt.description, rt.level, COUNT(r.id)
		FROM rating_types rt
		LEFT JOIN book_ratings r ON r.rating_type_id = rt.id AND r.book_id = ?
		GROUP BY rt.id, rt.name, rt.description, rt.level
		ORDER BY rt.level DESC`, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rating stats: %w", err)
	}
	defer rows.Close()

	stats := &model.BookRatingStats{
		BookID:      bookID,
		RatingTypes: make([]model.RatingTypeStats, 0),
	}
	for rows.Next() {
		var typeStats model.RatingTypeStats
		if err := rows.Scan(
			&typeStats.ID, &typeStats.Name, &typeStats.Description,
			&typeStats.Level, &typeStats.Count,
		); err != nil {
			return nil, fmt.Errorf("failed to scan rating stats row: %w", err)
		}
		stats.TotalRatings += typeStats.Count
		stats.RatingTypes = append(stats.RatingTypes, typeStats)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if stats.TotalRatings > 0 {
		for i := range stats.RatingTypes {
			stats.RatingTypes[i].Percentage =
				float64(stats.RatingTypes[i].Count) / float64(stats.TotalRatings) * 100
		}
	}

	return stats, nil
}
