package repository

import (
	"context"
	"database/sql"
	"fmt"

	"bookden/internal/domains/chapter/model"
)

// ChapterRepository defines data access for chapters.
type ChapterRepository interface {
	// ListByBook returns a book's chapters ordered by ascending ID.
	ListByBook(ctx context.Context, bookID int64) ([]model.Chapter, error)

	// Stats returns the chapter count and summed word count for a book.
	Stats(ctx context.Context, bookID int64) (count int, words int64, err error)
}

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) ChapterRepository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) ListByBook(ctx context.Context, bookID int64) ([]model.Chapter, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, book_id, title, volume_name, word_count, source_url, is_vip
		FROM chapters
		WHERE book_id = ?
		ORDER BY id ASC`, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to query chapters: %w", err)
	}
	defer rows.Close()

	chapters := make([]model.Chapter, 0)
	for rows.Next() {
		var chapter model.Chapter
		if err := rows.Scan(
			&chapter.ID, &chapter.BookID, &chapter.Title,
			&chapter.VolumeName, &chapter.WordCount, &chapter.SourceURL, &chapter.IsVIP,
		); err != nil {
			return nil, fmt.Errorf("failed to scan chapter row: %w", err)
		}
		chapters = append(chapters, chapter)
	}

	return chapters, rows.Err()
}

func (r *sqliteRepository) Stats(ctx context.Context, bookID int64) (int, int64, error) {
	var count int
	var words sql.NullInt64
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*), SUM(word_count) FROM chapters WHERE book_id = ?", bookID,
	).Scan(&count, &words)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to query chapter stats: %w", err)
	}
	return count, words.Int64, nil
}
