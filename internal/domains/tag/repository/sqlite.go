package repository

import (
	"context"
	"database/sql"
	"fmt"

	"bookden/internal/domains/tag/model"
)

// TagRepository defines data access for tags.
type TagRepository interface {
	// Cloud returns all tags with their use counts, most used first.
	// Weight is filled in by the service.
	Cloud(ctx context.Context) ([]model.TagCloudEntry, error)
}

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) TagRepository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) Cloud(ctx context.Context) ([]model.TagCloudEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT name, use_count FROM tags ORDER BY use_count DESC, name ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer rows.Close()

	tags := make([]model.TagCloudEntry, 0)
	for rows.Next() {
		var tag model.TagCloudEntry
		if err := rows.Scan(&tag.Name, &tag.UseCount); err != nil {
			return nil, fmt.Errorf("failed to scan tag row: %w", err)
		}
		tags = append(tags, tag)
	}

	return tags, rows.Err()
}
