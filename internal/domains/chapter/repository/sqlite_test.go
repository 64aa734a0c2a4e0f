package repository

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookden/internal/infrastructure/database"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(database.Schema)
	require.NoError(t, err)

	_, err = db.Exec("INSERT INTO books (id, title, author) VALUES (1, 'Some Book', 'Someone')")
	require.NoError(t, err)
	_, err = db.Exec(`
		INSERT INTO chapters (id, book_id, title, volume_name, word_count) VALUES
		(3, 1, 'Chapter Three', 'Volume II', 2100),
		(1, 1, 'Chapter One', 'Volume I', 1800),
		(2, 1, 'Chapter Two', 'Volume I', 2400),
		(9, 2, 'Stray', 'Other', 50)`)
	require.NoError(t, err)

	return db
}

func TestListByBook_OrderedByID(t *testing.T) {
	repo := NewSQLiteRepository(newTestDB(t))

	chapters, err := repo.ListByBook(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, chapters, 3)

	assert.Equal(t, int64(1), chapters[0].ID)
	assert.Equal(t, int64(2), chapters[1].ID)
	assert.Equal(t, int64(3), chapters[2].ID)
}

func TestListByBook_UnknownBookIsEmpty(t *testing.T) {
	repo := NewSQLiteRepository(newTestDB(t))

	chapters, err := repo.ListByBook(context.Background(), 77)
	require.NoError(t, err)
	assert.Empty(t, chapters)
}

func TestStats(t *testing.T) {
	repo := NewSQLiteRepository(newTestDB(t))

	count, words, err := repo.Stats(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, int64(6300), words)
}

func TestStats_NoChapters(t *testing.T) {
	repo := NewSQLiteRepository(newTestDB(t))

	count, words, err := repo.Stats(context.Background(), 77)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Zero(t, words)
}
