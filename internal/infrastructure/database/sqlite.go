package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteDB wraps the database handle and manages its lifecycle.
type SQLiteDB struct {
	DB   *sql.DB
	Path string
}

// NewSQLiteDB creates an unconnected wrapper for the given database file.
// Use ":memory:" for an ephemeral database.
func NewSQLiteDB(path string) *SQLiteDB {
	return &SQLiteDB{Path: path}
}

// Connect opens the database, applies pragmas and bootstraps the schema.
func (d *SQLiteDB) Connect(ctx context.Context) error {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000", d.Path)
	if d.Path == ":memory:" {
		dsn = "file::memory:?cache=shared&_foreign_keys=on"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// SQLite serializes writers; a single connection avoids SQLITE_BUSY
	// contention without changing observable behavior.
	db.SetMaxOpenConns(1)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	d.DB = db

	if err := d.bootstrapSchema(ctx); err != nil {
		db.Close()
		return fmt.Errorf("failed to bootstrap schema: %w", err)
	}

	return nil
}

// HealthCheck verifies the connection is still usable.
func (d *SQLiteDB) HealthCheck(ctx context.Context) error {
	if d.DB == nil {
		return fmt.Errorf("database is not connected")
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return d.DB.PingContext(ctx)
}

// Close releases the underlying handle.
func (d *SQLiteDB) Close() error {
	if d.DB != nil {
		return d.DB.Close()
	}
	return nil
}

// bootstrapSchema creates tables on first run. Books themselves are written by
// an ingestion process outside this service; the DDL keeps fresh deployments
// and the test suite self-contained.
func (d *SQLiteDB) bootstrapSchema(ctx context.Context) error {
	_, err := d.DB.ExecContext(ctx, Schema)
	return err
}

// Schema is the full DDL for the service. UNIQUE(book_id, ip) on book_ratings
// closes the duplicate-rating race window at the storage layer.
const Schema = `
CREATE TABLE IF NOT EXISTS categories (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	name       TEXT NOT NULL UNIQUE,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS books (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	title       TEXT NOT NULL,
	author      TEXT NOT NULL,
	cover       TEXT,
	intro       TEXT,
	file_size   INTEGER NOT NULL DEFAULT 0,
	category_id INTEGER REFERENCES categories(id),
	tag         TEXT,
	md5         TEXT,
	file_name   TEXT,
	stored_name TEXT,
	file_url    TEXT,
	parts       INTEGER NOT NULL DEFAULT 1,
	hot_value   INTEGER NOT NULL DEFAULT 0,
	downloads   INTEGER NOT NULL DEFAULT 0,
	created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_books_category ON books(category_id);
CREATE INDEX IF NOT EXISTS idx_books_created ON books(created_at);

CREATE TABLE IF NOT EXISTS chapters (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	book_id    INTEGER NOT NULL REFERENCES books(id),
	title      TEXT NOT NULL,
	volume_name TEXT NOT NULL DEFAULT '',
	word_count INTEGER NOT NULL DEFAULT 0,
	source_url TEXT,
	is_vip     INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_chapters_book ON chapters(book_id);

CREATE TABLE IF NOT EXISTS rating_types (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	level       INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS book_ratings (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	book_id        INTEGER NOT NULL REFERENCES books(id),
	rating_type_id INTEGER NOT NULL REFERENCES rating_types(id),
	user_id        INTEGER REFERENCES users(id),
	comment        TEXT,
	ip             TEXT NOT NULL,
	created_at     TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE(book_id, ip)
);

CREATE TABLE IF NOT EXISTS tags (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	name      TEXT NOT NULL UNIQUE,
	use_count INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS users (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	username      TEXT NOT NULL UNIQUE,
	nickname      TEXT NOT NULL DEFAULT '',
	avatar        TEXT NOT NULL DEFAULT '',
	email         TEXT NOT NULL UNIQUE,
	introduction  TEXT NOT NULL DEFAULT '',
	password_hash TEXT NOT NULL,
	roles         TEXT NOT NULL DEFAULT 'user',
	preference    TEXT,
	created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`
