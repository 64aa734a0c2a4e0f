package repository

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookden/internal/domains/user/model"
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
	return db
}

func createUser(t *testing.T, repo UserRepository) *model.User {
	t.Helper()

	user := &model.User{
		Username:     "reader",
		Nickname:     "The Reader",
		Email:        "reader@gmail.com",
		Roles:        []string{"user"},
		PasswordHash: "$2a$10$notarealhash",
	}
	require.NoError(t, repo.Create(context.Background(), user))
	require.NotZero(t, user.ID)
	return user
}

func TestCreateAndGetByUsername(t *testing.T) {
	repo := NewSQLiteRepository(newTestDB(t))
	created := createUser(t, repo)

	got, err := repo.GetByUsername(context.Background(), "reader")
	require.NoError(t, err)

	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "The Reader", got.Nickname)
	assert.Equal(t, []string{"user"}, got.Roles)
	assert.Nil(t, got.Preference)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := NewSQLiteRepository(newTestDB(t))

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestExistenceChecks(t *testing.T) {
	repo := NewSQLiteRepository(newTestDB(t))
	createUser(t, repo)
	ctx := context.Background()

	exists, err := repo.ExistsByUsername(ctx, "reader")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "reader@gmail.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "other@gmail.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUpdateProfile(t *testing.T) {
	repo := NewSQLiteRepository(newTestDB(t))
	user := createUser(t, repo)
	ctx := context.Background()

	require.NoError(t, repo.UpdateProfile(ctx, user.ID, "New Name", "avatar.png", "hello"))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.Nickname)
	assert.Equal(t, "avatar.png", got.Avatar)
	assert.Equal(t, "hello", got.Introduction)
}

func TestUpdateProfile_UnknownUser(t *testing.T) {
	repo := NewSQLiteRepository(newTestDB(t))

	err := repo.UpdateProfile(context.Background(), 99, "x", "", "")
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestSavePreference(t *testing.T) {
	repo := NewSQLiteRepository(newTestDB(t))
	user := createUser(t, repo)
	ctx := context.Background()

	require.NoError(t, repo.SavePreference(ctx, user.ID, `{"reading_time_range":"evening"}`))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Preference)
	assert.Contains(t, *got.Preference, "evening")
}
