package service

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookden/internal/domains/preference/model"
	userModel "bookden/internal/domains/user/model"
	userRepo "bookden/internal/domains/user/repository"
	"bookden/internal/infrastructure/database"
)

func newService(t *testing.T) (ServiceInterface, int64) {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(database.Schema)
	require.NoError(t, err)

	users := userRepo.NewSQLiteRepository(db)
	user := &userModel.User{
		Username:     "reader",
		Email:        "reader@gmail.com",
		Roles:        []string{"user"},
		PasswordHash: "$2a$10$notarealhash",
	}
	require.NoError(t, users.Create(context.Background(), user))

	return NewPreferenceService(users), user.ID
}

func validPreferences() model.UserPreferences {
	return model.UserPreferences{
		ReadingTimeRange: model.ReadingEvening,
		PreferredLength:  model.LengthMedium,
		UpdateFrequency:  model.FrequencyWeekly,
	}
}

func TestSaveGetStatus_RoundTrip(t *testing.T) {
	svc, userID := newService(t)
	ctx := context.Background()

	status, err := svc.Status(ctx, userID)
	require.NoError(t, err)
	assert.False(t, status.HasSetPreferences)

	got, err := svc.Get(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, got, "no preferences saved yet")

	require.NoError(t, svc.Save(ctx, userID, validPreferences()))

	status, err = svc.Status(ctx, userID)
	require.NoError(t, err)
	assert.True(t, status.HasSetPreferences)

	got, err = svc.Get(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, model.ReadingEvening, got.ReadingTimeRange)
}

func TestSave_InvalidPreferencesRejected(t *testing.T) {
	svc, userID := newService(t)

	prefs := validPreferences()
	prefs.UpdateFrequency = "NEVER"
	assert.Error(t, svc.Save(context.Background(), userID, prefs))
}

func TestSave_UnknownUser(t *testing.T) {
	svc, _ := newService(t)

	err := svc.Save(context.Background(), 999, validPreferences())
	assert.ErrorIs(t, err, userModel.ErrUserNotFound)
}
