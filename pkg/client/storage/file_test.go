package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_PersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "client.json")

	first, err := OpenFile(path)
	require.NoError(t, err)
	require.NoError(t, first.Set("greeting", "hello"))

	second, err := OpenFile(path)
	require.NoError(t, err)

	var got string
	ok, err := second.Get("greeting", &got)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "hello", got)
}

func TestFileStore_MissingKey(t *testing.T) {
	store, err := OpenFile(filepath.Join(t.TempDir(), "client.json"))
	require.NoError(t, err)

	var got string
	ok, err := store.Get("absent", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStore_Delete(t *testing.T) {
	store, err := OpenFile(filepath.Join(t.TempDir(), "client.json"))
	require.NoError(t, err)

	require.NoError(t, store.Set("key", 42))
	require.NoError(t, store.Delete("key"))
	require.NoError(t, store.Delete("key"), "deleting a missing key is fine")

	var got int
	ok, err := store.Get("key", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTokenKeeper(t *testing.T) {
	keeper := NewTokenKeeper(NewMemoryStore())

	assert.Empty(t, keeper.Token())

	require.NoError(t, keeper.SetToken("jwt-token"))
	assert.Equal(t, "jwt-token", keeper.Token())

	require.NoError(t, keeper.ClearToken())
	assert.Empty(t, keeper.Token())
}

func TestTokenKeeper_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.json")

	store, err := OpenFile(path)
	require.NoError(t, err)
	require.NoError(t, NewTokenKeeper(store).SetToken("jwt-token"))

	reopened, err := OpenFile(path)
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", NewTokenKeeper(reopened).Token())
}
