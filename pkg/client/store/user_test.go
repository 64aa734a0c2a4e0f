package store

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookden/pkg/client"
	"bookden/pkg/client/storage"
)

type stubAuthAPI struct {
	loginResp *client.LoginResponse
	loginErr  error

	currentUser *client.User
	currentErr  error

	logoutErr error

	updated   *client.User
	updateErr error
}

func (s *stubAuthAPI) Register(ctx context.Context, req client.RegisterRequest) (*client.User, error) {
	return &client.User{ID: 1, Username: req.Username}, nil
}

func (s *stubAuthAPI) Login(ctx context.Context, req client.LoginRequest) (*client.LoginResponse, error) {
	return s.loginResp, s.loginErr
}

func (s *stubAuthAPI) Logout(ctx context.Context) error {
	return s.logoutErr
}

func (s *stubAuthAPI) CurrentUser(ctx context.Context) (*client.User, error) {
	return s.currentUser, s.currentErr
}

func (s *stubAuthAPI) UpdateProfile(ctx context.Context, req client.UpdateProfileRequest) (*client.User, error) {
	return s.updated, s.updateErr
}

func newUserStore(api AuthAPI) (*UserStore, *storage.TokenKeeper, storage.Store) {
	st := storage.NewMemoryStore()
	keeper := storage.NewTokenKeeper(st)
	return NewUserStore(api, keeper, zerolog.Nop()), keeper, st
}

func TestLogin_PersistsTokenAndCachesUser(t *testing.T) {
	api := &stubAuthAPI{loginResp: &client.LoginResponse{
		Token: "jwt-token",
		User:  client.User{ID: 1, Username: "reader"},
	}}
	store, keeper, _ := newUserStore(api)

	require.NoError(t, store.Login(context.Background(), "reader", "Abc123!@"))

	assert.Equal(t, "jwt-token", keeper.Token())
	assert.True(t, store.LoggedIn())
	require.NotNil(t, store.User())
	assert.Equal(t, "reader", store.User().Username)
}

func TestLogin_Failure(t *testing.T) {
	api := &stubAuthAPI{loginErr: &client.APIError{Code: 401, Message: "invalid credentials"}}
	store, keeper, _ := newUserStore(api)

	err := store.Login(context.Background(), "reader", "wrong")
	assert.Error(t, err)
	assert.Empty(t, keeper.Token())
	assert.Nil(t, store.User())
}

func TestFetchCurrentUser_FailureYieldsAbsentUser(t *testing.T) {
	api := &stubAuthAPI{currentErr: errors.New("network down")}
	store, _, _ := newUserStore(api)

	user := store.FetchCurrentUser(context.Background())
	assert.Nil(t, user)
	assert.Equal(t, "network down", store.Err())
	assert.False(t, store.Loading())
}

func TestLogout_ClearsSessionEvenWhenRemoteFails(t *testing.T) {
	api := &stubAuthAPI{
		loginResp: &client.LoginResponse{Token: "jwt-token", User: client.User{ID: 1}},
		logoutErr: errors.New("server unreachable"),
	}
	store, keeper, _ := newUserStore(api)
	ctx := context.Background()

	require.NoError(t, store.Login(ctx, "reader", "Abc123!@"))
	require.True(t, store.LoggedIn())

	err := store.Logout(ctx)
	assert.Error(t, err, "the remote failure is still reported")
	assert.Empty(t, keeper.Token(), "token cleared regardless")
	assert.Nil(t, store.User(), "cached user cleared regardless")
	assert.False(t, store.LoggedIn())
}

func TestLogout_Success(t *testing.T) {
	api := &stubAuthAPI{
		loginResp: &client.LoginResponse{Token: "jwt-token", User: client.User{ID: 1}},
	}
	store, keeper, _ := newUserStore(api)
	ctx := context.Background()

	require.NoError(t, store.Login(ctx, "reader", "Abc123!@"))
	require.NoError(t, store.Logout(ctx))
	assert.Empty(t, keeper.Token())
	assert.Nil(t, store.User())
}

func TestClearUser_AsSessionExpiryCapability(t *testing.T) {
	api := &stubAuthAPI{
		loginResp: &client.LoginResponse{Token: "jwt-token", User: client.User{ID: 1}},
	}
	store, keeper, _ := newUserStore(api)
	ctx := context.Background()

	require.NoError(t, store.Login(ctx, "reader", "Abc123!@"))

	// The HTTP adapter invokes exactly this on a session-expired signal.
	store.ClearUser()
	assert.Empty(t, keeper.Token())
	assert.Nil(t, store.User())
}

func TestUserSnapshot_SaveAndLoad(t *testing.T) {
	api := &stubAuthAPI{
		loginResp: &client.LoginResponse{Token: "jwt-token", User: client.User{ID: 1, Username: "reader"}},
	}
	store, _, st := newUserStore(api)
	ctx := context.Background()

	require.NoError(t, store.Login(ctx, "reader", "Abc123!@"))
	require.NoError(t, store.Save(st))

	restored, _, _ := newUserStore(api)
	require.NoError(t, restored.Load(st))

	require.NotNil(t, restored.User())
	assert.Equal(t, "reader", restored.User().Username)
}
