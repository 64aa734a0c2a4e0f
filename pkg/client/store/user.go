package store

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"bookden/pkg/client"
	"bookden/pkg/client/storage"
)

// AuthAPI is the slice of the SDK the user store consumes.
type AuthAPI interface {
	Register(ctx context.Context, req client.RegisterRequest) (*client.User, error)
	Login(ctx context.Context, req client.LoginRequest) (*client.LoginResponse, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*client.User, error)
	UpdateProfile(ctx context.Context, req client.UpdateProfileRequest) (*client.User, error)
}

// UserStore owns the session: the persisted bearer token and the cached
// profile. Its ClearUser method is the capability the HTTP adapter's
// session-expiry callback should be wired to.
type UserStore struct {
	notifier

	api    AuthAPI
	tokens *storage.TokenKeeper
	logger zerolog.Logger

	mu      sync.Mutex
	user    *client.User
	loading bool
	err     string
}

func NewUserStore(api AuthAPI, tokens *storage.TokenKeeper, logger zerolog.Logger) *UserStore {
	return &UserStore{api: api, tokens: tokens, logger: logger}
}

// Register creates an account. The caller gets the error.
func (s *UserStore) Register(ctx context.Context, req client.RegisterRequest) (*client.User, error) {
	user, err := s.api.Register(ctx, req)
	if err != nil {
		s.recordError("register", err)
		return nil, err
	}
	return user, nil
}

// Login opens a session: on success the token is persisted and the
// profile cached. The caller gets the error.
func (s *UserStore) Login(ctx context.Context, username, password string) error {
	resp, err := s.api.Login(ctx, client.LoginRequest{Username: username, Password: password})
	if err != nil {
		s.recordError("login", err)
		return err
	}

	if err := s.tokens.SetToken(resp.Token); err != nil {
		s.recordError("persist_token", err)
		return err
	}

	user := resp.User
	s.mu.Lock()
	s.user = &user
	s.err = ""
	s.mu.Unlock()
	s.notify()
	return nil
}

// FetchCurrentUser loads and caches the authenticated profile. A failure
// records the error and yields an absent user rather than raising.
func (s *UserStore) FetchCurrentUser(ctx context.Context) *client.User {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
	s.notify()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
		s.notify()
	}()

	user, err := s.api.CurrentUser(ctx)
	if err != nil {
		s.recordError("fetch_current_user", err)
		return nil
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return user
}

// UpdateProfile saves profile changes and refreshes the cached user.
func (s *UserStore) UpdateProfile(ctx context.Context, req client.UpdateProfileRequest) (*client.User, error) {
	user, err := s.api.UpdateProfile(ctx, req)
	if err != nil {
		s.recordError("update_profile", err)
		return nil, err
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	s.notify()
	return user, nil
}

// Logout ends the session. Local state (token + cached user) is cleared
// unconditionally; a remote failure is returned after clearing so the UI
// can surface it without the session lingering.
func (s *UserStore) Logout(ctx context.Context) error {
	remoteErr := s.api.Logout(ctx)
	s.ClearUser()
	if remoteErr != nil {
		s.logger.Warn().Err(remoteErr).Msg("remote logout failed, local session cleared anyway")
	}
	return remoteErr
}

// ClearUser drops the persisted token and cached profile. The HTTP
// adapter calls this through its OnSessionExpired hook.
func (s *UserStore) ClearUser() {
	if err := s.tokens.ClearToken(); err != nil {
		s.logger.Error().Err(err).Msg("failed to clear persisted token")
	}
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	s.notify()
}

// User returns the cached profile, nil when logged out.
func (s *UserStore) User() *client.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// LoggedIn reports whether a bearer token is persisted.
func (s *UserStore) LoggedIn() bool {
	return s.tokens.Token() != ""
}

func (s *UserStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *UserStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *UserStore) recordError(op string, err error) {
	s.logger.Error().Err(err).Str("op", op).Msg("user store operation failed")
	s.mu.Lock()
	s.err = err.Error()
	s.mu.Unlock()
	s.notify()
}

type userSnapshot struct {
	User *client.User `json:"user"`
}

// Save persists the cached profile under the store's fixed key. The
// token is persisted separately by the token keeper.
func (s *UserStore) Save(st storage.Store) error {
	s.mu.Lock()
	snap := userSnapshot{User: s.user}
	s.mu.Unlock()
	return st.Set(storage.KeyUserStore, snap)
}

// Load restores a saved profile.
func (s *UserStore) Load(st storage.Store) error {
	var snap userSnapshot
	ok, err := st.Get(storage.KeyUserStore, &snap)
	if err != nil || !ok {
		return err
	}

	s.mu.Lock()
	s.user = snap.User
	s.mu.Unlock()
	s.notify()
	return nil
}
