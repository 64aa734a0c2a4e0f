package store

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"bookden/pkg/client"
)

// PreferencesAPI is the slice of the SDK the preference store consumes.
type PreferencesAPI interface {
	Save(ctx context.Context, prefs client.UserPreferences) error
	Get(ctx context.Context) (*client.UserPreferences, error)
	Status(ctx context.Context) (*client.PreferenceStatus, error)
}

// PreferenceStore caches the account's reading preferences.
type PreferenceStore struct {
	notifier

	api    PreferencesAPI
	logger zerolog.Logger

	mu          sync.Mutex
	preferences *client.UserPreferences
	hasSet      bool
	loading     bool
	err         string
}

func NewPreferenceStore(api PreferencesAPI, logger zerolog.Logger) *PreferenceStore {
	return &PreferenceStore{api: api, logger: logger}
}

// FetchStatus loads whether the account has saved preferences yet.
func (s *PreferenceStore) FetchStatus(ctx context.Context) {
	status, err := s.api.Status(ctx)
	if err != nil {
		s.recordError("fetch_preference_status", err)
		return
	}

	s.mu.Lock()
	s.hasSet = status.HasSetPreferences
	s.mu.Unlock()
	s.notify()
}

// FetchPreferences loads the saved preferences, nil when none exist.
func (s *PreferenceStore) FetchPreferences(ctx context.Context) {
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

	prefs, err := s.api.Get(ctx)
	if err != nil {
		s.recordError("fetch_preferences", err)
		return
	}

	s.mu.Lock()
	s.preferences = prefs
	s.hasSet = prefs != nil
	s.mu.Unlock()
}

// SavePreferences writes through to the server and updates the cache.
// The caller gets the error.
func (s *PreferenceStore) SavePreferences(ctx context.Context, prefs client.UserPreferences) error {
	if err := s.api.Save(ctx, prefs); err != nil {
		s.recordError("save_preferences", err)
		return err
	}

	s.mu.Lock()
	copied := prefs
	s.preferences = &copied
	s.hasSet = true
	s.err = ""
	s.mu.Unlock()
	s.notify()
	return nil
}

func (s *PreferenceStore) Preferences() *client.UserPreferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preferences
}

func (s *PreferenceStore) HasSetPreferences() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasSet
}

func (s *PreferenceStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *PreferenceStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *PreferenceStore) recordError(op string, err error) {
	s.logger.Error().Err(err).Str("op", op).Msg("preference store operation failed")
	s.mu.Lock()
	s.err = err.Error()
	s.mu.Unlock()
	s.notify()
}
