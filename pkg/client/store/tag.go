package store

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"bookden/pkg/client"
	"bookden/pkg/client/storage"
)

// TagsAPI is the slice of the SDK the tag store consumes.
type TagsAPI interface {
	Cloud(ctx context.Context) ([]client.TagCloudEntry, error)
}

// TagStore caches the tag cloud. Unlike categories there is no staleness
// rule: once any tags are cached, FetchTags never calls the API again.
type TagStore struct {
	notifier

	api    TagsAPI
	logger zerolog.Logger

	mu   sync.Mutex
	tags []client.TagCloudEntry
	err  string
}

func NewTagStore(api TagsAPI, logger zerolog.Logger) *TagStore {
	return &TagStore{api: api, logger: logger}
}

// FetchTags loads the cloud once. Failures record the error so a later
// call can retry.
func (s *TagStore) FetchTags(ctx context.Context) {
	s.mu.Lock()
	cached := len(s.tags) > 0
	s.mu.Unlock()
	if cached {
		return
	}

	tags, err := s.api.Cloud(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to fetch tag cloud")
		s.mu.Lock()
		s.err = err.Error()
		s.mu.Unlock()
		s.notify()
		return
	}

	s.mu.Lock()
	s.tags = tags
	s.err = ""
	s.mu.Unlock()
	s.notify()
}

func (s *TagStore) Tags() []client.TagCloudEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]client.TagCloudEntry(nil), s.tags...)
}

func (s *TagStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// WeightBucket maps a tag weight to a discrete display size.
func WeightBucket(weight int) string {
	switch {
	case weight >= 9:
		return "largest"
	case weight >= 7:
		return "large"
	case weight >= 5:
		return "medium"
	case weight >= 3:
		return "small"
	default:
		return "smallest"
	}
}

type tagSnapshot struct {
	Tags []client.TagCloudEntry `json:"tags"`
}

// Save persists the cached cloud under the store's fixed key.
func (s *TagStore) Save(st storage.Store) error {
	s.mu.Lock()
	snap := tagSnapshot{Tags: s.tags}
	s.mu.Unlock()
	return st.Set(storage.KeyTagStore, snap)
}

// Load restores a saved cloud; FetchTags then becomes a no-op.
func (s *TagStore) Load(st storage.Store) error {
	var snap tagSnapshot
	ok, err := st.Get(storage.KeyTagStore, &snap)
	if err != nil || !ok {
		return err
	}

	s.mu.Lock()
	s.tags = snap.Tags
	s.mu.Unlock()
	s.notify()
	return nil
}
