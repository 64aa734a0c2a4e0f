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

type stubTagsAPI struct {
	tags  []client.TagCloudEntry
	err   error
	calls int
}

func (s *stubTagsAPI) Cloud(ctx context.Context) ([]client.TagCloudEntry, error) {
	s.calls++
	return s.tags, s.err
}

func TestFetchTags_FetchesOnce(t *testing.T) {
	api := &stubTagsAPI{tags: []client.TagCloudEntry{{Name: "epic", Weight: 8}}}
	store := NewTagStore(api, zerolog.Nop())
	ctx := context.Background()

	store.FetchTags(ctx)
	store.FetchTags(ctx)
	store.FetchTags(ctx)

	assert.Equal(t, 1, api.calls)
	assert.Len(t, store.Tags(), 1)
}

func TestFetchTags_FailureAllowsRetry(t *testing.T) {
	api := &stubTagsAPI{err: errors.New("network down")}
	store := NewTagStore(api, zerolog.Nop())
	ctx := context.Background()

	store.FetchTags(ctx)
	assert.Equal(t, "network down", store.Err())

	api.err = nil
	api.tags = []client.TagCloudEntry{{Name: "epic"}}
	store.FetchTags(ctx)

	assert.Equal(t, 2, api.calls)
	assert.Len(t, store.Tags(), 1)
	assert.Empty(t, store.Err())
}

func TestWeightBucket(t *testing.T) {
	cases := []struct {
		weight int
		bucket string
	}{
		{10, "largest"},
		{9, "largest"},
		{8, "large"},
		{7, "large"},
		{6, "medium"},
		{5, "medium"},
		{4, "small"},
		{3, "small"},
		{2, "smallest"},
		{1, "smallest"},
		{0, "smallest"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.bucket, WeightBucket(tc.weight), "weight %d", tc.weight)
	}
}

func TestTagSnapshot_LoadMakesFetchANoOp(t *testing.T) {
	api := &stubTagsAPI{tags: []client.TagCloudEntry{{Name: "epic", Weight: 8}}}
	store := NewTagStore(api, zerolog.Nop())
	ctx := context.Background()

	store.FetchTags(ctx)

	st := storage.NewMemoryStore()
	require.NoError(t, store.Save(st))

	restored := NewTagStore(api, zerolog.Nop())
	require.NoError(t, restored.Load(st))
	restored.FetchTags(ctx)

	assert.Equal(t, 1, api.calls, "restored cache suppresses the fetch")
	assert.Len(t, restored.Tags(), 1)
}
