package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"bookden/pkg/client"
)

// ChaptersAPI is the slice of the SDK the chapter store consumes.
type ChaptersAPI interface {
	ListByBook(ctx context.Context, bookID int64) ([]client.Chapter, error)
	Sync(ctx context.Context, bookID int64) (*client.SyncResult, error)
}

// VolumeGroup is one named volume with its chapters in reading order.
type VolumeGroup struct {
	Volume   string
	Chapters []client.Chapter
}

// SyncStatus is what SyncChapters hands the UI instead of an error.
type SyncStatus struct {
	Success bool
	Message string
}

// ChapterStore caches one book's chapter list.
type ChapterStore struct {
	notifier

	api    ChaptersAPI
	logger zerolog.Logger

	mu       sync.Mutex
	chapters []client.Chapter
	loading  bool
	syncing  bool
	err      string
}

func NewChapterStore(api ChaptersAPI, logger zerolog.Logger) *ChapterStore {
	return &ChapterStore{api: api, logger: logger}
}

// FetchBookChapters replaces the chapter list wholesale. Failures record
// the error and keep whatever was loaded before.
func (s *ChapterStore) FetchBookChapters(ctx context.Context, bookID int64) {
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

	chapters, err := s.api.ListByBook(ctx, bookID)
	if err != nil {
		s.logger.Error().Err(err).Int64("book_id", bookID).Msg("failed to fetch chapters")
		s.mu.Lock()
		s.err = err.Error()
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	s.chapters = chapters
	s.mu.Unlock()
}

// SyncChapters asks the server to re-sync the book, then re-fetches the
// list. It reports through SyncStatus so the UI can show an inline result
// without handling an error.
func (s *ChapterStore) SyncChapters(ctx context.Context, bookID int64) SyncStatus {
	s.mu.Lock()
	s.syncing = true
	s.err = ""
	s.mu.Unlock()
	s.notify()

	defer func() {
		s.mu.Lock()
		s.syncing = false
		s.mu.Unlock()
		s.notify()
	}()

	result, err := s.api.Sync(ctx, bookID)
	if err != nil {
		s.logger.Error().Err(err).Int64("book_id", bookID).Msg("chapter sync failed")
		s.mu.Lock()
		s.err = err.Error()
		s.mu.Unlock()
		return SyncStatus{Success: false, Message: err.Error()}
	}

	s.FetchBookChapters(ctx, bookID)
	return SyncStatus{
		Success: true,
		Message: fmt.Sprintf("synced %d chapters", result.ChapterCount),
	}
}

// Chapters returns the raw list in server order.
func (s *ChapterStore) Chapters() []client.Chapter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]client.Chapter(nil), s.chapters...)
}

// VolumeChapters groups chapters by volume name. Volumes keep the order
// they first appear in; chapters within a volume sort by ascending id.
func (s *ChapterStore) VolumeChapters() []VolumeGroup {
	s.mu.Lock()
	chapters := append([]client.Chapter(nil), s.chapters...)
	s.mu.Unlock()

	index := make(map[string]int)
	groups := make([]VolumeGroup, 0)
	for _, ch := range chapters {
		i, ok := index[ch.VolumeName]
		if !ok {
			i = len(groups)
			index[ch.VolumeName] = i
			groups = append(groups, VolumeGroup{Volume: ch.VolumeName})
		}
		groups[i].Chapters = append(groups[i].Chapters, ch)
	}
	for i := range groups {
		sort.Slice(groups[i].Chapters, func(a, b int) bool {
			return groups[i].Chapters[a].ID < groups[i].Chapters[b].ID
		})
	}
	return groups
}

// TotalWordCount sums the word counts of all loaded chapters.
func (s *ChapterStore) TotalWordCount() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, ch := range s.chapters {
		total += ch.WordCount
	}
	return total
}

func (s *ChapterStore) ChapterCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.chapters)
}

func (s *ChapterStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *ChapterStore) Syncing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.syncing
}

func (s *ChapterStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
