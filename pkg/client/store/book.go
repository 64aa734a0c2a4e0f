package store

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"bookden/pkg/client"
	"bookden/pkg/client/storage"
)

// categoryFreshness is how long a fetched category list stays valid.
const categoryFreshness = 24 * time.Hour

// ErrInvalidCategoryID rejects category browsing before any request is made.
var ErrInvalidCategoryID = errors.New("category id must be a positive number")

// BooksAPI is the slice of the SDK the book store consumes.
type BooksAPI interface {
	List(ctx context.Context, query client.ListBooksQuery) (*client.PaginatedBooks, error)
	Detail(ctx context.Context, id int64) (*client.BookDetail, error)
	Search(ctx context.Context, keyword string) ([]client.Book, error)
	Latest(ctx context.Context, limit int) ([]client.Book, error)
	Hot(ctx context.Context, limit int) ([]client.Book, error)
	Categories(ctx context.Context) ([]client.Category, error)
}

// CategoryView is a category decorated with its display icon.
type CategoryView struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	BookCount int    `json:"book_count"`
}

var categoryIcons = map[string]string{
	"fantasy":         "🧙",
	"science fiction": "🚀",
	"romance":         "💞",
	"mystery":         "🕵️",
	"history":         "🏛️",
	"technology":      "💻",
	"biography":       "👤",
	"horror":          "👻",
	"poetry":          "🖋️",
	"essays":          "📜",
}

const defaultCategoryIcon = "📖"

func iconFor(name string) string {
	if icon, ok := categoryIcons[strings.ToLower(name)]; ok {
		return icon
	}
	return defaultCategoryIcon
}

// BookStore caches book lists, categories and search suggestions.
type BookStore struct {
	notifier

	api    BooksAPI
	clock  Clock
	logger zerolog.Logger

	mu                    sync.Mutex
	latestBooks           []client.Book
	popularBooks          []client.Book
	categories            []CategoryView
	allCategories         []client.Category
	searchSuggestions     []client.Book
	loading               bool
	err                   string
	categoriesLastUpdated time.Time
}

func NewBookStore(api BooksAPI, clock Clock, logger zerolog.Logger) *BookStore {
	if clock == nil {
		clock = SystemClock()
	}
	return &BookStore{api: api, clock: clock, logger: logger}
}

// begin flips loading on and clears the previous error.
func (s *BookStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
	s.notify()
}

// finish always runs, whatever the operation did.
func (s *BookStore) finish() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
	s.notify()
}

func (s *BookStore) recordError(op string, err error) {
	s.logger.Error().Err(err).Str("op", op).Msg("book store operation failed")
	s.mu.Lock()
	s.err = err.Error()
	s.mu.Unlock()
}

// FetchCategories refreshes the category list unless the cached copy is
// both non-empty and younger than 24 hours. Failures are recorded in the
// store's error field; the cached list is left alone.
func (s *BookStore) FetchCategories(ctx context.Context) {
	s.mu.Lock()
	fresh := len(s.categories) > 0 && s.clock.Now().Sub(s.categoriesLastUpdated) < categoryFreshness
	s.mu.Unlock()
	if fresh {
		return
	}

	s.begin()
	defer s.finish()

	categories, err := s.api.Categories(ctx)
	if err != nil {
		s.recordError("fetch_categories", err)
		return
	}

	views := make([]CategoryView, 0, len(categories))
	for _, c := range categories {
		views = append(views, CategoryView{
			ID:        c.ID,
			Name:      c.Name,
			Icon:      iconFor(c.Name),
			BookCount: c.BookCount,
		})
	}

	s.mu.Lock()
	s.categories = views
	s.allCategories = categories
	s.categoriesLastUpdated = s.clock.Now()
	s.mu.Unlock()
}

// SearchBooks returns matches for keyword. On failure it records the
// error and returns an empty list so search UI stays usable.
func (s *BookStore) SearchBooks(ctx context.Context, keyword string) []client.Book {
	s.begin()
	defer s.finish()

	books, err := s.api.Search(ctx, keyword)
	if err != nil {
		s.recordError("search_books", err)
		return []client.Book{}
	}
	return books
}

// GetBookDetail is a blocking fetch: the caller gets the error.
func (s *BookStore) GetBookDetail(ctx context.Context, id int64) (*client.BookDetail, error) {
	s.begin()
	defer s.finish()

	detail, err := s.api.Detail(ctx, id)
	if err != nil {
		s.recordError("get_book_detail", err)
		return nil, err
	}
	return detail, nil
}

// FetchSearchSuggestions updates the suggestion list for keyword. A blank
// keyword clears the list without touching the network. Failures clear
// the list and record the error.
func (s *BookStore) FetchSearchSuggestions(ctx context.Context, keyword string) {
	if strings.TrimSpace(keyword) == "" {
		s.mu.Lock()
		s.searchSuggestions = []client.Book{}
		s.mu.Unlock()
		s.notify()
		return
	}

	books, err := s.api.Search(ctx, keyword)
	if err != nil {
		s.recordError("fetch_search_suggestions", err)
		s.mu.Lock()
		s.searchSuggestions = []client.Book{}
		s.mu.Unlock()
		s.notify()
		return
	}

	s.mu.Lock()
	s.searchSuggestions = books
	s.mu.Unlock()
	s.notify()
}

// GetBooksByCategory pages through one category. A non-positive id fails
// before any request is made. Network failures record the error and
// return an empty page.
func (s *BookStore) GetBooksByCategory(ctx context.Context, categoryID int64, page, limit int) (*client.PaginatedBooks, error) {
	if categoryID <= 0 {
		return nil, ErrInvalidCategoryID
	}

	s.begin()
	defer s.finish()

	result, err := s.api.List(ctx, client.ListBooksQuery{
		Page:       page,
		Limit:      limit,
		CategoryID: categoryID,
	})
	if err != nil {
		s.recordError("get_books_by_category", err)
		return &client.PaginatedBooks{List: []client.Book{}, Page: page, Limit: limit}, nil
	}
	return result, nil
}

// FetchLatestBooks loads the newest arrivals into the store.
func (s *BookStore) FetchLatestBooks(ctx context.Context, limit int) []client.Book {
	s.begin()
	defer s.finish()

	books, err := s.api.Latest(ctx, limit)
	if err != nil {
		s.recordError("fetch_latest_books", err)
		return []client.Book{}
	}

	s.mu.Lock()
	s.latestBooks = books
	s.mu.Unlock()
	return books
}

// FetchPopularBooks loads the hottest books into the store.
func (s *BookStore) FetchPopularBooks(ctx context.Context, limit int) []client.Book {
	s.begin()
	defer s.finish()

	books, err := s.api.Hot(ctx, limit)
	if err != nil {
		s.recordError("fetch_popular_books", err)
		return []client.Book{}
	}

	s.mu.Lock()
	s.popularBooks = books
	s.mu.Unlock()
	return books
}

func (s *BookStore) LatestBooks() []client.Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]client.Book(nil), s.latestBooks...)
}

func (s *BookStore) PopularBooks() []client.Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]client.Book(nil), s.popularBooks...)
}

func (s *BookStore) Categories() []CategoryView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]CategoryView(nil), s.categories...)
}

func (s *BookStore) AllCategories() []client.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]client.Category(nil), s.allCategories...)
}

func (s *BookStore) SearchSuggestions() []client.Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]client.Book(nil), s.searchSuggestions...)
}

func (s *BookStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *BookStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

type bookSnapshot struct {
	Categories            []CategoryView    `json:"categories"`
	AllCategories         []client.Category `json:"all_categories"`
	CategoriesLastUpdated time.Time         `json:"categories_last_updated"`
}

// Save persists the category cache under the store's fixed key.
func (s *BookStore) Save(st storage.Store) error {
	s.mu.Lock()
	snap := bookSnapshot{
		Categories:            s.categories,
		AllCategories:         s.allCategories,
		CategoriesLastUpdated: s.categoriesLastUpdated,
	}
	s.mu.Unlock()
	return st.Set(storage.KeyBookStore, snap)
}

// Load restores a previously saved category cache. A missing snapshot
// leaves the store empty.
func (s *BookStore) Load(st storage.Store) error {
	var snap bookSnapshot
	ok, err := st.Get(storage.KeyBookStore, &snap)
	if err != nil || !ok {
		return err
	}

	s.mu.Lock()
	s.categories = snap.Categories
	s.allCategories = snap.AllCategories
	s.categoriesLastUpdated = snap.CategoriesLastUpdated
	s.mu.Unlock()
	s.notify()
	return nil
}
