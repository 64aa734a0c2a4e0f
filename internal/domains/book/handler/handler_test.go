package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookden/internal/domains/book/model"
)

type stubBookService struct {
	listResult *model.ListBooksResult
	listErr    error

	detail    *model.BookDetail
	detailErr error

	searchErr error
}

func (s *stubBookService) ListBooks(ctx context.Context, query model.ListBooksQuery) (*model.ListBooksResult, error) {
	return s.listResult, s.listErr
}

func (s *stubBookService) GetBookDetail(ctx context.Context, id int64) (*model.BookDetail, error) {
	return s.detail, s.detailErr
}

func (s *stubBookService) SearchBooks(ctx context.Context, keyword string, limit int) ([]model.Book, error) {
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	return []model.Book{}, nil
}

func (s *stubBookService) LatestBooks(ctx context.Context, limit int) ([]model.Book, error) {
	return []model.Book{}, nil
}

func (s *stubBookService) HotBooks(ctx context.Context, limit int) ([]model.Book, error) {
	return []model.Book{}, nil
}

func (s *stubBookService) Categories(ctx context.Context) ([]model.Category, error) {
	return []model.Category{}, nil
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func performRequest(t *testing.T, svc *stubBookService, path string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	h := NewBookHandler(svc)
	router.GET("/books", h.ListBooks)
	router.GET("/books/search", h.SearchBooks)
	router.GET("/books/:id", h.GetBookDetail)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestListBooks_SuccessEnvelope(t *testing.T) {
	svc := &stubBookService{listResult: &model.ListBooksResult{
		List: []model.Book{}, Total: 0, Page: 1, Limit: 10,
	}}

	w, env := performRequest(t, svc, "/books?page=1&limit=10")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, env.Code)

	var result model.ListBooksResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 10, result.Limit)
}

func TestListBooks_InvalidSortRejected(t *testing.T) {
	svc := &stubBookService{listResult: &model.ListBooksResult{}}
	svc.listErr = model.ErrInvalidSort

	w, env := performRequest(t, svc, "/books?sort=evil_column")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, http.StatusBadRequest, env.Code)
}

func TestGetBookDetail_NotFound(t *testing.T) {
	svc := &stubBookService{detailErr: model.ErrBookNotFound}

	w, env := performRequest(t, svc, "/books/42")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, http.StatusNotFound, env.Code)
	assert.Equal(t, "book not found", env.Message)
}

func TestGetBookDetail_BadID(t *testing.T) {
	svc := &stubBookService{}

	w, env := performRequest(t, svc, "/books/not-a-number")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, http.StatusBadRequest, env.Code)
}

func TestSearchBooks_BlankKeyword(t *testing.T) {
	svc := &stubBookService{searchErr: model.ErrInvalidKeyword}

	w, env := performRequest(t, svc, "/books/search?keyword=")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "keyword must not be blank", env.Message)
}
