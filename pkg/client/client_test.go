package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (t staticToken) Token() string { return string(t) }

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func writeEnvelope(w http.ResponseWriter, code int, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"code":    code,
		"message": message,
		"data":    data,
	})
}

func TestRequest_UnwrapsEnvelope(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/books/latest", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		writeEnvelope(w, 0, "success", []map[string]interface{}{
			{"id": 1, "title": "Newest", "author": "Someone"},
		})
	})

	c := New(Config{BaseURL: server.URL + "/api", Logger: zerolog.Nop()})
	books, err := c.Books.Latest(context.Background(), 5)
	require.NoError(t, err)

	require.Len(t, books, 1)
	assert.Equal(t, int64(1), books[0].ID)
	assert.Equal(t, "Newest", books[0].Title)
}

func TestRequest_AttachesBearerToken(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer jwt-token", r.Header.Get("Authorization"))
		writeEnvelope(w, 0, "success", map[string]interface{}{"id": 1, "username": "reader"})
	})

	c := New(Config{BaseURL: server.URL + "/api", Tokens: staticToken("jwt-token"), Logger: zerolog.Nop()})
	user, err := c.Auth.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "reader", user.Username)
}

func TestRequest_NoTokenNoHeader(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeEnvelope(w, 0, "success", []interface{}{})
	})

	c := New(Config{BaseURL: server.URL + "/api", Logger: zerolog.Nop()})
	_, err := c.Tags.Cloud(context.Background())
	require.NoError(t, err)
}

func TestRequest_NonZeroCodeBecomesAPIError(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		writeEnvelope(w, 404, "book not found", nil)
	})

	c := New(Config{BaseURL: server.URL + "/api", Logger: zerolog.Nop()})
	_, err := c.Books.Detail(context.Background(), 42)

	assert.True(t, IsNotFound(err))
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "book not found", apiErr.Message)
}

func TestRequest_SessionExpiredTriggersCallback(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		writeEnvelope(w, 401, "session expired", nil)
	})

	var cleared bool
	c := New(Config{
		BaseURL:          server.URL + "/api",
		OnSessionExpired: func() { cleared = true },
		Logger:           zerolog.Nop(),
	})

	_, err := c.Auth.CurrentUser(context.Background())
	assert.Error(t, err)
	assert.True(t, cleared, "the session-expiry capability fires on code 401")
}

func TestRequest_OtherErrorsDoNotTriggerCallback(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		writeEnvelope(w, 409, "already rated", nil)
	})

	var cleared bool
	c := New(Config{
		BaseURL:          server.URL + "/api",
		OnSessionExpired: func() { cleared = true },
		Logger:           zerolog.Nop(),
	})

	_, err := c.Ratings.Create(context.Background(), CreateRatingRequest{BookID: 5, RatingTypeID: 1})
	assert.True(t, IsConflict(err))
	assert.False(t, cleared)
}

func TestRequest_QueryEncoding(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "10", q.Get("limit"))
		assert.Equal(t, "3", q.Get("category_id"))
		assert.Equal(t, "hot_value", q.Get("sort"))
		writeEnvelope(w, 0, "success", map[string]interface{}{
			"list": []interface{}{}, "total": 0, "page": 2, "limit": 10,
		})
	})

	c := New(Config{BaseURL: server.URL + "/api", Logger: zerolog.Nop()})
	result, err := c.Books.List(context.Background(), ListBooksQuery{
		Page: 2, Limit: 10, CategoryID: 3, Sort: "hot_value",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Page)
}

func TestRequest_PostBody(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(5), body["book_id"])
		assert.Equal(t, "great", body["comment"])

		writeEnvelope(w, 0, "success", map[string]interface{}{"id": 1, "book_id": 5, "rating_type_id": 1})
	})

	c := New(Config{BaseURL: server.URL + "/api", Logger: zerolog.Nop()})
	rating, err := c.Ratings.Create(context.Background(), CreateRatingRequest{
		BookID: 5, RatingTypeID: 1, Comment: "great",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), rating.BookID)
}
