package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// BooksAPI shapes book requests. No business logic lives here.
type BooksAPI struct {
	client *Client
}

// ListBooksQuery carries list filters; zero values are omitted.
type ListBooksQuery struct {
	Page       int
	Limit      int
	Sort       string
	CategoryID int64
	Keyword    string
}

func (q ListBooksQuery) values() url.Values {
	values := url.Values{}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Sort != "" {
		values.Set("sort", q.Sort)
	}
	if q.CategoryID > 0 {
		values.Set("category_id", strconv.FormatInt(q.CategoryID, 10))
	}
	if q.Keyword != "" {
		values.Set("keyword", q.Keyword)
	}
	return values
}

func (a *BooksAPI) List(ctx context.Context, query ListBooksQuery) (*PaginatedBooks, error) {
	var result PaginatedBooks
	if err := a.client.request(ctx, http.MethodGet, "/books", query.values(), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (a *BooksAPI) Detail(ctx context.Context, id int64) (*BookDetail, error) {
	var detail BookDetail
	path := fmt.Sprintf("/books/%d", id)
	if err := a.client.request(ctx, http.MethodGet, path, nil, nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (a *BooksAPI) Search(ctx context.Context, keyword string) ([]Book, error) {
	values := url.Values{}
	values.Set("keyword", keyword)

	books := make([]Book, 0)
	if err := a.client.request(ctx, http.MethodGet, "/books/search", values, nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (a *BooksAPI) Latest(ctx context.Context, limit int) ([]Book, error) {
	return a.limited(ctx, "/books/latest", limit)
}

func (a *BooksAPI) Hot(ctx context.Context, limit int) ([]Book, error) {
	return a.limited(ctx, "/books/hot", limit)
}

func (a *BooksAPI) limited(ctx context.Context, path string, limit int) ([]Book, error) {
	values := url.Values{}
	if limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}

	books := make([]Book, 0)
	if err := a.client.request(ctx, http.MethodGet, path, values, nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (a *BooksAPI) Categories(ctx context.Context) ([]Category, error) {
	categories := make([]Category, 0)
	if err := a.client.request(ctx, http.MethodGet, "/books/categories", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
