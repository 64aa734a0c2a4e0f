package client

import (
	"context"
	"fmt"
	"net/http"
)

// ChaptersAPI shapes chapter requests.
type ChaptersAPI struct {
	client *Client
}

func (a *ChaptersAPI) ListByBook(ctx context.Context, bookID int64) ([]Chapter, error) {
	chapters := make([]Chapter, 0)
	path := fmt.Sprintf("/chapters/books/%d", bookID)
	if err := a.client.request(ctx, http.MethodGet, path, nil, nil, &chapters); err != nil {
		return nil, err
	}
	return chapters, nil
}

func (a *ChaptersAPI) Sync(ctx context.Context, bookID int64) (*SyncResult, error) {
	var result SyncResult
	path := fmt.Sprintf("/chapters/sync/%d", bookID)
	if err := a.client.request(ctx, http.MethodPost, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
