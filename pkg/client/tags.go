package client

import (
	"context"
	"net/http"
)

// TagsAPI shapes tag requests.
type TagsAPI struct {
	client *Client
}

func (a *TagsAPI) Cloud(ctx context.Context) ([]TagCloudEntry, error) {
	entries := make([]TagCloudEntry, 0)
	if err := a.client.request(ctx, http.MethodGet, "/tags/cloud", nil, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
