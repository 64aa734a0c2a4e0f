package client

import (
	"context"
	"net/http"
)

// PreferencesAPI shapes reading-preference requests. All of them require a
// configured token source.
type PreferencesAPI struct {
	client *Client
}

func (a *PreferencesAPI) Save(ctx context.Context, prefs UserPreferences) error {
	return a.client.request(ctx, http.MethodPost, "/preferences", nil, prefs, nil)
}

// Get returns nil without error when the account has never saved preferences.
func (a *PreferencesAPI) Get(ctx context.Context) (*UserPreferences, error) {
	var prefs *UserPreferences
	if err := a.client.request(ctx, http.MethodGet, "/preferences", nil, nil, &prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}

func (a *PreferencesAPI) Status(ctx context.Context) (*PreferenceStatus, error) {
	var status PreferenceStatus
	if err := a.client.request(ctx, http.MethodGet, "/preferences/status", nil, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
