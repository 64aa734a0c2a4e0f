package client

import (
	"context"
	"net/http"
)

// AuthAPI shapes account requests.
type AuthAPI struct {
	client *Client
}

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Nickname        string `json:"nickname,omitempty"`
	Introduction    string `json:"introduction,omitempty"`
}

// LoginRequest is the payload for opening a session.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateProfileRequest carries only the fields the caller wants changed.
type UpdateProfileRequest struct {
	Nickname     *string `json:"nickname,omitempty"`
	Avatar       *string `json:"avatar,omitempty"`
	Introduction *string `json:"introduction,omitempty"`
}

func (a *AuthAPI) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	var user User
	if err := a.client.request(ctx, http.MethodPost, "/auth/register", nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *AuthAPI) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if err := a.client.request(ctx, http.MethodPost, "/auth/login", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *AuthAPI) Logout(ctx context.Context) error {
	return a.client.request(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}

func (a *AuthAPI) CurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := a.client.request(ctx, http.MethodGet, "/auth/current-user", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *AuthAPI) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*User, error) {
	var user User
	if err := a.client.request(ctx, http.MethodPut, "/auth/update", nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
