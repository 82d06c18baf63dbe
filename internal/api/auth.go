package api

import (
	"context"
	"net/http"
)

// LoginRequest is the credential exchange body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued token and the authenticated user
type LoginResponse struct {
	Token string `json:"token" validate:"required"`
	User  User   `json:"user" validate:"required"`
}

// RefreshResponse carries a replacement token; the user is unchanged
type RefreshResponse struct {
	Token string `json:"token" validate:"required"`
}

// Login exchanges email/password for a token and user profile
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var resp LoginResponse
	err := c.send(ctx, request{
		method: http.MethodPost,
		path:   "/v1/auth/login",
		body:   LoginRequest{Email: email, Password: password},
		out:    &resp,
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout notifies the backend that the given token is being discarded. The
// response body is ignored; callers treat this as best-effort.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.send(ctx, request{
		method: http.MethodPost,
		path:   "/v1/auth/logout",
		bearer: token,
	})
}

// Refresh exchanges the current token for a fresh one
func (c *Client) Refresh(ctx context.Context, token string) (*RefreshResponse, error) {
	var resp RefreshResponse
	err := c.send(ctx, request{
		method: http.MethodPost,
		path:   "/v1/auth/refresh",
		bearer: token,
		out:    &resp,
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
