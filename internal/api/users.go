package api

import (
	"context"
	"net/http"
	"net/url"
)

// ListUsers returns all users visible to the caller
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var resp []User
	err := c.send(ctx, request{
		method: http.MethodGet,
		path:   "/v1/users",
		out:    &resp,
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// GetUser fetches one user by id
func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	var resp User
	err := c.send(ctx, request{
		method: http.MethodGet,
		path:   "/v1/users/" + url.PathEscape(id),
		out:    &resp,
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateUser creates a user account
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	var resp User
	err := c.send(ctx, request{
		method: http.MethodPost,
		path:   "/v1/users",
		body:   req,
		out:    &resp,
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteUser deletes a user account by id
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.send(ctx, request{
		method: http.MethodDelete,
		path:   "/v1/users/" + url.PathEscape(id),
	})
}

// SearchUsers searches users by email or name
func (c *Client) SearchUsers(ctx context.Context, q string) ([]User, error) {
	query := url.Values{}
	query.Set("q", q)

	var resp []User
	err := c.send(ctx, request{
		method: http.MethodGet,
		path:   "/v1/users/search",
		query:  query,
		out:    &resp,
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
