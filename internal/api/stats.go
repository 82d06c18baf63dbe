package api

import (
	"context"
	"net/http"
)

// GetStats returns the dashboard overview statistics
func (c *Client) GetStats(ctx context.Context) (*Stats, error) {
	var resp Stats
	err := c.send(ctx, request{
		method: http.MethodGet,
		path:   "/v1/stats/overview",
		out:    &resp,
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// HealthCheck pings the backend health endpoint
func (c *Client) HealthCheck(ctx context.Context) (*Health, error) {
	var resp Health
	err := c.send(ctx, request{
		method: http.MethodGet,
		path:   "/v1/stats/health",
		out:    &resp,
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
