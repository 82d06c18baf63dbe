package api

import (
	"context"
	"net/http"
	"net/url"
)

// ListTenants returns all tenants visible to the caller
func (c *Client) ListTenants(ctx context.Context) ([]Tenant, error) {
	var resp []Tenant
	err := c.send(ctx, request{
		method: http.MethodGet,
		path:   "/v1/tenants",
		out:    &resp,
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// GetTenant fetches one tenant by id
func (c *Client) GetTenant(ctx context.Context, id string) (*Tenant, error) {
	var resp Tenant
	err := c.send(ctx, request{
		method: http.MethodGet,
		path:   "/v1/tenants/" + url.PathEscape(id),
		out:    &resp,
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateTenant creates a tenant
func (c *Client) CreateTenant(ctx context.Context, req CreateTenantRequest) (*Tenant, error) {
	var resp Tenant
	err := c.send(ctx, request{
		method: http.MethodPost,
		path:   "/v1/tenants",
		body:   req,
		out:    &resp,
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteTenant deletes a tenant by id
func (c *Client) DeleteTenant(ctx context.Context, id string) error {
	return c.send(ctx, request{
		method: http.MethodDelete,
		path:   "/v1/tenants/" + url.PathEscape(id),
	})
}

// SearchTenants searches tenants by name or slug
func (c *Client) SearchTenants(ctx context.Context, q string) ([]Tenant, error) {
	query := url.Values{}
	query.Set("q", q)

	var resp []Tenant
	err := c.send(ctx, request{
		method: http.MethodGet,
		path:   "/v1/tenants/search",
		query:  query,
		out:    &resp,
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
