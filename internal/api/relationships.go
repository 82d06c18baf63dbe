package api

import (
	"context"
	"net/http"
	"net/url"
)

// CreateRelationship links two memories
func (c *Client) CreateRelationship(ctx context.Context, req CreateRelationshipRequest) (*Relationship, error) {
	var resp Relationship
	err := c.send(ctx, request{
		method: http.MethodPost,
		path:   "/v1/relationships",
		body:   req,
		out:    &resp,
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// RelationshipsFrom lists relationships originating at a memory
func (c *Client) RelationshipsFrom(ctx context.Context, memoryID string) ([]Relationship, error) {
	var resp []Relationship
	err := c.send(ctx, request{
		method: http.MethodGet,
		path:   "/v1/relationships/from/" + url.PathEscape(memoryID),
		out:    &resp,
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// RelationshipsTo lists relationships pointing at a memory
func (c *Client) RelationshipsTo(ctx context.Context, memoryID string) ([]Relationship, error) {
	var resp []Relationship
	err := c.send(ctx, request{
		method: http.MethodGet,
		path:   "/v1/relationships/to/" + url.PathEscape(memoryID),
		out:    &resp,
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// DeleteRelationships removes all relationships touching a memory
func (c *Client) DeleteRelationships(ctx context.Context, memoryID string) error {
	return c.send(ctx, request{
		method: http.MethodDelete,
		path:   "/v1/relationships/" + url.PathEscape(memoryID),
	})
}
