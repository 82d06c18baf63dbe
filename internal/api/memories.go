package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// SearchRequest is the body for semantic memory search
type SearchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

// ListMemories returns one page of memories
func (c *Client) ListMemories(ctx context.Context, page, size int) (*MemoryList, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	var resp MemoryList
	err := c.send(ctx, request{
		method: http.MethodGet,
		path:   "/v1/memories",
		query:  query,
		out:    &resp,
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetMemory fetches one memory by id
func (c *Client) GetMemory(ctx context.Context, id string) (*Memory, error) {
	var resp Memory
	err := c.send(ctx, request{
		method: http.MethodGet,
		path:   "/v1/memories/" + url.PathEscape(id),
		out:    &resp,
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateMemory creates a memory
func (c *Client) CreateMemory(ctx context.Context, req CreateMemoryRequest) (*Memory, error) {
	var resp Memory
	err := c.send(ctx, request{
		method: http.MethodPost,
		path:   "/v1/memories",
		body:   req,
		out:    &resp,
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateMemory applies a partial update to a memory
func (c *Client) UpdateMemory(ctx context.Context, id string, req UpdateMemoryRequest) (*Memory, error) {
	var resp Memory
	err := c.send(ctx, request{
		method: http.MethodPut,
		path:   "/v1/memories/" + url.PathEscape(id),
		body:   req,
		out:    &resp,
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteMemory deletes a memory by id
func (c *Client) DeleteMemory(ctx context.Context, id string) error {
	return c.send(ctx, request{
		method: http.MethodDelete,
		path:   "/v1/memories/" + url.PathEscape(id),
	})
}

// SearchMemories runs a semantic search over stored memories
func (c *Client) SearchMemories(ctx context.Context, query string, limit int) ([]Memory, error) {
	var resp []Memory
	err := c.send(ctx, request{
		method: http.MethodPost,
		path:   "/v1/memories/search",
		body:   SearchRequest{Query: query, Limit: limit},
		out:    &resp,
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// MemoriesByCategory returns all memories of one category
func (c *Client) MemoriesByCategory(ctx context.Context, category MemoryCategory) ([]Memory, error) {
	var resp []Memory
	err := c.send(ctx, request{
		method: http.MethodGet,
		path:   "/v1/memories/by-category/" + url.PathEscape(string(category)),
		out:    &resp,
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// MemoriesByImportance returns all memories of one importance level
func (c *Client) MemoriesByImportance(ctx context.Context, importance ImportanceLevel) ([]Memory, error) {
	var resp []Memory
	err := c.send(ctx, request{
		method: http.MethodGet,
		path:   "/v1/memories/by-importance/" + url.PathEscape(string(importance)),
		out:    &resp,
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// RelatedMemories walks the knowledge graph from one memory up to depth hops
func (c *Client) RelatedMemories(ctx context.Context, id string, depth int) ([]Memory, error) {
	query := url.Values{}
	query.Set("depth", strconv.Itoa(depth))

	var resp []Memory
	err := c.send(ctx, request{
		method: http.MethodGet,
		path:   fmt.Sprintf("/v1/memories/%s/related", url.PathEscape(id)),
		query:  query,
		out:    &resp,
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// RecordFeedback marks whether an injected memory was helpful
func (c *Client) RecordFeedback(ctx context.Context, id string, helpful bool) error {
	query := url.Values{}
	query.Set("helpful", strconv.FormatBool(helpful))

	return c.send(ctx, request{
		method: http.MethodPost,
		path:   fmt.Sprintf("/v1/memories/%s/feedback", url.PathEscape(id)),
		query:  query,
	})
}
