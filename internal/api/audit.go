package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ListAuditLogs returns one page of audit logs
func (c *Client) ListAuditLogs(ctx context.Context, page, size int) (*AuditLogList, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	var resp AuditLogList
	err := c.send(ctx, request{
		method: http.MethodGet,
		path:   "/v1/audit-logs",
		query:  query,
		out:    &resp,
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// RecentAuditLogs returns the most recent audit logs
func (c *Client) RecentAuditLogs(ctx context.Context, limit int) ([]AuditLog, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))

	var resp []AuditLog
	err := c.send(ctx, request{
		method: http.MethodGet,
		path:   "/v1/audit-logs/recent",
		query:  query,
		out:    &resp,
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// AuditLogsByEvent returns audit logs of one event type
func (c *Client) AuditLogsByEvent(ctx context.Context, eventType string) ([]AuditLog, error) {
	var resp []AuditLog
	err := c.send(ctx, request{
		method: http.MethodGet,
		path:   "/v1/audit-logs/by-event/" + url.PathEscape(eventType),
		out:    &resp,
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// AuditLogsByUser returns audit logs recorded for one user
func (c *Client) AuditLogsByUser(ctx context.Context, userID string) ([]AuditLog, error) {
	var resp []AuditLog
	err := c.send(ctx, request{
		method: http.MethodGet,
		path:   "/v1/audit-logs/by-user/" + url.PathEscape(userID),
		out:    &resp,
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
