package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/oklog/ulid/v2"
)

const (
	// DefaultTimeout bounds every request; nothing may hang indefinitely
	DefaultTimeout = 30 * time.Second
	// maxTimeout is the hard upper bound a caller-supplied timeout is clamped to
	maxTimeout = 2 * time.Minute

	// DefaultTenant is used when no tenant identifier has ever been stored
	DefaultTenant = "default"

	headerTenant    = "X-Tenant-ID"
	headerRequestID = "X-Request-ID"
)

// Client is the single funnel every outbound API call goes through. It
// attaches tenant scoping and a request id to each request and normalizes
// every failure into *Error. It never reads the session store itself; the
// tenant and token sources are injected functions.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	tenantSource func() string
	tokenSource  func() string
	validate     *validator.Validate
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client. A zero timeout is replaced with
// the default so requests stay bounded.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient.Timeout <= 0 || httpClient.Timeout > maxTimeout {
			httpClient.Timeout = DefaultTimeout
		}
		c.httpClient = httpClient
	}
}

// WithTimeout overrides the request timeout, clamped to the hard upper bound
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d <= 0 || d > maxTimeout {
			d = DefaultTimeout
		}
		c.httpClient.Timeout = d
	}
}

// WithTenantSource sets the function the client reads the tenant identifier
// from on every request. An empty result falls back to DefaultTenant.
func WithTenantSource(source func() string) Option {
	return func(c *Client) { c.tenantSource = source }
}

// WithTokenSource sets the function the client reads a bearer token from.
// Requests go out unauthenticated when it returns "".
func WithTokenSource(source func() string) Option {
	return func(c *Client) { c.tokenSource = source }
}

// New creates an API client for the given base URL, e.g.
// "http://localhost:8080/api"
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		validate:   validator.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// request describes one outbound call through the funnel
type request struct {
	method string
	path   string
	query  url.Values
	body   any
	out    any
	bearer string // overrides the token source when set
}

// send dispatches one request and normalizes every failure path into *Error
func (c *Client) send(ctx context.Context, r request) error {
	var bodyReader io.Reader
	if r.body != nil {
		data, err := json.Marshal(r.body)
		if err != nil {
			return &Error{Message: fmt.Sprintf("failed to encode request: %v", err)}
		}
		bodyReader = bytes.NewReader(data)
	}

	endpoint := c.baseURL + r.path
	if len(r.query) > 0 {
		endpoint += "?" + r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, endpoint, bodyReader)
	if err != nil {
		return &Error{Message: fmt.Sprintf("failed to build request: %v", err)}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerTenant, c.tenant())
	req.Header.Set(headerRequestID, ulid.Make().String())

	token := r.bearer
	if token == "" && c.tokenSource != nil {
		token = c.tokenSource()
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return newTransportError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return newTransportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newHTTPError(resp.StatusCode, respBody)
	}

	if r.out == nil {
		return nil
	}

	if err := json.Unmarshal(respBody, r.out); err != nil {
		return newDecodeError(resp.StatusCode, err)
	}
	if err := c.validateResponse(r.out); err != nil {
		return newDecodeError(resp.StatusCode, err)
	}
	return nil
}

// tenant resolves the tenant identifier attached to every request
func (c *Client) tenant() string {
	if c.tenantSource != nil {
		if t := c.tenantSource(); t != "" {
			return t
		}
	}
	return DefaultTenant
}

// validateResponse runs the schema validator over a decoded response so a
// malformed backend payload fails fast instead of leaking zero values into
// callers. Slices are validated element-wise; scalar responses pass through.
func (c *Client) validateResponse(out any) error {
	v := reflect.ValueOf(out)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		return c.validate.Struct(v.Interface())
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			elem := v.Index(i)
			if elem.Kind() == reflect.Struct {
				if err := c.validate.Struct(elem.Interface()); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
