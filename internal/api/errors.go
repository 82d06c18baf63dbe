package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error is the single shape every failed call converges to before reaching
// a caller: network failures, non-2xx responses and undecodable bodies all
// end up here. StatusCode is zero when no HTTP response was received.
type Error struct {
	Message    string          `json:"message"`
	StatusCode int             `json:"status_code,omitempty"`
	Details    json.RawMessage `json:"details,omitempty"`
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
	}
	return e.Message
}

// AsError extracts an *Error from an error chain
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNotFound reports whether err is an API error with status 404
func IsNotFound(err error) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether err is an API error with status 401
func IsUnauthorized(err error) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.StatusCode == http.StatusUnauthorized
}

// errorBody is the message-bearing JSON shape backends return on failure
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// newHTTPError builds an Error from a non-2xx response body, preferring any
// message field in the body over the transport-level status text
func newHTTPError(statusCode int, body []byte) *Error {
	apiErr := &Error{
		Message:    http.StatusText(statusCode),
		StatusCode: statusCode,
	}
	if len(body) > 0 {
		apiErr.Details = json.RawMessage(body)
		var parsed errorBody
		if err := json.Unmarshal(body, &parsed); err == nil {
			if parsed.Message != "" {
				apiErr.Message = parsed.Message
			} else if parsed.Error != "" {
				apiErr.Message = parsed.Error
			}
		}
	}
	return apiErr
}

// newTransportError builds an Error for a request that never produced a
// response (connection failure, timeout)
func newTransportError(err error) *Error {
	return &Error{Message: fmt.Sprintf("request failed: %v", err)}
}

// newDecodeError builds an Error for a success response whose body could
// not be decoded or failed schema validation
func newDecodeError(statusCode int, err error) *Error {
	return &Error{
		Message:    fmt.Sprintf("invalid response body: %v", err),
		StatusCode: statusCode,
	}
}
