package session

import "time"

// State describes where the session machine currently is. Every process
// starts in StateLoading until Initialize has inspected durable storage.
type State int

const (
	StateLoading State = iota
	StateUnauthenticated
	StateAuthenticated
)

// String returns a human-readable state name
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// User is the profile half of a session, persisted alongside the token
type User struct {
	ID       string   `json:"id"`
	Email    string   `json:"email"`
	Name     string   `json:"name,omitempty"`
	TenantID string   `json:"tenant_id,omitempty"`
	Roles    []string `json:"roles,omitempty"`
}

// Session is the in-memory representation of the current authenticated
// identity. It is either fully present (token + user) or absent entirely;
// no code path may leave it half populated.
type Session struct {
	User           User
	Token          string
	TokenExpiresAt int64 // unix seconds, taken from the token's exp claim
}

// Expired reports whether the session's token expiry is in the past
func (s Session) Expired() bool {
	return s.TokenExpiresAt > 0 && s.TokenExpiresAt < time.Now().Unix()
}

// HasRole reports whether the session's user carries the given role
func (s Session) HasRole(role string) bool {
	for _, r := range s.User.Roles {
		if r == role {
			return true
		}
	}
	return false
}
