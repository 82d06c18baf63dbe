package session

import "sync"

// Store is the single source of truth for "am I logged in, as whom, with
// what token". All mutation goes through the named operations below so the
// token/user pair can never diverge; callers only ever see copies.
type Store struct {
	mu      sync.RWMutex
	state   State
	session Session
}

// NewStore creates a store in the Loading state
func NewStore() *Store {
	return &Store{state: StateLoading}
}

// State returns the current lifecycle state
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Session returns a copy of the current session and whether one is present
func (s *Store) Session() (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateAuthenticated {
		return Session{}, false
	}
	return s.session, true
}

// Token returns the current bearer token, or "" when unauthenticated
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateAuthenticated {
		return ""
	}
	return s.session.Token
}

// SetAuthenticated installs a complete session and moves to Authenticated
func (s *Store) SetAuthenticated(sess Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateAuthenticated
	s.session = sess
}

// SetUnauthenticated drops any session and moves to Unauthenticated
func (s *Store) SetUnauthenticated() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateUnauthenticated
	s.session = Session{}
}

// UpdateToken replaces only the token of an authenticated session, as
// happens after a successful refresh. No-op when unauthenticated.
func (s *Store) UpdateToken(token string, expiresAt int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateAuthenticated {
		return
	}
	s.session.Token = token
	s.session.TokenExpiresAt = expiresAt
}

// UpdateUser replaces only the user profile of an authenticated session.
// No-op when unauthenticated.
func (s *Store) UpdateUser(user User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateAuthenticated {
		return
	}
	s.session.User = user
}
