package session

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	service   = "brainsentry-cli"
	tokenSlot = "token"
	userSlot  = "user"
)

// Credentials is the durable half of a session: the raw token plus the
// serialized user profile.
type Credentials struct {
	Token string
	User  User
}

// CredentialStore owns the two keyring slots that back a session. The token
// and user slots are only ever written or cleared together; callers never
// touch the keyring directly, so one slot cannot outlive the other.
type CredentialStore struct {
	ring Keyring
}

// NewCredentialStore creates a credential store over the given keyring
func NewCredentialStore(ring Keyring) *CredentialStore {
	return &CredentialStore{ring: ring}
}

// Save persists the token and user as a pair. If the second write fails the
// first is rolled back so no half-pair is left behind.
func (s *CredentialStore) Save(creds Credentials) error {
	userData, err := json.Marshal(creds.User)
	if err != nil {
		return fmt.Errorf("failed to serialize user: %w", err)
	}

	if err := s.ring.Set(service, tokenSlot, creds.Token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	if err := s.ring.Set(service, userSlot, string(userData)); err != nil {
		_ = s.ring.Delete(service, tokenSlot)
		return fmt.Errorf("failed to save user: %w", err)
	}

	return nil
}

// Load reads the stored pair. It returns nil with no error when either slot
// is absent; a half-pair is cleaned up and treated as absent. A stored user
// record that no longer parses is also treated as absent (fail closed).
func (s *CredentialStore) Load() (*Credentials, error) {
	token, err := s.ring.Get(service, tokenSlot)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			_ = s.Clear()
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load token: %w", err)
	}

	userData, err := s.ring.Get(service, userSlot)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			_ = s.Clear()
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	var user User
	if err := json.Unmarshal([]byte(userData), &user); err != nil {
		_ = s.Clear()
		return nil, nil
	}

	return &Credentials{Token: token, User: user}, nil
}

// UpdateToken replaces only the token slot, leaving the user slot untouched.
// Used after a successful refresh.
func (s *CredentialStore) UpdateToken(token string) error {
	if err := s.ring.Set(service, tokenSlot, token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

// Clear removes both slots. Missing slots are not an error so Clear is safe
// to call from any state, including half-written ones.
func (s *CredentialStore) Clear() error {
	tokenErr := s.ring.Delete(service, tokenSlot)
	userErr := s.ring.Delete(service, userSlot)

	if tokenErr != nil && !errors.Is(tokenErr, ErrKeyNotFound) {
		return fmt.Errorf("failed to clear token: %w", tokenErr)
	}
	if userErr != nil && !errors.Is(userErr, ErrKeyNotFound) {
		return fmt.Errorf("failed to clear user: %w", userErr)
	}
	return nil
}
