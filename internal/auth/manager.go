package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/integraltech/brainsentry-cli/internal/api"
	"github.com/integraltech/brainsentry-cli/internal/session"
)

// AuthAPI is the slice of the request pipeline the lifecycle manager needs.
// This allows tests to substitute a fake backend without a real client.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*api.LoginResponse, error)
	Logout(ctx context.Context, token string) error
	Refresh(ctx context.Context, token string) (*api.RefreshResponse, error)
}

// TenantSlot is the separately stored tenant identifier the request pipeline
// scopes calls with. The manager keeps it in step with the session: login
// writes the user's home tenant, logout resets it. An explicit override set
// between those two events survives (impersonation support).
type TenantSlot interface {
	Set(tenantID string) error
	Clear() error
}

const logoutNotifyTimeout = 10 * time.Second

// Manager drives the session lifecycle: it decides at startup whether a
// stored session is usable, and owns the login/logout/refresh transitions.
//
// Known gap, kept to match observed behavior: a Logout racing an in-flight
// Refresh can have the refresh re-persist credentials after the logout
// cleared them. Calls are expected to be sequential per process.
type Manager struct {
	store   *session.Store
	creds   *session.CredentialStore
	api     AuthAPI
	tenants TenantSlot // optional
	log     zerolog.Logger
}

// NewManager creates a lifecycle manager. tenants may be nil when no tenant
// slot should be synchronized.
func NewManager(store *session.Store, creds *session.CredentialStore, authAPI AuthAPI, tenants TenantSlot, log zerolog.Logger) *Manager {
	return &Manager{
		store:   store,
		creds:   creds,
		api:     authAPI,
		tenants: tenants,
		log:     log,
	}
}

// Store returns the session store the manager mutates
func (m *Manager) Store() *session.Store {
	return m.store
}

// Initialize decides, once per process, whether previously stored
// credentials are usable. It makes no network calls. An undecodable or
// expired token clears durable storage and yields Unauthenticated; never
// trust a token that cannot be read.
func (m *Manager) Initialize() error {
	creds, err := m.creds.Load()
	if err != nil {
		m.store.SetUnauthenticated()
		return fmt.Errorf("failed to load stored credentials: %w", err)
	}

	if creds == nil {
		m.store.SetUnauthenticated()
		return nil
	}

	expiry, err := TokenExpiry(creds.Token)
	if err != nil || (!expiry.IsZero() && expiry.Before(time.Now())) {
		if err != nil {
			m.log.Debug().Err(err).Msg("stored token is undecodable, clearing session")
		} else {
			m.log.Debug().Time("expired_at", expiry).Msg("stored token is expired, clearing session")
		}
		if clearErr := m.creds.Clear(); clearErr != nil {
			m.store.SetUnauthenticated()
			return fmt.Errorf("failed to clear expired credentials: %w", clearErr)
		}
		m.store.SetUnauthenticated()
		return nil
	}

	m.store.SetAuthenticated(session.Session{
		User:           creds.User,
		Token:          creds.Token,
		TokenExpiresAt: expiryUnix(expiry),
	})
	m.log.Debug().Str("user", creds.User.Email).Msg("restored session from storage")
	return nil
}

// Login exchanges credentials with the backend and, on success, atomically
// persists the returned pair and transitions to Authenticated. On failure
// the session is left exactly as it was. Overlapping calls are not
// deduplicated; each performs a full round trip.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if password == "" {
		return fmt.Errorf("password is required")
	}

	resp, err := m.api.Login(ctx, email, password)
	if err != nil {
		return err
	}

	user := session.User{
		ID:       resp.User.ID,
		Email:    resp.User.Email,
		Name:     resp.User.Name,
		TenantID: resp.User.TenantID,
		Roles:    resp.User.Roles,
	}

	if err := m.creds.Save(session.Credentials{Token: resp.Token, User: user}); err != nil {
		return err
	}

	expiry, _ := TokenExpiry(resp.Token)
	m.store.SetAuthenticated(session.Session{
		User:           user,
		Token:          resp.Token,
		TokenExpiresAt: expiryUnix(expiry),
	})

	if m.tenants != nil && user.TenantID != "" {
		if err := m.tenants.Set(user.TenantID); err != nil {
			m.log.Warn().Err(err).Msg("failed to record tenant scope")
		}
	}

	m.log.Info().Str("user", user.Email).Msg("logged in")
	return nil
}

// Logout clears the stored pair and transitions to Unauthenticated
// synchronously, then notifies the backend best-effort in a detached
// goroutine. Failure of that notification never resurrects the session or
// reaches the caller.
func (m *Manager) Logout(ctx context.Context) error {
	token := m.store.Token()

	if err := m.creds.Clear(); err != nil {
		return err
	}
	m.store.SetUnauthenticated()

	if m.tenants != nil {
		if err := m.tenants.Clear(); err != nil {
			m.log.Warn().Err(err).Msg("failed to reset tenant scope")
		}
	}

	if token != "" {
		go func() {
			notifyCtx, cancel := context.WithTimeout(context.Background(), logoutNotifyTimeout)
			defer cancel()
			if err := m.api.Logout(notifyCtx, token); err != nil {
				m.log.Debug().Err(err).Msg("logout notification failed")
			}
		}()
	}

	m.log.Info().Msg("logged out")
	return nil
}

// Refresh exchanges the current token for a fresh one. With no token in
// memory it is a no-op. Any failure is terminal: the whole session is
// cleared and the error propagated. A failed refresh always means the
// session is dead, never "try again later".
func (m *Manager) Refresh(ctx context.Context) error {
	token := m.store.Token()
	if token == "" {
		return nil
	}

	resp, err := m.api.Refresh(ctx, token)
	if err != nil {
		if clearErr := m.creds.Clear(); clearErr != nil {
			m.log.Warn().Err(clearErr).Msg("failed to clear credentials after failed refresh")
		}
		m.store.SetUnauthenticated()
		return err
	}

	if err := m.creds.UpdateToken(resp.Token); err != nil {
		return err
	}

	expiry, _ := TokenExpiry(resp.Token)
	m.store.UpdateToken(resp.Token, expiryUnix(expiry))
	m.log.Debug().Msg("token refreshed")
	return nil
}

// UpdateUser replaces the stored user profile, leaving the token untouched
func (m *Manager) UpdateUser(user session.User) error {
	sess, ok := m.store.Session()
	if !ok {
		return fmt.Errorf("not authenticated")
	}

	if err := m.creds.Save(session.Credentials{Token: sess.Token, User: user}); err != nil {
		return err
	}
	m.store.UpdateUser(user)
	return nil
}

func expiryUnix(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}
