package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/integraltech/brainsentry-cli/internal/api"
	"github.com/integraltech/brainsentry-cli/internal/auth"
	"github.com/integraltech/brainsentry-cli/internal/session"
)

// fakeTenantSlot records tenant scope changes
type fakeTenantSlot struct {
	tenantID string
	cleared  bool
}

func (f *fakeTenantSlot) Set(tenantID string) error {
	f.tenantID = tenantID
	return nil
}

func (f *fakeTenantSlot) Clear() error {
	f.tenantID = ""
	f.cleared = true
	return nil
}

type testEnv struct {
	manager *auth.Manager
	store   *session.Store
	creds   *session.CredentialStore
	ring    *session.MemoryKeyring
	tenants *fakeTenantSlot
}

func newTestEnv(t *testing.T, handler http.Handler) *testEnv {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	ring := session.NewMemoryKeyring()
	store := session.NewStore()
	creds := session.NewCredentialStore(ring)
	tenants := &fakeTenantSlot{}
	client := api.New(server.URL)

	return &testEnv{
		manager: auth.NewManager(store, creds, client, tenants, zerolog.Nop()),
		store:   store,
		creds:   creds,
		ring:    ring,
		tenants: tenants,
	}
}

func seedCredentials(t *testing.T, env *testEnv, token string, user session.User) {
	t.Helper()
	require.NoError(t, env.creds.Save(session.Credentials{Token: token, User: user}))
}

func TestInitialize_NoStoredCredentials(t *testing.T) {
	env := newTestEnv(t, http.NotFoundHandler())

	require.NoError(t, env.manager.Initialize())
	assert.Equal(t, session.StateUnauthenticated, env.store.State())
}

func TestInitialize_ValidStoredCredentials(t *testing.T) {
	env := newTestEnv(t, http.NotFoundHandler())
	user := session.User{ID: "u1", Email: "a@b.com", Name: "Alice", TenantID: "acme", Roles: []string{"ADMIN"}}
	seedCredentials(t, env, tokenWithExpiry(t, time.Now().Add(time.Hour)), user)

	require.NoError(t, env.manager.Initialize())

	assert.Equal(t, session.StateAuthenticated, env.store.State())
	sess, ok := env.store.Session()
	require.True(t, ok)
	// Round-trip fidelity: the exact stored profile comes back
	assert.Equal(t, user, sess.User)
	assert.Greater(t, sess.TokenExpiresAt, time.Now().Unix())
}

func TestInitialize_ExpiredTokenClearsStorage(t *testing.T) {
	env := newTestEnv(t, http.NotFoundHandler())
	seedCredentials(t, env, tokenWithExpiry(t, time.Now().Add(-10*time.Second)), session.User{ID: "u1", Email: "a@b.com"})

	require.NoError(t, env.manager.Initialize())

	assert.Equal(t, session.StateUnauthenticated, env.store.State())
	assert.Equal(t, 0, env.ring.Len())
}

func TestInitialize_UndecodableTokenClearsStorage(t *testing.T) {
	env := newTestEnv(t, http.NotFoundHandler())
	seedCredentials(t, env, "garbage", session.User{ID: "u1", Email: "a@b.com"})

	require.NoError(t, env.manager.Initialize())

	assert.Equal(t, session.StateUnauthenticated, env.store.State())
	assert.Equal(t, 0, env.ring.Len())
}

func loginHandler(t *testing.T, token string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/auth/login" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var req api.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		if req.Email != "a@b.com" || req.Password != "x" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message": "invalid credentials"}`))
			return
		}

		json.NewEncoder(w).Encode(map[string]any{
			"token": token,
			"user": map[string]any{
				"id":       "u1",
				"email":    "a@b.com",
				"name":     "Alice",
				"tenantId": "acme",
			},
		})
	})
}

func TestLogin_Success(t *testing.T) {
	env := newTestEnv(t, loginHandler(t, "T1"))
	require.NoError(t, env.manager.Initialize())

	require.NoError(t, env.manager.Login(context.Background(), "a@b.com", "x"))

	assert.Equal(t, session.StateAuthenticated, env.store.State())
	assert.Equal(t, "T1", env.store.Token())

	// Both slots persisted as a pair
	creds, err := env.creds.Load()
	require.NoError(t, err)
	require.NotNil(t, creds)
	assert.Equal(t, "T1", creds.Token)
	assert.Equal(t, "u1", creds.User.ID)
	assert.Equal(t, "a@b.com", creds.User.Email)

	// Tenant slot synced to the user's home tenant
	assert.Equal(t, "acme", env.tenants.tenantID)
}

func TestLogin_FailureLeavesSessionUntouched(t *testing.T) {
	env := newTestEnv(t, loginHandler(t, "T1"))
	require.NoError(t, env.manager.Initialize())

	err := env.manager.Login(context.Background(), "a@b.com", "wrong")
	require.Error(t, err)

	apiErr, ok := api.AsError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "invalid credentials", apiErr.Message)

	assert.Equal(t, session.StateUnauthenticated, env.store.State())
	assert.Equal(t, 0, env.ring.Len())
}

func TestLogin_EmptyCredentialsRejectedLocally(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be sent")
	}))
	require.NoError(t, env.manager.Initialize())

	assert.Error(t, env.manager.Login(context.Background(), "", "x"))
	assert.Error(t, env.manager.Login(context.Background(), "a@b.com", ""))
}

func TestLogout_ClearsSessionAndNotifiesBackend(t *testing.T) {
	notified := make(chan string, 1)
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/auth/logout" {
			notified <- r.Header.Get("Authorization")
		}
	}))

	seedCredentials(t, env, tokenWithExpiry(t, time.Now().Add(time.Hour)), session.User{ID: "u1", Email: "a@b.com"})
	require.NoError(t, env.manager.Initialize())
	require.Equal(t, session.StateAuthenticated, env.store.State())

	require.NoError(t, env.manager.Logout(context.Background()))

	// Local effect is synchronous
	assert.Equal(t, session.StateUnauthenticated, env.store.State())
	assert.Equal(t, 0, env.ring.Len())
	assert.True(t, env.tenants.cleared)

	// Backend notification is detached but carries the old bearer
	select {
	case authHeader := <-notified:
		assert.Contains(t, authHeader, "Bearer ")
	case <-time.After(2 * time.Second):
		t.Fatal("logout notification never reached the backend")
	}
}

func TestLogout_BackendFailureIsSwallowed(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	seedCredentials(t, env, tokenWithExpiry(t, time.Now().Add(time.Hour)), session.User{ID: "u1", Email: "a@b.com"})
	require.NoError(t, env.manager.Initialize())

	require.NoError(t, env.manager.Logout(context.Background()))
	assert.Equal(t, session.StateUnauthenticated, env.store.State())
	assert.Equal(t, 0, env.ring.Len())
}

func TestRefresh_NoTokenIsNoop(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be sent")
	}))
	require.NoError(t, env.manager.Initialize())

	require.NoError(t, env.manager.Refresh(context.Background()))
	assert.Equal(t, session.StateUnauthenticated, env.store.State())
	assert.Equal(t, 0, env.ring.Len())
}

func TestRefresh_Success(t *testing.T) {
	fresh := tokenWithExpiry(t, time.Now().Add(2*time.Hour))
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/auth/refresh" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"token": fresh})
	}))

	user := session.User{ID: "u1", Email: "a@b.com", Name: "Alice"}
	seedCredentials(t, env, tokenWithExpiry(t, time.Now().Add(time.Minute)), user)
	require.NoError(t, env.manager.Initialize())

	require.NoError(t, env.manager.Refresh(context.Background()))

	// Token replaced in memory and storage, user untouched in both
	assert.Equal(t, fresh, env.store.Token())
	creds, err := env.creds.Load()
	require.NoError(t, err)
	require.NotNil(t, creds)
	assert.Equal(t, fresh, creds.Token)
	assert.Equal(t, user, creds.User)
}

func TestRefresh_FailureKillsSession(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "token revoked"}`))
	}))

	seedCredentials(t, env, tokenWithExpiry(t, time.Now().Add(time.Minute)), session.User{ID: "u1", Email: "a@b.com"})
	require.NoError(t, env.manager.Initialize())

	err := env.manager.Refresh(context.Background())
	require.Error(t, err)

	assert.Equal(t, session.StateUnauthenticated, env.store.State())
	assert.Equal(t, 0, env.ring.Len())
}
