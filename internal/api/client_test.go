package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/integraltech/brainsentry-cli/internal/api"
)

func healthHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "UP"})
	})
}

func TestClient_DefaultTenantHeader(t *testing.T) {
	var tenants []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenants = append(tenants, r.Header.Get("X-Tenant-ID"))
		json.NewEncoder(w).Encode(map[string]string{"status": "UP"})
	}))
	defer server.Close()

	client := api.New(server.URL)

	// Two sequential calls with no tenant ever stored
	_, err := client.HealthCheck(context.Background())
	require.NoError(t, err)
	_, err = client.HealthCheck(context.Background())
	require.NoError(t, err)

	require.Len(t, tenants, 2)
	assert.Equal(t, "default", tenants[0])
	assert.Equal(t, "default", tenants[1])
}

func TestClient_StoredTenantHeader(t *testing.T) {
	var gotTenant string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTenant = r.Header.Get("X-Tenant-ID")
		json.NewEncoder(w).Encode(map[string]string{"status": "UP"})
	}))
	defer server.Close()

	client := api.New(server.URL, api.WithTenantSource(func() string { return "acme" }))

	_, err := client.HealthCheck(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "acme", gotTenant)
}

func TestClient_RequestIDAttached(t *testing.T) {
	ids := map[string]bool{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids[r.Header.Get("X-Request-ID")] = true
		json.NewEncoder(w).Encode(map[string]string{"status": "UP"})
	}))
	defer server.Close()

	client := api.New(server.URL)
	for i := 0; i < 3; i++ {
		_, err := client.HealthCheck(context.Background())
		require.NoError(t, err)
	}

	// Fresh id per request, never empty
	assert.Len(t, ids, 3)
	assert.False(t, ids[""])
}

func TestClient_BearerFromTokenSource(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]string{"status": "UP"})
	}))
	defer server.Close()

	client := api.New(server.URL, api.WithTokenSource(func() string { return "T1" }))

	_, err := client.HealthCheck(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer T1", gotAuth)
}

func TestClient_HTTPErrorUsesBodyMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "memory not found"}`))
	}))
	defer server.Close()

	client := api.New(server.URL)
	_, err := client.GetMemory(context.Background(), "missing")
	require.Error(t, err)

	apiErr, ok := api.AsError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "memory not found", apiErr.Message)
	assert.True(t, api.IsNotFound(err))
}

func TestClient_HTTPErrorFallsBackToStatusText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := api.New(server.URL)
	_, err := client.GetStats(context.Background())
	require.Error(t, err)

	apiErr, ok := api.AsError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Equal(t, http.StatusText(http.StatusServiceUnavailable), apiErr.Message)
}

func TestClient_TransportFailureHasNoStatusCode(t *testing.T) {
	server := httptest.NewServer(healthHandler())
	server.Close() // connection refused from here on

	client := api.New(server.URL)
	_, err := client.HealthCheck(context.Background())
	require.Error(t, err)

	apiErr, ok := api.AsError(err)
	require.True(t, ok)
	assert.Zero(t, apiErr.StatusCode)
	assert.NotEmpty(t, apiErr.Message)
}

func TestClient_MalformedBodyIsDecodeFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	client := api.New(server.URL)
	_, err := client.HealthCheck(context.Background())
	require.Error(t, err)

	apiErr, ok := api.AsError(err)
	require.True(t, ok)
	assert.Contains(t, apiErr.Message, "invalid response body")
}

func TestClient_SchemaViolationIsDecodeFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Valid JSON but missing the required token field
		w.Write([]byte(`{"user": {"id": "u1", "email": "a@b.com"}}`))
	}))
	defer server.Close()

	client := api.New(server.URL)
	_, err := client.Login(context.Background(), "a@b.com", "x")
	require.Error(t, err)

	apiErr, ok := api.AsError(err)
	require.True(t, ok)
	assert.Contains(t, apiErr.Message, "invalid response body")
}

func TestClient_ListMemoriesPaging(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/memories", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "50", r.URL.Query().Get("size"))
		json.NewEncoder(w).Encode(map[string]any{
			"memories": []map[string]any{
				{"id": "m1", "content": "use ULIDs for ids", "category": "DECISION", "importance": "IMPORTANT"},
			},
			"total":      101,
			"page":       2,
			"size":       50,
			"totalPages": 3,
		})
	}))
	defer server.Close()

	client := api.New(server.URL)
	list, err := client.ListMemories(context.Background(), 2, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(101), list.Total)
	require.Len(t, list.Memories, 1)
	assert.Equal(t, api.CategoryDecision, list.Memories[0].Category)
}

func TestClient_SearchMemories(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/memories/search", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req api.SearchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "caching", req.Query)
		assert.Equal(t, 5, req.Limit)

		json.NewEncoder(w).Encode([]map[string]any{
			{"id": "m1", "content": "cache invalidation is hard", "category": "PATTERN", "importance": "CRITICAL"},
		})
	}))
	defer server.Close()

	client := api.New(server.URL)
	memories, err := client.SearchMemories(context.Background(), "caching", 5)
	require.NoError(t, err)
	require.Len(t, memories, 1)
	assert.Equal(t, "m1", memories[0].ID)
}

func TestClient_DeleteHasNoBodyToDecode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := api.New(server.URL)
	require.NoError(t, client.DeleteMemory(context.Background(), "m1"))
}
