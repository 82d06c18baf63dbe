package userconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTenant_DefaultsToEmpty(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tenantID, err := GetTenant()
	require.NoError(t, err)
	assert.Empty(t, tenantID)
}

func TestSetAndGetTenant(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, SetTenant("acme"))

	tenantID, err := GetTenant()
	require.NoError(t, err)
	assert.Equal(t, "acme", tenantID)
}

func TestSetTenant_EmptyResetsSlot(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, SetTenant("acme"))
	require.NoError(t, SetTenant(""))

	tenantID, err := GetTenant()
	require.NoError(t, err)
	assert.Empty(t, tenantID)
}

func TestSetTenant_PreservesAPIURL(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, SetAPIURL("https://api.example.com"))
	require.NoError(t, SetTenant("acme"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", cfg.APIURL)
	assert.Equal(t, "acme", cfg.TenantID)
}
