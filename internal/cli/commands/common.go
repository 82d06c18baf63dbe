package commands

import (
	"fmt"

	"github.com/integraltech/brainsentry-cli/internal/api"
	"github.com/integraltech/brainsentry-cli/internal/auth"
	"github.com/integraltech/brainsentry-cli/internal/config"
	"github.com/integraltech/brainsentry-cli/internal/logger"
	"github.com/integraltech/brainsentry-cli/internal/session"
	"github.com/integraltech/brainsentry-cli/internal/userconfig"
)

// cliContext bundles the wired-up core every command works against
type cliContext struct {
	cfg     *config.Config
	manager *auth.Manager
	client  *api.Client
}

// tenantSlot adapts the user config's tenant entry to the lifecycle
// manager's TenantSlot
type tenantSlot struct{}

func (tenantSlot) Set(tenantID string) error { return userconfig.SetTenant(tenantID) }
func (tenantSlot) Clear() error              { return userconfig.SetTenant("") }

// newCLIContext loads configuration, wires the session store, credential
// storage and request pipeline together, and restores any persisted session
func newCLIContext() (*cliContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	store := session.NewStore()
	creds := session.NewCredentialStore(session.SystemKeyring())

	client := api.New(cfg.APIURL,
		api.WithTenantSource(func() string {
			tenantID, _ := userconfig.GetTenant()
			return tenantID
		}),
		api.WithTokenSource(store.Token),
	)

	manager := auth.NewManager(store, creds, client, tenantSlot{}, logger.GetLogger())
	if err := manager.Initialize(); err != nil {
		return nil, err
	}

	return &cliContext{cfg: cfg, manager: manager, client: client}, nil
}

// requireAuth fails with a login hint unless a session is active
func (c *cliContext) requireAuth() error {
	if c.manager.Store().State() != session.StateAuthenticated {
		return fmt.Errorf("not authenticated. Run 'brainsentry login' first")
	}
	return nil
}
