package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/integraltech/brainsentry-cli/internal/api"
	"github.com/integraltech/brainsentry-cli/internal/cli/tenantselect"
	"github.com/integraltech/brainsentry-cli/internal/userconfig"
)

// NewTenantCmd creates the tenant scope command group. This manages the
// locally stored tenant identifier attached to every request, not the
// tenants themselves (see the tenants command for that).
func NewTenantCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tenant",
		Short: "Show or change the tenant scope used for API calls",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Show the current tenant scope",
		RunE: func(cmd *cobra.Command, args []string) error {
			tenantID, err := userconfig.GetTenant()
			if err != nil {
				return err
			}
			if tenantID == "" {
				tenantID = api.DefaultTenant
			}
			fmt.Println(tenantID)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <tenant-id>",
		Short: "Set the tenant scope (pass \"\" to reset)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := userconfig.SetTenant(args[0]); err != nil {
				return err
			}
			if args[0] == "" {
				fmt.Printf("✓ Tenant scope reset to %s\n", api.DefaultTenant)
			} else {
				fmt.Printf("✓ Tenant scope set to %s\n", args[0])
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "select",
		Short: "Pick a tenant scope interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newCLIContext()
			if err != nil {
				return err
			}
			if err := ctx.requireAuth(); err != nil {
				return err
			}

			tenants, err := ctx.client.ListTenants(cmd.Context())
			if err != nil {
				return err
			}

			tenant, err := tenantselect.PromptTenantSelection(tenants)
			if err != nil {
				return err
			}

			if err := userconfig.SetTenant(tenant.ID); err != nil {
				return fmt.Errorf("failed to save tenant scope: %w", err)
			}

			fmt.Printf("✓ Tenant scope set to %s (%s)\n", tenant.Name, tenant.ID)
			return nil
		},
	})

	return cmd
}
