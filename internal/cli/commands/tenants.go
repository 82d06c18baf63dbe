package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/integraltech/brainsentry-cli/internal/api"
)

// NewTenantsCmd creates the tenants administration command group
func NewTenantsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tenants",
		Short: "Administer tenants",
	}

	cmd.AddCommand(newTenantsListCmd())
	cmd.AddCommand(newTenantsCreateCmd())
	cmd.AddCommand(newTenantsDeleteCmd())

	return cmd
}

func newTenantsListCmd() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List tenants",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newCLIContext()
			if err != nil {
				return err
			}
			if err := ctx.requireAuth(); err != nil {
				return err
			}

			var tenants []api.Tenant
			if search != "" {
				tenants, err = ctx.client.SearchTenants(cmd.Context(), search)
			} else {
				tenants, err = ctx.client.ListTenants(cmd.Context())
			}
			if err != nil {
				return err
			}

			if len(tenants) == 0 {
				fmt.Println("No tenants found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tSLUG\tACTIVE")
			fmt.Fprintln(w, "──\t────\t────\t──────")
			for _, tenant := range tenants {
				fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", tenant.ID, tenant.Name, tenant.Slug, tenant.Active)
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Search by name or slug")

	return cmd
}

func newTenantsCreateCmd() *cobra.Command {
	var slug, description string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a tenant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newCLIContext()
			if err != nil {
				return err
			}
			if err := ctx.requireAuth(); err != nil {
				return err
			}

			tenant, err := ctx.client.CreateTenant(cmd.Context(), api.CreateTenantRequest{
				Name:        args[0],
				Slug:        slug,
				Description: description,
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Created tenant %s (%s)\n", tenant.Name, tenant.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&slug, "slug", "", "URL-safe identifier")
	cmd.Flags().StringVar(&description, "description", "", "Description")

	return cmd
}

func newTenantsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a tenant",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newCLIContext()
			if err != nil {
				return err
			}
			if err := ctx.requireAuth(); err != nil {
				return err
			}

			if err := ctx.client.DeleteTenant(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Printf("✓ Deleted tenant %s\n", args[0])
			return nil
		},
	}
}
