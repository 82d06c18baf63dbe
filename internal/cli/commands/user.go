package commands

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/integraltech/brainsentry-cli/internal/api"
)

// NewUserCmd creates the user administration command group
func NewUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "user",
		Aliases: []string{"users"},
		Short:   "Administer users",
	}

	cmd.AddCommand(newUserListCmd())
	cmd.AddCommand(newUserCreateCmd())
	cmd.AddCommand(newUserDeleteCmd())

	return cmd
}

func newUserListCmd() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newCLIContext()
			if err != nil {
				return err
			}
			if err := ctx.requireAuth(); err != nil {
				return err
			}

			var users []api.User
			if search != "" {
				users, err = ctx.client.SearchUsers(cmd.Context(), search)
			} else {
				users, err = ctx.client.ListUsers(cmd.Context())
			}
			if err != nil {
				return err
			}

			if len(users) == 0 {
				fmt.Println("No users found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tEMAIL\tNAME\tROLES\tACTIVE")
			fmt.Fprintln(w, "──\t─────\t────\t─────\t──────")
			for _, user := range users {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n",
					user.ID, user.Email, user.Name, strings.Join(user.Roles, ","), user.Active)
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Search by email or name")

	return cmd
}

func newUserCreateCmd() *cobra.Command {
	var name, password, tenantID string
	var roles []string

	cmd := &cobra.Command{
		Use:   "create <email>",
		Short: "Create a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newCLIContext()
			if err != nil {
				return err
			}
			if err := ctx.requireAuth(); err != nil {
				return err
			}

			user, err := ctx.client.CreateUser(cmd.Context(), api.CreateUserRequest{
				Email:    args[0],
				Name:     name,
				Password: password,
				TenantID: tenantID,
				Roles:    roles,
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Created user %s (%s)\n", user.Email, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&password, "password", "", "Initial password")
	cmd.Flags().StringVar(&tenantID, "tenant", "", "Home tenant id")
	cmd.Flags().StringSliceVar(&roles, "role", nil, "Role (repeatable)")

	return cmd
}

func newUserDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a user account",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newCLIContext()
			if err != nil {
				return err
			}
			if err := ctx.requireAuth(); err != nil {
				return err
			}

			if err := ctx.client.DeleteUser(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Printf("✓ Deleted user %s\n", args[0])
			return nil
		},
	}
}
