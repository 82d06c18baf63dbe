package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// NewWhoamiCmd creates the whoami command
func NewWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newCLIContext()
			if err != nil {
				return err
			}
			if err := ctx.requireAuth(); err != nil {
				return err
			}

			sess, _ := ctx.manager.Store().Session()
			fmt.Printf("User:   %s (%s)\n", sess.User.Name, sess.User.Email)
			if sess.User.TenantID != "" {
				fmt.Printf("Tenant: %s\n", sess.User.TenantID)
			}
			if len(sess.User.Roles) > 0 {
				fmt.Printf("Roles:  %s\n", strings.Join(sess.User.Roles, ", "))
			}
			if sess.TokenExpiresAt > 0 {
				fmt.Printf("Token expires: %s\n", time.Unix(sess.TokenExpiresAt, 0).Format(time.RFC3339))
			}
			return nil
		},
	}
}
