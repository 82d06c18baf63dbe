package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRefreshCmd creates the refresh command
func NewRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Exchange the current token for a fresh one",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newCLIContext()
			if err != nil {
				return err
			}
			if err := ctx.requireAuth(); err != nil {
				return err
			}

			if err := ctx.manager.Refresh(cmd.Context()); err != nil {
				return fmt.Errorf("refresh failed, session cleared: %w", err)
			}

			fmt.Println("✓ Token refreshed")
			return nil
		},
	}
}
