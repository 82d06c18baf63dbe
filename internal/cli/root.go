package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/integraltech/brainsentry-cli/internal/cli/commands"
	"github.com/integraltech/brainsentry-cli/internal/config"
	"github.com/integraltech/brainsentry-cli/internal/logger"
)

var version = "dev" // Will be set during build

var rootCmd = &cobra.Command{
	Use:   "brainsentry",
	Short: "Brain Sentry - Memory management for AI coding sessions",
	Long: `Brain Sentry CLI - Administer your Brain Sentry deployment.

Manage memories, relationships, tenants, users and audit logs through the
Brain Sentry REST API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			logger.Init("warn", "console")
			return
		}
		logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	},
}

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("brainsentry version %s\n", version)
		},
	})

	rootCmd.AddCommand(commands.NewInitCmd())
	rootCmd.AddCommand(commands.NewLoginCmd())
	rootCmd.AddCommand(commands.NewLogoutCmd())
	rootCmd.AddCommand(commands.NewWhoamiCmd())
	rootCmd.AddCommand(commands.NewRefreshCmd())
	rootCmd.AddCommand(commands.NewTenantCmd())
	rootCmd.AddCommand(commands.NewMemoryCmd())
	rootCmd.AddCommand(commands.NewRelationshipCmd())
	rootCmd.AddCommand(commands.NewTenantsCmd())
	rootCmd.AddCommand(commands.NewUserCmd())
	rootCmd.AddCommand(commands.NewAuditCmd())
	rootCmd.AddCommand(commands.NewStatsCmd())
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
