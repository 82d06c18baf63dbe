package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/integraltech/brainsentry-cli/internal/config"
)

// NewInitCmd creates the init command
func NewInitCmd() *cobra.Command {
	var apiURL string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a brainsentry.json configuration file in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(config.ProjectFileName); err == nil {
				return fmt.Errorf("%s already exists", config.ProjectFileName)
			}

			if apiURL == "" {
				apiURL = config.DefaultAPIURL
			}

			cfg := &config.ProjectConfig{APIURL: apiURL}
			if err := config.SaveProjectFile(config.ProjectFileName, cfg); err != nil {
				return err
			}

			fmt.Printf("✓ Created %s\n", config.ProjectFileName)
			fmt.Printf("  API URL: %s\n", apiURL)
			fmt.Println("\nNext: brainsentry login --email you@example.com")
			return nil
		},
	}

	cmd.Flags().StringVar(&apiURL, "api-url", "", fmt.Sprintf("Backend API base URL (default %s)", config.DefaultAPIURL))

	return cmd
}
