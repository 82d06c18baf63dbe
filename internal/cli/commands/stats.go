package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewStatsCmd creates the stats command
func NewStatsCmd() *cobra.Command {
	var health bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show deployment statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newCLIContext()
			if err != nil {
				return err
			}

			if health {
				status, err := ctx.client.HealthCheck(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Printf("Status: %s\n", status.Status)
				return nil
			}

			if err := ctx.requireAuth(); err != nil {
				return err
			}

			stats, err := ctx.client.GetStats(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("Total memories:      %d\n", stats.TotalMemories)
			fmt.Printf("Avg injection rate:  %.2f\n", stats.AvgInjectionRate)
			fmt.Printf("Avg helpfulness:     %.2f\n", stats.AvgHelpfulnessRate)

			if len(stats.ByCategory) > 0 {
				fmt.Println("\nBy category:")
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				for category, count := range stats.ByCategory {
					fmt.Fprintf(w, "  %s\t%d\n", category, count)
				}
				w.Flush()
			}
			if len(stats.ByImportance) > 0 {
				fmt.Println("\nBy importance:")
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				for importance, count := range stats.ByImportance {
					fmt.Fprintf(w, "  %s\t%d\n", importance, count)
				}
				w.Flush()
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&health, "health", false, "Ping the backend health endpoint instead")

	return cmd
}
