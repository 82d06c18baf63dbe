package commands

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/integraltech/brainsentry-cli/internal/api"
)

// NewAuditCmd creates the audit log command group
func NewAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Inspect audit logs",
	}

	cmd.AddCommand(newAuditListCmd())
	cmd.AddCommand(newAuditRecentCmd())

	return cmd
}

func newAuditListCmd() *cobra.Command {
	var page, size int
	var eventType, userID string

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List audit logs",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newCLIContext()
			if err != nil {
				return err
			}
			if err := ctx.requireAuth(); err != nil {
				return err
			}

			var logs []api.AuditLog
			switch {
			case eventType != "":
				logs, err = ctx.client.AuditLogsByEvent(cmd.Context(), eventType)
			case userID != "":
				logs, err = ctx.client.AuditLogsByUser(cmd.Context(), userID)
			default:
				var list *api.AuditLogList
				list, err = ctx.client.ListAuditLogs(cmd.Context(), page, size)
				if list != nil {
					logs = list.Logs
				}
			}
			if err != nil {
				return err
			}

			printAuditTable(logs)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "Page number")
	cmd.Flags().IntVar(&size, "size", 20, "Page size")
	cmd.Flags().StringVar(&eventType, "event", "", "Filter by event type")
	cmd.Flags().StringVar(&userID, "user", "", "Filter by user id")

	return cmd
}

func newAuditRecentCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show the most recent audit logs",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newCLIContext()
			if err != nil {
				return err
			}
			if err := ctx.requireAuth(); err != nil {
				return err
			}

			logs, err := ctx.client.RecentAuditLogs(cmd.Context(), limit)
			if err != nil {
				return err
			}

			printAuditTable(logs)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum entries")

	return cmd
}

func printAuditTable(logs []api.AuditLog) {
	if len(logs) == 0 {
		fmt.Println("No audit logs found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIMESTAMP\tEVENT\tUSER\tOUTCOME\tLATENCY")
	fmt.Fprintln(w, "─────────\t─────\t────\t───────\t───────")
	for _, entry := range logs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%dms\n",
			entry.Timestamp.Format(time.RFC3339),
			entry.EventType,
			entry.UserID,
			entry.Outcome,
			entry.LatencyMs,
		)
	}
	w.Flush()
}
