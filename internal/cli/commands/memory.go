package commands

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/integraltech/brainsentry-cli/internal/api"
)

// NewMemoryCmd creates the memory command group
func NewMemoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "memory",
		Aliases: []string{"memories"},
		Short:   "Manage memories",
	}

	cmd.AddCommand(newMemoryListCmd())
	cmd.AddCommand(newMemoryGetCmd())
	cmd.AddCommand(newMemoryCreateCmd())
	cmd.AddCommand(newMemoryDeleteCmd())
	cmd.AddCommand(newMemorySearchCmd())
	cmd.AddCommand(newMemoryFeedbackCmd())

	return cmd
}

func newMemoryListCmd() *cobra.Command {
	var page, size int
	var category, importance string

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List memories",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newCLIContext()
			if err != nil {
				return err
			}
			if err := ctx.requireAuth(); err != nil {
				return err
			}

			var memories []api.Memory
			var total int64
			switch {
			case category != "":
				memories, err = ctx.client.MemoriesByCategory(cmd.Context(), api.MemoryCategory(strings.ToUpper(category)))
				total = int64(len(memories))
			case importance != "":
				memories, err = ctx.client.MemoriesByImportance(cmd.Context(), api.ImportanceLevel(strings.ToUpper(importance)))
				total = int64(len(memories))
			default:
				var list *api.MemoryList
				list, err = ctx.client.ListMemories(cmd.Context(), page, size)
				if list != nil {
					memories = list.Memories
					total = list.Total
				}
			}
			if err != nil {
				return err
			}

			if len(memories) == 0 {
				fmt.Println("No memories found.")
				return nil
			}

			printMemoryTable(memories)
			fmt.Printf("\n%d of %d total\n", len(memories), total)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "Page number")
	cmd.Flags().IntVar(&size, "size", 20, "Page size")
	cmd.Flags().StringVar(&category, "category", "", "Filter by category (DECISION, PATTERN, ...)")
	cmd.Flags().StringVar(&importance, "importance", "", "Filter by importance (CRITICAL, IMPORTANT, MINOR)")

	return cmd
}

func newMemoryGetCmd() *cobra.Command {
	var depth int
	var related bool

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one memory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newCLIContext()
			if err != nil {
				return err
			}
			if err := ctx.requireAuth(); err != nil {
				return err
			}

			memory, err := ctx.client.GetMemory(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("ID:         %s\n", memory.ID)
			fmt.Printf("Category:   %s\n", memory.Category)
			fmt.Printf("Importance: %s\n", memory.Importance)
			if len(memory.Tags) > 0 {
				fmt.Printf("Tags:       %s\n", strings.Join(memory.Tags, ", "))
			}
			fmt.Printf("Created:    %s\n", memory.CreatedAt.Format(time.RFC3339))
			fmt.Printf("Summary:    %s\n", memory.Summary)
			fmt.Printf("\n%s\n", memory.Content)

			if related {
				relatedMemories, err := ctx.client.RelatedMemories(cmd.Context(), memory.ID, depth)
				if err != nil {
					return err
				}
				if len(relatedMemories) > 0 {
					fmt.Println("\nRelated:")
					printMemoryTable(relatedMemories)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&related, "related", false, "Also show related memories")
	cmd.Flags().IntVar(&depth, "depth", 2, "Graph depth for --related")

	return cmd
}

func newMemoryCreateCmd() *cobra.Command {
	var summary, category, importance string
	var tags []string

	cmd := &cobra.Command{
		Use:   "create <content>",
		Short: "Create a memory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newCLIContext()
			if err != nil {
				return err
			}
			if err := ctx.requireAuth(); err != nil {
				return err
			}

			memory, err := ctx.client.CreateMemory(cmd.Context(), api.CreateMemoryRequest{
				Content:    args[0],
				Summary:    summary,
				Category:   api.MemoryCategory(strings.ToUpper(category)),
				Importance: api.ImportanceLevel(strings.ToUpper(importance)),
				Tags:       tags,
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Created memory %s\n", memory.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&summary, "summary", "", "Short summary")
	cmd.Flags().StringVar(&category, "category", string(api.CategoryDomain), "Category")
	cmd.Flags().StringVar(&importance, "importance", string(api.ImportanceMinor), "Importance")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tag (repeatable)")

	return cmd
}

func newMemoryDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a memory",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newCLIContext()
			if err != nil {
				return err
			}
			if err := ctx.requireAuth(); err != nil {
				return err
			}

			if err := ctx.client.DeleteMemory(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Printf("✓ Deleted memory %s\n", args[0])
			return nil
		},
	}
}

func newMemorySearchCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search memories semantically",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newCLIContext()
			if err != nil {
				return err
			}
			if err := ctx.requireAuth(); err != nil {
				return err
			}

			memories, err := ctx.client.SearchMemories(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}

			if len(memories) == 0 {
				fmt.Println("No matches.")
				return nil
			}

			printMemoryTable(memories)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum results")

	return cmd
}

func newMemoryFeedbackCmd() *cobra.Command {
	var helpful bool

	cmd := &cobra.Command{
		Use:   "feedback <id>",
		Short: "Record whether an injected memory was helpful",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newCLIContext()
			if err != nil {
				return err
			}
			if err := ctx.requireAuth(); err != nil {
				return err
			}

			if err := ctx.client.RecordFeedback(cmd.Context(), args[0], helpful); err != nil {
				return err
			}

			fmt.Println("✓ Feedback recorded")
			return nil
		},
	}

	cmd.Flags().BoolVar(&helpful, "helpful", true, "Whether the memory was helpful")

	return cmd
}

func printMemoryTable(memories []api.Memory) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCATEGORY\tIMPORTANCE\tSUMMARY")
	fmt.Fprintln(w, "──\t────────\t──────────\t───────")

	for _, memory := range memories {
		summary := memory.Summary
		if len(summary) > 60 {
			summary = summary[:57] + "..."
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			memory.ID,
			memory.Category,
			memory.Importance,
			summary,
		)
	}

	w.Flush()
}
