package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/integraltech/brainsentry-cli/internal/api"
)

// NewRelationshipCmd creates the relationship command group
func NewRelationshipCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "relationship",
		Aliases: []string{"rel"},
		Short:   "Manage relationships between memories",
	}

	cmd.AddCommand(newRelationshipListCmd())
	cmd.AddCommand(newRelationshipAddCmd())
	cmd.AddCommand(newRelationshipDeleteCmd())

	return cmd
}

func newRelationshipListCmd() *cobra.Command {
	var incoming bool

	cmd := &cobra.Command{
		Use:     "ls <memory-id>",
		Aliases: []string{"list"},
		Short:   "List relationships for a memory",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newCLIContext()
			if err != nil {
				return err
			}
			if err := ctx.requireAuth(); err != nil {
				return err
			}

			var relationships []api.Relationship
			if incoming {
				relationships, err = ctx.client.RelationshipsTo(cmd.Context(), args[0])
			} else {
				relationships, err = ctx.client.RelationshipsFrom(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}

			if len(relationships) == 0 {
				fmt.Println("No relationships found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "FROM\tTO\tTYPE\tSTRENGTH")
			fmt.Fprintln(w, "────\t──\t────\t────────")
			for _, rel := range relationships {
				fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\n", rel.FromMemoryID, rel.ToMemoryID, rel.Type, rel.Strength)
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().BoolVar(&incoming, "incoming", false, "List relationships pointing at the memory instead")

	return cmd
}

func newRelationshipAddCmd() *cobra.Command {
	var relType string
	var strength float64

	cmd := &cobra.Command{
		Use:   "add <from-id> <to-id>",
		Short: "Link two memories",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newCLIContext()
			if err != nil {
				return err
			}
			if err := ctx.requireAuth(); err != nil {
				return err
			}

			rel, err := ctx.client.CreateRelationship(cmd.Context(), api.CreateRelationshipRequest{
				FromMemoryID: args[0],
				ToMemoryID:   args[1],
				Type:         relType,
				Strength:     strength,
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Created relationship %s\n", rel.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&relType, "type", "RELATED_TO", "Relationship type")
	cmd.Flags().Float64Var(&strength, "strength", 0, "Relationship strength")

	return cmd
}

func newRelationshipDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <memory-id>",
		Aliases: []string{"delete"},
		Short:   "Delete all relationships touching a memory",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newCLIContext()
			if err != nil {
				return err
			}
			if err := ctx.requireAuth(); err != nil {
				return err
			}

			if err := ctx.client.DeleteRelationships(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Printf("✓ Deleted relationships for %s\n", args[0])
			return nil
		},
	}
}
