package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm", "delete"},
		Short:   "Remove a book by ID",
		Long: `Remove deletes the book with the given ID. Removing an unknown ID
changes nothing and is not an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			store, err := a.openCatalog(cmd.Context())
			if err != nil {
				return err
			}

			removed, err := store.Remove(cmd.Context(), id)
			if err != nil {
				return classify(fmt.Errorf("remove book: %w", err))
			}

			if a.jsonMode {
				return printJSON(cmd.OutOrStdout(), map[string]any{"id": id, "removed": removed})
			}
			if removed {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed book %s\n", id)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Book %q not found; nothing removed\n", id)
			}
			return nil
		},
	}
}
