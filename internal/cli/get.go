package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bookshelf/pkg/types"
)

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a book by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			store, err := a.openCatalog(cmd.Context())
			if err != nil {
				return err
			}

			book, err := store.Get(id)
			if err != nil {
				if errors.Is(err, types.ErrNotFound) {
					return userError(fmt.Errorf("book %q not found", id))
				}
				return classify(fmt.Errorf("get book: %w", err))
			}

			if a.jsonMode {
				return printJSON(cmd.OutOrStdout(), book)
			}
			fmt.Fprintln(cmd.OutOrStdout(), book)
			return nil
		},
	}
}
