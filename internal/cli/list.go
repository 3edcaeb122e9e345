package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all books in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openCatalog(cmd.Context())
			if err != nil {
				return err
			}

			books := store.List()
			if a.jsonMode {
				return printJSON(cmd.OutOrStdout(), books)
			}
			if len(books) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No books.")
				return nil
			}
			for _, b := range books {
				fmt.Fprintln(cmd.OutOrStdout(), b)
			}
			return nil
		},
	}
}
