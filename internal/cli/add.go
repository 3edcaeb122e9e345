package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAddCmd(a *app) *cobra.Command {
	var (
		title  string
		author string
		year   int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book to the catalog",
		Long: `Add stores a new book and prints it with its assigned ID.

Example:
  shelf add --title "1984" --author "George Orwell" --year 1949
  shelf add --title "Beowulf" --author "Unknown" --year -1000 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openCatalog(cmd.Context())
			if err != nil {
				return err
			}

			book, err := store.Add(cmd.Context(), title, author, year)
			if err != nil {
				return classify(fmt.Errorf("add book: %w", err))
			}

			if a.jsonMode {
				return printJSON(cmd.OutOrStdout(), book)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", book)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "book title (required)")
	cmd.Flags().StringVar(&author, "author", "", "book author (required)")
	cmd.Flags().IntVar(&year, "year", 0, "year published (required)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("author")
	_ = cmd.MarkFlagRequired("year")
	return cmd
}
