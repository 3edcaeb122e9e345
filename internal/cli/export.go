package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/bookshelf/internal/jsonl"
)

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write every book to a JSON Lines file",
		Long: `Export writes the catalog to <file>, one JSON object per line, in
insertion order. The file is replaced atomically.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openCatalog(cmd.Context())
			if err != nil {
				return err
			}

			books := store.List()
			if err := jsonl.Write(args[0], books); err != nil {
				return sysError(fmt.Errorf("export: %w", err))
			}

			a.logger.Info("exported", zap.String("file", args[0]), zap.Int("books", len(books)))
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d books to %s\n", len(books), args[0])
			return nil
		},
	}
}

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Add every book from a JSON Lines file",
		Long: `Import reads <file> as written by export and adds each record as a new
book. IDs in the file are ignored; the catalog assigns fresh ones.
Blank and malformed lines are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := jsonl.Read(args[0])
			if err != nil {
				return userError(fmt.Errorf("import: %w", err))
			}

			store, err := a.openCatalog(cmd.Context())
			if err != nil {
				return err
			}

			for i, b := range books {
				if _, err := store.Add(cmd.Context(), b.Title, b.Author, b.YearPublished); err != nil {
					return classify(fmt.Errorf("import record %d: %w", i+1, err))
				}
			}

			a.logger.Info("imported", zap.String("file", args[0]), zap.Int("books", len(books)))
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d books from %s\n", len(books), args[0])
			return nil
		},
	}
}
