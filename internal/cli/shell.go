package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bookshelf/internal/shell"
)

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive menu",
		Args:  cobra.NoArgs,
		RunE:  a.runShell,
	}
}

func (a *app) runShell(cmd *cobra.Command, args []string) error {
	store, err := a.openCatalog(cmd.Context())
	if err != nil {
		return err
	}
	return shell.New(store, cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context())
}
