package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bookshelf/internal/logging"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize shelf configuration and storage",
		Long: `Init creates the configuration directory and config.yaml if they are
missing, then creates the data directory and the book table.

Running init again is safe; existing configuration and books are kept.`,
		Args: cobra.NoArgs,
		RunE: a.runInit,
	}
}

func (a *app) runInit(cmd *cobra.Command, args []string) error {
	cfg, err := a.storeConfig()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(a.configDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create config directory: %w", err))
	}

	configPath := filepath.Join(a.configDir, configFileExt)
	created, err := writeConfigIfMissing(configPath, configFile{
		Backend:  cfg.Backend,
		DataDir:  cfg.DataDir,
		LogLevel: logging.DefaultLevel,
	})
	if err != nil {
		return sysError(fmt.Errorf("write config: %w", err))
	}
	if created {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configPath)
	}

	store, err := a.openCatalog(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Shelf initialized (%s, %d books)\n", cfg.Backend, store.Len())
	return nil
}
