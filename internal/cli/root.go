// Package cli implements the shelf command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/bookshelf/internal/logging"
	"github.com/mesh-intelligence/bookshelf/internal/paths"
	"github.com/mesh-intelligence/bookshelf/pkg/bookshelf"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// app carries global flag values and per-invocation state to subcommands.
type app struct {
	configDir string
	dataDir   string
	backend   string
	jsonMode  bool

	config *viper.Viper
	logger *zap.Logger
	flush  func() error
}

// NewRootCmd creates the top-level "shelf" command with global flags and
// all subcommands registered. Running it without a subcommand starts the
// interactive shell.
func NewRootCmd() *cobra.Command {
	root, _ := newRootCmd()
	return root
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "shelf",
		Short: "A personal library catalog",
		Long: `Shelf keeps a catalog of your books on local disk.

Run it without a command for the interactive menu, or use the
subcommands below from scripts.`,
		Version:            bookshelf.Version,
		Args:               cobra.NoArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runShell,
	}

	root.PersistentFlags().StringVar(&a.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&a.dataDir, "data-dir", "", "data directory (default: platform data dir)")
	root.PersistentFlags().StringVar(&a.backend, "backend", "", "storage backend: sqlite, bolt, or memory")
	root.PersistentFlags().BoolVar(&a.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newShellCmd(a))
	root.AddCommand(newAddCmd(a))
	root.AddCommand(newGetCmd(a))
	root.AddCommand(newListCmd(a))
	root.AddCommand(newRemoveCmd(a))
	root.AddCommand(newExportCmd(a))
	root.AddCommand(newImportCmd(a))

	return root, a
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root, a := newRootCmd()
	return run(ctx, root, a, os.Args[1:], os.Stderr)
}

// run executes root with args and maps the result to an exit code,
// printing any error to stderr. Logs are flushed on every path; cobra
// skips post-run hooks when a command fails.
func run(ctx context.Context, root *cobra.Command, a *app, args []string, stderr io.Writer) int {
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if ferr := a.teardown(); ferr != nil && err == nil {
		err = sysError(ferr)
	}
	if err == nil {
		return exitSuccess
	}

	fmt.Fprintln(stderr, "shelf:", err)
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// setup resolves the config directory, loads config.yaml, and builds the
// logger. The version command needs none of it.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(a.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	a.configDir = configDir

	cfg, err := loadConfig(configDir)
	if err != nil {
		return sysError(fmt.Errorf("load config: %w", err))
	}
	a.config = cfg

	logger, flush, err := logging.Setup(cfg.GetString(cfgKeyLogLevel), cmd.ErrOrStderr(), bookshelf.Version)
	if err != nil {
		return userError(err)
	}
	a.logger = logger
	a.flush = flush

	a.logger.Debug("config loaded",
		zap.String("config_dir", configDir),
		zap.String("config_file", cfg.ConfigFileUsed()))
	return nil
}

// teardown flushes the logger once. Later calls are no-ops.
func (a *app) teardown() error {
	if a.flush == nil {
		return nil
	}
	flush := a.flush
	a.flush = nil
	return flush()
}

// exitError carries the process exit code for an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// userError marks a failure caused by input: bad ids, flags, or config values.
func userError(err error) error {
	return &exitError{code: exitUserError, err: err}
}

// sysError marks a failure of the environment: storage or filesystem.
func sysError(err error) error {
	return &exitError{code: exitSysError, err: err}
}
