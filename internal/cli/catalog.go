package cli

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/bookshelf/internal/boltdb"
	"github.com/mesh-intelligence/bookshelf/internal/catalog"
	"github.com/mesh-intelligence/bookshelf/internal/memory"
	"github.com/mesh-intelligence/bookshelf/internal/paths"
	"github.com/mesh-intelligence/bookshelf/internal/sqlite"
	"github.com/mesh-intelligence/bookshelf/pkg/types"
)

// storeConfig resolves backend and data directory following
// flag > config.yaml > environment > default.
func (a *app) storeConfig() (types.Config, error) {
	backend := a.backend
	if backend == "" {
		backend = a.config.GetString(cfgKeyBackend)
	}

	cfg := types.Config{Backend: backend}
	if err := cfg.Validate(); err != nil {
		return cfg, userError(fmt.Errorf("backend %q: %w", backend, err))
	}

	if cfg.Persistent() {
		dataDir, err := paths.ResolveDataDir(a.dataDir, a.config.GetString(cfgKeyDataDir))
		if err != nil {
			return cfg, sysError(fmt.Errorf("resolve data dir: %w", err))
		}
		cfg.DataDir = dataDir
	}
	return cfg, nil
}

// newAdapter builds the persistence adapter named by cfg.Backend.
func newAdapter(cfg types.Config) (types.Adapter, error) {
	switch cfg.Backend {
	case types.BackendSQLite:
		return sqlite.NewAdapter(cfg.DataDir), nil
	case types.BackendBolt:
		return boltdb.NewAdapter(cfg.DataDir), nil
	case types.BackendMemory:
		return memory.NewAdapter(nil), nil
	default:
		return nil, types.ErrBackendUnknown
	}
}

// openCatalog resolves configuration, builds the adapter, and loads the
// catalog from storage.
func (a *app) openCatalog(ctx context.Context) (*catalog.Store, error) {
	cfg, err := a.storeConfig()
	if err != nil {
		return nil, err
	}
	adapter, err := newAdapter(cfg)
	if err != nil {
		return nil, userError(err)
	}

	store := catalog.New(adapter, a.logger)
	if err := store.Initialize(ctx); err != nil {
		return nil, sysError(fmt.Errorf("open catalog: %w", err))
	}

	a.logger.Debug("catalog opened",
		zap.String("backend", cfg.Backend),
		zap.String("data_dir", cfg.DataDir),
		zap.Int("books", store.Len()))
	return store, nil
}

// classify maps a catalog error to an exit code.
func classify(err error) error {
	var se *types.StorageError
	if errors.As(err, &se) {
		return sysError(err)
	}
	return userError(err)
}
