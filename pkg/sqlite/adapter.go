// Package sqlite provides the public API for the SQLite persistence adapter.
// It exposes the factory while keeping the implementation internal.
package sqlite

import (
	"github.com/mesh-intelligence/bookshelf/internal/sqlite"
	"github.com/mesh-intelligence/bookshelf/pkg/types"
)

// NewAdapter returns an adapter that stores books in dataDir/books.db.
// Nothing is opened until the first call; each operation opens and closes
// its own connection.
//
// Example:
//
//	adapter := sqlite.NewAdapter(dataDir)
//	if err := adapter.EnsureSchema(ctx); err != nil {
//	    return err
//	}
//	books, err := adapter.LoadAll(ctx)
func NewAdapter(dataDir string) types.Adapter {
	return sqlite.NewAdapter(dataDir)
}
