// Library-level persistence tests: a catalog is written through one
// Store and reloaded through a fresh Store on the same data directory.
package integration

import (
	"context"
	"testing"

	"github.com/mesh-intelligence/bookshelf/internal/boltdb"
	"github.com/mesh-intelligence/bookshelf/internal/catalog"
	"github.com/mesh-intelligence/bookshelf/internal/sqlite"
	"github.com/mesh-intelligence/bookshelf/pkg/types"
)

// adapterFactories builds a durable adapter for a data directory.
var adapterFactories = map[string]func(dataDir string) types.Adapter{
	"sqlite": func(dir string) types.Adapter { return sqlite.NewAdapter(dir) },
	"bolt":   func(dir string) types.Adapter { return boltdb.NewAdapter(dir) },
}

// openStore creates and initializes a Store over the named backend.
func openStore(t *testing.T, backend, dataDir string) *catalog.Store {
	t.Helper()
	s := catalog.New(adapterFactories[backend](dataDir), nil)
	if err := s.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize(%s): %v", backend, err)
	}
	return s
}

// mustAdd adds a book or fails the test.
func mustAdd(t *testing.T, s *catalog.Store, title, author string, year int) types.Book {
	t.Helper()
	b, err := s.Add(context.Background(), title, author, year)
	if err != nil {
		t.Fatalf("Add %q: %v", title, err)
	}
	return b
}

func TestStoreReloadRoundTrip(t *testing.T) {
	for backend := range adapterFactories {
		t.Run(backend, func(t *testing.T) {
			dir := t.TempDir()

			s1 := openStore(t, backend, dir)
			var added []types.Book
			for i, title := range []string{"A", "B", "C", "D"} {
				added = append(added, mustAdd(t, s1, title, "Author "+title, 1900+i))
			}
			if _, err := s1.Remove(context.Background(), added[1].ID); err != nil {
				t.Fatalf("Remove: %v", err)
			}

			s2 := openStore(t, backend, dir)
			got := s2.List()
			want := []types.Book{added[0], added[2], added[3]}
			if len(got) != len(want) {
				t.Fatalf("reloaded %d books, want %d", len(got), len(want))
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("book %d = %+v, want %+v", i, got[i], want[i])
				}
			}

			next := mustAdd(t, s2, "E", "Author E", 2000)
			if next.ID != "5" {
				t.Errorf("id after reload = %q, want \"5\"", next.ID)
			}
		})
	}
}

func TestStoreInitializeIsIdempotent(t *testing.T) {
	for backend := range adapterFactories {
		t.Run(backend, func(t *testing.T) {
			dir := t.TempDir()
			s := openStore(t, backend, dir)
			mustAdd(t, s, "Dune", "Frank Herbert", 1965)

			for range 3 {
				if err := s.Initialize(context.Background()); err != nil {
					t.Fatalf("Initialize: %v", err)
				}
			}
			if n := s.Len(); n != 1 {
				t.Errorf("Len after repeated Initialize = %d, want 1", n)
			}
		})
	}
}
