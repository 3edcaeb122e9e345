package types

import "context"

// Adapter is the durable mirror behind the catalog. Implementations own the
// stored representation and the id sequence; they hold no state the catalog
// does not already have in memory.
type Adapter interface {
	// EnsureSchema creates the backing table or bucket if it is missing.
	// Safe to call on every startup.
	EnsureSchema(ctx context.Context) error

	// LoadAll returns every stored record in insertion order.
	LoadAll(ctx context.Context) ([]Book, error)

	// Insert persists a new record and returns the id the store assigned.
	Insert(ctx context.Context, title, author string, yearPublished int) (string, error)

	// DeleteByID removes the record with the given id. Deleting an absent
	// or malformed id is a no-op.
	DeleteByID(ctx context.Context, id string) error
}
