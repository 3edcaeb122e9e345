// Package memory provides a non-durable adapter for running the catalog
// without a backing file.
package memory

import (
	"context"
	"slices"
	"strconv"
	"sync"

	"github.com/mesh-intelligence/bookshelf/pkg/types"
)

// Adapter keeps records in a slice and assigns ids from a counter that
// never goes backwards, matching the durable adapters.
type Adapter struct {
	mu     sync.RWMutex
	books  []types.Book
	nextID int
}

// NewAdapter returns an adapter seeded with the given books. The id counter
// starts above the largest numeric seed id.
func NewAdapter(seed []types.Book) *Adapter {
	a := &Adapter{
		books:  slices.Clone(seed),
		nextID: 1,
	}
	for _, b := range seed {
		if id, err := strconv.Atoi(b.ID); err == nil && id >= a.nextID {
			a.nextID = id + 1
		}
	}
	return a
}

// EnsureSchema has nothing to create.
func (a *Adapter) EnsureSchema(_ context.Context) error {
	return nil
}

// LoadAll returns a copy of the stored records.
func (a *Adapter) LoadAll(_ context.Context) ([]types.Book, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return slices.Clone(a.books), nil
}

// Insert appends a record under the next id.
func (a *Adapter) Insert(_ context.Context, title, author string, yearPublished int) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := strconv.Itoa(a.nextID)
	a.nextID++
	a.books = append(a.books, types.Book{
		ID:            id,
		Title:         title,
		Author:        author,
		YearPublished: yearPublished,
	})
	return id, nil
}

// DeleteByID drops every record with the given id.
func (a *Adapter) DeleteByID(_ context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.books = slices.DeleteFunc(a.books, func(b types.Book) bool { return b.ID == id })
	return nil
}

var _ types.Adapter = (*Adapter)(nil)
