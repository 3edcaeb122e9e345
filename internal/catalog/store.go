// Package catalog implements the record store: the authoritative in-memory
// collection of books, kept in lockstep with a persistence adapter.
//
// Every mutation is written to the adapter first and applied in memory only
// after the write succeeds, so a storage failure never leaves the two
// diverged. Reads are answered from memory without I/O.
package catalog

import (
	"context"
	"slices"
	"strconv"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/bookshelf/pkg/types"
)

// Operation names reported in StorageError.Op.
const (
	OpInitialize = "initialize"
	OpAdd        = "add"
	OpRemove     = "remove"
)

// Store owns the book collection and its id sequence for the process.
// It is not safe for concurrent use.
type Store struct {
	adapter     types.Adapter
	logger      *zap.Logger
	books       []types.Book
	nextID      int
	initialized bool
}

// New returns a store backed by adapter. Call Initialize before use.
// A nil logger discards log output.
func New(adapter types.Adapter, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		adapter: adapter,
		logger:  logger.Named("catalog"),
		nextID:  1,
	}
}

// Initialize ensures the backing schema exists and replaces the in-memory
// collection with everything the adapter holds. Calling it again reloads
// from storage; it never duplicates or drops records.
func (s *Store) Initialize(ctx context.Context) error {
	if err := s.adapter.EnsureSchema(ctx); err != nil {
		return s.storageError(OpInitialize, err)
	}
	books, err := s.adapter.LoadAll(ctx)
	if err != nil {
		return s.storageError(OpInitialize, err)
	}
	if books == nil {
		books = []types.Book{}
	}

	s.books = books
	s.nextID = nextIDAfter(books)
	s.initialized = true

	s.logger.Debug("catalog loaded",
		zap.Int("books", len(s.books)),
		zap.Int("next_id", s.nextID))
	return nil
}

// Add persists a new book and appends it to the collection. The id comes
// from the adapter's sequence. Title, author, and year are stored as given.
func (s *Store) Add(ctx context.Context, title, author string, yearPublished int) (types.Book, error) {
	if !s.initialized {
		return types.Book{}, types.ErrNotInitialized
	}

	id, err := s.adapter.Insert(ctx, title, author, yearPublished)
	if err != nil {
		return types.Book{}, s.storageError(OpAdd, err)
	}

	book := types.Book{
		ID:            id,
		Title:         title,
		Author:        author,
		YearPublished: yearPublished,
	}
	s.books = append(s.books, book)
	if n, err := strconv.Atoi(id); err == nil && n >= s.nextID {
		s.nextID = n + 1
	}

	s.logger.Debug("book added", zap.String("id", id), zap.String("title", title))
	return book, nil
}

// Remove deletes the book with the given id from storage and then from
// memory. It reports whether a book was removed; an unknown id is not an
// error and leaves the collection unchanged.
func (s *Store) Remove(ctx context.Context, id string) (bool, error) {
	if !s.initialized {
		return false, types.ErrNotInitialized
	}

	if err := s.adapter.DeleteByID(ctx, id); err != nil {
		return false, s.storageError(OpRemove, err)
	}

	before := len(s.books)
	s.books = slices.DeleteFunc(s.books, func(b types.Book) bool { return b.ID == id })
	removed := len(s.books) < before

	s.logger.Debug("book removed", zap.String("id", id), zap.Bool("found", removed))
	return removed, nil
}

// Get returns the first book with the given id, or ErrNotFound.
func (s *Store) Get(id string) (types.Book, error) {
	if !s.initialized {
		return types.Book{}, types.ErrNotInitialized
	}
	for _, b := range s.books {
		if b.ID == id {
			return b, nil
		}
	}
	return types.Book{}, types.ErrNotFound
}

// List returns a copy of the collection in insertion order. Changing the
// returned slice does not affect the store.
func (s *Store) List() []types.Book {
	out := make([]types.Book, len(s.books))
	copy(out, s.books)
	return out
}

// Len returns the number of books in the collection.
func (s *Store) Len() int {
	return len(s.books)
}

// NextID returns the id the store expects the next Add to receive. The
// adapter's sequence is authoritative; this is for display.
func (s *Store) NextID() string {
	return strconv.Itoa(s.nextID)
}

func (s *Store) storageError(op string, err error) error {
	s.logger.Error("storage failure", zap.String("op", op), zap.Error(err))
	return &types.StorageError{Op: op, Err: err}
}

// nextIDAfter returns max(numeric id)+1, or 1 when there are none.
func nextIDAfter(books []types.Book) int {
	next := 1
	for _, b := range books {
		if n, err := strconv.Atoi(b.ID); err == nil && n >= next {
			next = n + 1
		}
	}
	return next
}
