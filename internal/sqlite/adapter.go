// Package sqlite implements the SQLite persistence adapter for the catalog.
// Every operation opens the database file, runs its statement, and closes
// the handle before returning; no connection outlives a call.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/bookshelf/pkg/types"
)

// DBFileName is the database file created inside the data directory.
const DBFileName = "books.db"

// Adapter implements types.Adapter on a SQLite file.
type Adapter struct {
	path string
}

// NewAdapter returns an adapter for dataDir/books.db. Nothing is opened
// until the first operation.
func NewAdapter(dataDir string) *Adapter {
	if dataDir == "" {
		dataDir = "."
	}
	return &Adapter{path: filepath.Join(dataDir, DBFileName)}
}

// Path returns the database file location.
func (a *Adapter) Path() string {
	return a.path
}

// withDB opens the database, hands it to fn, and always closes it.
func (a *Adapter) withDB(ctx context.Context, fn func(db *sql.DB) error) (err error) {
	if err := os.MkdirAll(filepath.Dir(a.path), 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	db, err := sql.Open("sqlite", a.path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", a.path, err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", a.path, cerr)
		}
	}()
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("connecting to %s: %w", a.path, err)
	}
	return fn(db)
}

// EnsureSchema creates the Books table if it does not exist.
func (a *Adapter) EnsureSchema(ctx context.Context) error {
	return a.withDB(ctx, func(db *sql.DB) error {
		for _, ddl := range schemaDDL {
			if _, err := db.ExecContext(ctx, ddl); err != nil {
				return fmt.Errorf("creating schema: %w", err)
			}
		}
		return nil
	})
}

// LoadAll reads every row of Books ordered by id.
func (a *Adapter) LoadAll(ctx context.Context) ([]types.Book, error) {
	var books []types.Book
	err := a.withDB(ctx, func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx, selectBooks)
		if err != nil {
			return fmt.Errorf("selecting books: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var (
				id int64
				b  types.Book
			)
			if err := rows.Scan(&id, &b.Title, &b.Author, &b.YearPublished); err != nil {
				return fmt.Errorf("scanning book: %w", err)
			}
			b.ID = strconv.FormatInt(id, 10)
			books = append(books, b)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return books, nil
}

// Insert adds a row and returns the auto-increment id SQLite assigned.
func (a *Adapter) Insert(ctx context.Context, title, author string, yearPublished int) (string, error) {
	var id int64
	err := a.withDB(ctx, func(db *sql.DB) error {
		result, err := db.ExecContext(ctx, insertBook, title, author, yearPublished)
		if err != nil {
			return fmt.Errorf("inserting book: %w", err)
		}
		id, err = result.LastInsertId()
		if err != nil {
			return fmt.Errorf("getting last insert id: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(id, 10), nil
}

// DeleteByID removes the row with the given id. Only the canonical decimal
// form matches a row; "01", "+1", and non-numeric ids return nil without
// touching the file, so storage never drops a book the catalog still holds.
func (a *Adapter) DeleteByID(ctx context.Context, id string) error {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || strconv.FormatInt(n, 10) != id {
		return nil
	}
	return a.withDB(ctx, func(db *sql.DB) error {
		if _, err := db.ExecContext(ctx, deleteBook, n); err != nil {
			return fmt.Errorf("deleting book %d: %w", n, err)
		}
		return nil
	})
}

var _ types.Adapter = (*Adapter)(nil)
