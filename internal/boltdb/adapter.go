// Package boltdb implements a BoltDB persistence adapter for the catalog.
// Records live in one bucket keyed by an 8-byte big-endian sequence so that
// cursor order is insertion order.
package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/boltdb/bolt"

	"github.com/mesh-intelligence/bookshelf/pkg/types"
)

// Storage layout.
const (
	DBFileName = "books.bolt"
	BucketName = "Books"
)

// openTimeout bounds how long Open waits for the file lock held by another
// process.
const openTimeout = time.Second

// record is the JSON value stored under each key. The id is the key itself.
type record struct {
	Title         string `json:"title"`
	Author        string `json:"author"`
	YearPublished int    `json:"year_published"`
}

// Adapter implements types.Adapter on a BoltDB file.
type Adapter struct {
	path   string
	bucket []byte
}

// NewAdapter returns an adapter for dataDir/books.bolt.
func NewAdapter(dataDir string) *Adapter {
	if dataDir == "" {
		dataDir = "."
	}
	return &Adapter{
		path:   filepath.Join(dataDir, DBFileName),
		bucket: []byte(BucketName),
	}
}

// Path returns the database file location.
func (a *Adapter) Path() string {
	return a.path
}

// withDB opens the file for a single operation and closes it afterwards.
func (a *Adapter) withDB(ctx context.Context, fn func(db *bolt.DB) error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(a.path), 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	db, err := bolt.Open(a.path, 0o600, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return fmt.Errorf("opening %s: %w", a.path, err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", a.path, cerr)
		}
	}()
	return fn(db)
}

// EnsureSchema creates the Books bucket if it is missing.
func (a *Adapter) EnsureSchema(ctx context.Context) error {
	return a.withDB(ctx, func(db *bolt.DB) error {
		return db.Update(func(tx *bolt.Tx) error {
			if _, err := tx.CreateBucketIfNotExists(a.bucket); err != nil {
				return fmt.Errorf("creating %s bucket: %w", BucketName, err)
			}
			return nil
		})
	})
}

// LoadAll walks the bucket in key order.
func (a *Adapter) LoadAll(ctx context.Context) ([]types.Book, error) {
	var books []types.Book
	err := a.withDB(ctx, func(db *bolt.DB) error {
		return db.View(func(tx *bolt.Tx) error {
			b := tx.Bucket(a.bucket)
			if b == nil {
				return fmt.Errorf("bucket %s does not exist", BucketName)
			}
			c := b.Cursor()
			for k, v := c.First(); k != nil; k, v = c.Next() {
				var r record
				if err := json.Unmarshal(v, &r); err != nil {
					return fmt.Errorf("decoding book %d: %w", btoi(k), err)
				}
				books = append(books, types.Book{
					ID:            strconv.FormatUint(btoi(k), 10),
					Title:         r.Title,
					Author:        r.Author,
					YearPublished: r.YearPublished,
				})
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return books, nil
}

// Insert stores a record under the bucket's next sequence number.
func (a *Adapter) Insert(ctx context.Context, title, author string, yearPublished int) (string, error) {
	value, err := json.Marshal(record{Title: title, Author: author, YearPublished: yearPublished})
	if err != nil {
		return "", fmt.Errorf("encoding book: %w", err)
	}

	var id uint64
	err = a.withDB(ctx, func(db *bolt.DB) error {
		return db.Update(func(tx *bolt.Tx) error {
			b := tx.Bucket(a.bucket)
			if b == nil {
				return fmt.Errorf("bucket %s does not exist", BucketName)
			}
			seq, err := b.NextSequence()
			if err != nil {
				return fmt.Errorf("allocating id: %w", err)
			}
			id = seq
			return b.Put(itob(seq), value)
		})
	})
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(id, 10), nil
}

// DeleteByID removes the record keyed by id. Malformed and non-canonical
// ids such as "01" are a no-op.
func (a *Adapter) DeleteByID(ctx context.Context, id string) error {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil || strconv.FormatUint(n, 10) != id {
		return nil
	}
	return a.withDB(ctx, func(db *bolt.DB) error {
		return db.Update(func(tx *bolt.Tx) error {
			b := tx.Bucket(a.bucket)
			if b == nil {
				return fmt.Errorf("bucket %s does not exist", BucketName)
			}
			return b.Delete(itob(n))
		})
	})
}

// itob encodes a sequence number as a sortable key.
func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

func btoi(b []byte) uint64 {
	return binary.BigEndian.Uint64(b)
}

var _ types.Adapter = (*Adapter)(nil)
