package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/bookshelf/pkg/types"
)

// setupAdapter returns an adapter on a fresh temp dir with the schema created.
func setupAdapter(t *testing.T) *Adapter {
	t.Helper()
	a := NewAdapter(t.TempDir())
	require.NoError(t, a.EnsureSchema(context.Background()))
	return a
}

func TestEnsureSchemaCreatesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	a := NewAdapter(dir)

	require.NoError(t, a.EnsureSchema(context.Background()))

	_, err := os.Stat(filepath.Join(dir, DBFileName))
	assert.NoError(t, err, "database file should exist after EnsureSchema")
}

func TestEnsureSchemaIdempotent(t *testing.T) {
	ctx := context.Background()
	a := setupAdapter(t)

	_, err := a.Insert(ctx, "1984", "George Orwell", 1949)
	require.NoError(t, err)

	require.NoError(t, a.EnsureSchema(ctx))
	require.NoError(t, a.EnsureSchema(ctx))

	books, err := a.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, books, 1, "repeated EnsureSchema must not drop or duplicate rows")
}

func TestInsertAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	a := setupAdapter(t)

	id1, err := a.Insert(ctx, "1984", "George Orwell", 1949)
	require.NoError(t, err)
	id2, err := a.Insert(ctx, "To Kill a Mockingbird", "Harper Lee", 1960)
	require.NoError(t, err)

	assert.Equal(t, "1", id1)
	assert.Equal(t, "2", id2)
}

func TestLoadAll(t *testing.T) {
	ctx := context.Background()

	t.Run("empty table returns no books", func(t *testing.T) {
		a := setupAdapter(t)
		books, err := a.LoadAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, books)
	})

	t.Run("returns rows in insertion order with all fields", func(t *testing.T) {
		a := setupAdapter(t)
		_, err := a.Insert(ctx, "1984", "George Orwell", 1949)
		require.NoError(t, err)
		_, err = a.Insert(ctx, "Beowulf", "Unknown", -1000)
		require.NoError(t, err)

		books, err := a.LoadAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []types.Book{
			{ID: "1", Title: "1984", Author: "George Orwell", YearPublished: 1949},
			{ID: "2", Title: "Beowulf", Author: "Unknown", YearPublished: -1000},
		}, books)
	})

	t.Run("missing table is an error", func(t *testing.T) {
		a := NewAdapter(t.TempDir())
		_, err := a.LoadAll(ctx)
		assert.Error(t, err)
	})
}

func TestDeleteByID(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		id      string
		wantLen int
	}{
		{name: "existing id removes row", id: "1", wantLen: 1},
		{name: "unknown id is a no-op", id: "42", wantLen: 2},
		{name: "non-numeric id is a no-op", id: "abc", wantLen: 2},
		{name: "empty id is a no-op", id: "", wantLen: 2},
		{name: "leading zero alias is a no-op", id: "01", wantLen: 2},
		{name: "padded alias is a no-op", id: "0001", wantLen: 2},
		{name: "signed alias is a no-op", id: "+1", wantLen: 2},
		{name: "negative id is a no-op", id: "-1", wantLen: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := setupAdapter(t)
			_, err := a.Insert(ctx, "1984", "George Orwell", 1949)
			require.NoError(t, err)
			_, err = a.Insert(ctx, "To Kill a Mockingbird", "Harper Lee", 1960)
			require.NoError(t, err)

			require.NoError(t, a.DeleteByID(ctx, tt.id))

			books, err := a.LoadAll(ctx)
			require.NoError(t, err)
			assert.Len(t, books, tt.wantLen)
		})
	}
}

func TestSchemaMatchesLayout(t *testing.T) {
	ctx := context.Background()
	a := setupAdapter(t)

	db, err := sql.Open("sqlite", a.Path())
	require.NoError(t, err)
	defer db.Close()

	rows, err := db.QueryContext(ctx, "PRAGMA table_info(Books)")
	require.NoError(t, err)
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var (
			cid     int
			name    string
			colType string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		require.NoError(t, rows.Scan(&cid, &name, &colType, &notNull, &dflt, &pk))
		columns = append(columns, name)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"Id", "Title", "Author", "YearPublished"}, columns)
}

func TestAutoIncrementDoesNotReuseIDs(t *testing.T) {
	ctx := context.Background()
	a := setupAdapter(t)

	_, err := a.Insert(ctx, "A", "A", 1)
	require.NoError(t, err)
	id2, err := a.Insert(ctx, "B", "B", 2)
	require.NoError(t, err)
	require.NoError(t, a.DeleteByID(ctx, id2))

	id3, err := a.Insert(ctx, "C", "C", 3)
	require.NoError(t, err)
	assert.Equal(t, "3", id3)
}
