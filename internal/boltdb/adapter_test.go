package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/bookshelf/pkg/types"
)

func setupAdapter(t *testing.T) *Adapter {
	t.Helper()
	a := NewAdapter(t.TempDir())
	require.NoError(t, a.EnsureSchema(context.Background()))
	return a
}

func TestEnsureSchema(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "data")
	a := NewAdapter(dir)

	require.NoError(t, a.EnsureSchema(ctx))
	require.NoError(t, a.EnsureSchema(ctx), "second call must succeed")

	_, err := os.Stat(filepath.Join(dir, DBFileName))
	assert.NoError(t, err)
}

func TestInsertAndLoadAll(t *testing.T) {
	ctx := context.Background()
	a := setupAdapter(t)

	id1, err := a.Insert(ctx, "1984", "George Orwell", 1949)
	require.NoError(t, err)
	id2, err := a.Insert(ctx, "To Kill a Mockingbird", "Harper Lee", 1960)
	require.NoError(t, err)
	assert.Equal(t, "1", id1)
	assert.Equal(t, "2", id2)

	books, err := a.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []types.Book{
		{ID: "1", Title: "1984", Author: "George Orwell", YearPublished: 1949},
		{ID: "2", Title: "To Kill a Mockingbird", Author: "Harper Lee", YearPublished: 1960},
	}, books)
}

func TestKeyOrderPastNine(t *testing.T) {
	ctx := context.Background()
	a := setupAdapter(t)

	for i := 0; i < 12; i++ {
		_, err := a.Insert(ctx, "t", "a", i)
		require.NoError(t, err)
	}

	books, err := a.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, books, 12)
	for i, b := range books {
		assert.Equal(t, i, b.YearPublished, "cursor order should follow insertion order")
	}
}

func TestDeleteByID(t *testing.T) {
	ctx := context.Background()
	a := setupAdapter(t)

	_, err := a.Insert(ctx, "1984", "George Orwell", 1949)
	require.NoError(t, err)

	require.NoError(t, a.DeleteByID(ctx, "7"), "unknown id")
	require.NoError(t, a.DeleteByID(ctx, "x"), "malformed id")
	for _, alias := range []string{"01", "0001", "+1", " 1"} {
		require.NoError(t, a.DeleteByID(ctx, alias), "alias %q", alias)
	}

	books, err := a.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, books, 1)

	require.NoError(t, a.DeleteByID(ctx, "1"))
	books, err = a.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestSequenceSurvivesDelete(t *testing.T) {
	ctx := context.Background()
	a := setupAdapter(t)

	id, err := a.Insert(ctx, "A", "A", 1)
	require.NoError(t, err)
	require.NoError(t, a.DeleteByID(ctx, id))

	next, err := a.Insert(ctx, "B", "B", 2)
	require.NoError(t, err)
	assert.Equal(t, "2", next)
}

func TestLoadAllWithoutSchema(t *testing.T) {
	a := NewAdapter(t.TempDir())
	_, err := a.LoadAll(context.Background())
	assert.Error(t, err)
}

func TestCanceledContext(t *testing.T) {
	a := setupAdapter(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Insert(ctx, "A", "A", 1)
	assert.ErrorIs(t, err, context.Canceled)
}
