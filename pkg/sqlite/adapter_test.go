package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/bookshelf/pkg/sqlite"
	"github.com/mesh-intelligence/bookshelf/pkg/types"
)

func TestNewAdapter(t *testing.T) {
	ctx := context.Background()
	adapter := sqlite.NewAdapter(t.TempDir())

	require.NoError(t, adapter.EnsureSchema(ctx))
	id, err := adapter.Insert(ctx, "Dune", "Frank Herbert", 1965)
	require.NoError(t, err)
	assert.Equal(t, "1", id)

	books, err := adapter.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []types.Book{{ID: "1", Title: "Dune", Author: "Frank Herbert", YearPublished: 1965}}, books)
}
