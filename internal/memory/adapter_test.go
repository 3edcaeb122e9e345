package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/bookshelf/pkg/types"
)

func TestNewAdapterSeedsCounter(t *testing.T) {
	tests := []struct {
		name   string
		seed   []types.Book
		wantID string
	}{
		{name: "empty seed starts at 1", seed: nil, wantID: "1"},
		{name: "counter follows max id", seed: []types.Book{{ID: "3"}, {ID: "7"}, {ID: "5"}}, wantID: "8"},
		{name: "non-numeric ids are ignored", seed: []types.Book{{ID: "x"}, {ID: "2"}}, wantID: "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAdapter(tt.seed)
			id, err := a.Insert(context.Background(), "T", "A", 2000)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestLoadAllReturnsCopy(t *testing.T) {
	ctx := context.Background()
	a := NewAdapter(nil)
	_, err := a.Insert(ctx, "1984", "George Orwell", 1949)
	require.NoError(t, err)

	books, err := a.LoadAll(ctx)
	require.NoError(t, err)
	books[0].Title = "changed"

	again, err := a.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1984", again[0].Title)
}

func TestDeleteByID(t *testing.T) {
	ctx := context.Background()
	a := NewAdapter(nil)
	_, err := a.Insert(ctx, "A", "A", 1)
	require.NoError(t, err)
	_, err = a.Insert(ctx, "B", "B", 2)
	require.NoError(t, err)

	require.NoError(t, a.DeleteByID(ctx, "1"))
	require.NoError(t, a.DeleteByID(ctx, "missing"))

	books, err := a.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "2", books[0].ID)

	id, err := a.Insert(ctx, "C", "C", 3)
	require.NoError(t, err)
	assert.Equal(t, "3", id, "ids are not reused after delete")
}
