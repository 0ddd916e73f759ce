package blob

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)

	_, err = store.Load(ctx, KeyDrinks)
	assert.ErrorIs(t, err, ErrNotExist)

	require.NoError(t, store.Save(ctx, KeyDrinks, []byte(`[{"id":1}]`)))

	data, err := store.Load(ctx, KeyDrinks)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1}]`, string(data))

	// saves overwrite, they never append
	require.NoError(t, store.Save(ctx, KeyDrinks, []byte(`[]`)))

	data, err = store.Load(ctx, KeyDrinks)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))

	assert.NoError(t, store.Close())
}

func TestMemStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	_, err := store.Load(ctx, KeyOrders)
	assert.ErrorIs(t, err, ErrNotExist)

	require.NoError(t, store.Save(ctx, KeyOrders, []byte(`[]`)))

	data, err := store.Load(ctx, KeyOrders)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), data)

	// returned slices are copies, mutating them must not corrupt the store
	data[0] = 'x'
	data, err = store.Load(ctx, KeyOrders)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), data)
}
