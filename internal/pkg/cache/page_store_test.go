package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryPageStoreExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store := NewMemoryPageStore()
	store.Now = func() time.Time { return now }

	require.NoError(t, store.Set(ctx, "/", &Page{Status: 200, ContentType: "text/html", Body: []byte("hi")}, 20*time.Second))

	page, ok, err := store.Get(ctx, "/")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("hi"), page.Body)

	now = now.Add(20 * time.Second)
	_, ok, err = store.Get(ctx, "/")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryPageStoreClear(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryPageStore()
	require.NoError(t, store.Set(ctx, "a", &Page{Status: 200}, time.Minute))
	require.NoError(t, store.Set(ctx, "b", &Page{Status: 200}, time.Minute))

	n, err := store.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, ok, _ := store.Get(ctx, "a")
	assert.False(t, ok)
}
