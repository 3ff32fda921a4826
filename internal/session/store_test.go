package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryProvider().Store("user:session:a")
	ctx := context.Background()

	_, ok, err := store.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, []byte(`{"id":"1"}`)))
	b, ok, err := store.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"id":"1"}`, string(b))

	require.NoError(t, store.Remove(ctx))
	_, ok, err = store.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	// Removing an absent record is a no-op.
	require.NoError(t, store.Remove(ctx))
}

func TestMemoryStoreKeysAreIsolated(t *testing.T) {
	p := NewMemoryProvider()
	ctx := context.Background()

	a := p.Store("user:session:a")
	b := p.Store("user:session:b")

	require.NoError(t, a.Set(ctx, []byte("aa")))
	_, ok, err := b.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreSameKeySharesRecord(t *testing.T) {
	p := NewMemoryProvider()
	ctx := context.Background()

	first := p.Store("user:session:a")
	second := p.Store("user:session:a")

	require.NoError(t, first.Set(ctx, []byte("shared")))
	b, ok, err := second.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "shared", string(b))
}

func TestMemoryStoreCopiesBytes(t *testing.T) {
	store := NewMemoryProvider().Store("user:session:a")
	ctx := context.Background()

	in := []byte("original")
	require.NoError(t, store.Set(ctx, in))
	in[0] = 'X'

	b, ok, err := store.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "original", string(b))

	b[0] = 'Y'
	again, _, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "original", string(again))
}
