package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_RoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewMemory()

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Put(ctx, "k", []byte(`{"a":1}`)))

	raw, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"a":1}`, string(raw))
	assert.Equal(t, 1, s.Len())

	require.NoError(t, s.Delete(ctx, "k"))
	_, ok, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemory_DeleteAbsentKeyIsNoError(t *testing.T) {
	t.Parallel()
	s := NewMemory()
	assert.NoError(t, s.Delete(context.Background(), "never-written"))
}

func TestMemory_ValuesAreIsolated(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewMemory()

	original := []byte(`{"a":1}`)
	require.NoError(t, s.Put(ctx, "k", original))

	// Mutating the caller's slice must not affect the stored value.
	original[2] = 'X'

	raw, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"a":1}`, string(raw))

	// Mutating the returned slice must not affect later reads.
	raw[2] = 'Y'
	again, _, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(again))
}
