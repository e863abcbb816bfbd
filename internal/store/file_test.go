package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_RoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewFile(filepath.Join(t.TempDir(), "lockbox.json"))

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Put(ctx, "k", []byte(`"hello"`)))

	raw, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `"hello"`, string(raw))

	require.NoError(t, s.Delete(ctx, "k"))
	_, ok, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFile_PersistsAcrossInstances(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "lockbox.json")

	first := NewFile(path)
	require.NoError(t, first.Put(ctx, "users", []byte(`[{"id":1}]`)))

	second := NewFile(path)
	raw, ok, err := second.Get(ctx, "users")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":1}]`, string(raw))
}

func TestFile_DeleteAbsentKeyIsNoError(t *testing.T) {
	t.Parallel()
	s := NewFile(filepath.Join(t.TempDir(), "lockbox.json"))
	assert.NoError(t, s.Delete(context.Background(), "never-written"))
}

func TestFile_OverwriteReplacesWholeValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewFile(filepath.Join(t.TempDir(), "lockbox.json"))

	require.NoError(t, s.Put(ctx, "address", []byte(`{"city":"A"}`)))
	require.NoError(t, s.Put(ctx, "address", []byte(`{"city":"B"}`)))

	raw, ok, err := s.Get(ctx, "address")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"city":"B"}`, string(raw))
}
