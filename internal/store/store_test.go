package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileImageKey(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "profileImage_1", ProfileImageKey(1))
	assert.Equal(t, "profileImage_42", ProfileImageKey(42))
}

func TestJSONHelpers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewMemory()

	type rec struct {
		Name string `json:"name"`
	}

	var out rec
	ok, err := GetJSON(ctx, s, "k", &out)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, PutJSON(ctx, s, "k", rec{Name: "a"}))

	ok, err = GetJSON(ctx, s, "k", &out)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "a", out.Name)
}

func TestGetJSON_MalformedValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewMemory()
	require.NoError(t, s.Put(ctx, "k", []byte(`{not json`)))

	var out map[string]any
	_, err := GetJSON(ctx, s, "k", &out)
	assert.Error(t, err)
}

func TestInstrumented_PassesThrough(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := Instrumented(NewMemory(), "memory")

	require.NoError(t, s.Put(ctx, "k", []byte(`1`)))
	raw, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "1", string(raw))
	require.NoError(t, s.Delete(ctx, "k"))
}
