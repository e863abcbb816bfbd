package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniredisStore(t *testing.T) *Redis {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisWithClient(client)
}

func TestRedis_RoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newMiniredisStore(t)

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Put(ctx, "currentUser", []byte(`{"id":1}`)))

	raw, ok, err := s.Get(ctx, "currentUser")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"id":1}`, string(raw))

	require.NoError(t, s.Delete(ctx, "currentUser"))
	_, ok, err = s.Get(ctx, "currentUser")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedis_DeleteAbsentKeyIsNoError(t *testing.T) {
	t.Parallel()
	s := newMiniredisStore(t)
	assert.NoError(t, s.Delete(context.Background(), "never-written"))
}

func TestNewRedis_InvalidURL(t *testing.T) {
	t.Parallel()
	_, err := NewRedis(context.Background(), "redis://%%invalid")
	assert.Error(t, err)
}
