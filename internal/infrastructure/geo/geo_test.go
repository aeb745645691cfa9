package geo

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupIndex(t *testing.T) *Index {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewWithClient(rdb)
}

func TestIndex_AddRadiusRemove(t *testing.T) {
	idx := setupIndex(t)
	ctx := context.Background()

	require.NoError(t, idx.Add(ctx, "berlin", 13.405, 52.52))
	require.NoError(t, idx.Add(ctx, "paris", 2.3522, 48.8566))

	ids, err := idx.Radius(ctx, 52.52, 13.405, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"berlin"}, ids)

	// wide enough to cover both
	ids, err = idx.Radius(ctx, 50.0, 8.0, 1000)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"berlin", "paris"}, ids)

	require.NoError(t, idx.Remove(ctx, "berlin"))
	ids, err = idx.Radius(ctx, 52.52, 13.405, 5)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestIndex_RadiusEmptyKey(t *testing.T) {
	idx := setupIndex(t)

	ids, err := idx.Radius(context.Background(), 52.52, 13.405, 5)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestIndex_LazyInitBadURL(t *testing.T) {
	idx := New("not-a-redis-url")

	err := idx.Add(context.Background(), "x", 1, 1)
	assert.Error(t, err)
	// same init error on repeated use, no retry storm
	_, err = idx.Radius(context.Background(), 1, 1, 1)
	assert.Error(t, err)
}

func TestIndex_CloseWithoutUse(t *testing.T) {
	idx := New("redis://localhost:6379")
	assert.NoError(t, idx.Close())
}
