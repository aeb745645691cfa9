package health

import (
	"context"
	"testing"

	"essenteil-backend/internal/infrastructure/geo"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDB struct {
	err error
}

func (f *fakeDB) Ping() error { return f.err }

func TestCollectHealth_NothingConnected(t *testing.T) {
	result := CollectHealth(context.Background(), nil, nil)
	assert.Equal(t, "down", result.Status)
	assert.Equal(t, "disconnected", result.Dependencies["database"].Status)
	assert.Equal(t, "disconnected", result.Dependencies["redis"].Status)
	assert.NotEmpty(t, result.Runtime.GoVersion)
}

func TestCollectHealth_AllConnected(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	result := CollectHealth(context.Background(), geo.NewWithClient(rdb), &fakeDB{})
	assert.Equal(t, "operational", result.Status)
	assert.Equal(t, "connected", result.Dependencies["database"].Status)
	assert.Equal(t, "connected", result.Dependencies["redis"].Status)
}

func TestCollectHealth_RedisDownIsDegradedOnly(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()
	mr.Close()

	result := CollectHealth(context.Background(), geo.NewWithClient(rdb), &fakeDB{})
	assert.Equal(t, "degraded", result.Status)
	assert.Equal(t, "connected", result.Dependencies["database"].Status)
	assert.Equal(t, "error", result.Dependencies["redis"].Status)
}
