package redisclient

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPoolSize(t *testing.T) {
	req := require.New(t)
	req.Equal(16, poolSize(8, 2))
	req.Equal(4, poolSize(1, 0.5))
}

func TestConnectRedisFailsFast(t *testing.T) {
	start := time.Now()
	_, err := ConnectRedis("127.0.0.1:1", "")
	require.Error(t, err)
	require.Less(t, time.Since(start), dialTimeout+time.Second)
}

func TestConnectRedis(t *testing.T) {
	uri := os.Getenv("REDIS_TEST_URI")
	if uri == "" {
		t.Skip("REDIS_TEST_URI not set")
	}
	p, err := ConnectRedis(uri, "", RedisParam{PoolMultiplier: 1})
	require.NoError(t, err)
	defer p.Close()
	require.NoError(t, testOnBorrow(p.Get(), time.Time{}))
}
