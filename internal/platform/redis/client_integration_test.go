//go:build integration

package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gppgateway/internal/platform/config"
	"gppgateway/internal/platform/redis"
	"gppgateway/pkg/testutil/containers"
)

func TestNew(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()
	rc := containers.GetManager().GetRedis(t)

	t.Run("connects and reports healthy", func(t *testing.T) {
		client, err := redis.New(ctx, config.RedisConfig{
			URL:          rc.URL,
			PoolSize:     4,
			DialTimeout:  time.Second,
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		})
		require.NoError(t, err)
		require.NotNil(t, client)
		t.Cleanup(func() { _ = client.Close() })

		assert.NoError(t, client.Health(ctx))
	})

	t.Run("empty url yields no client", func(t *testing.T) {
		client, err := redis.New(ctx, config.RedisConfig{})
		require.NoError(t, err)
		assert.Nil(t, client)
	})

	t.Run("invalid url", func(t *testing.T) {
		_, err := redis.New(ctx, config.RedisConfig{URL: "mysql://nope"})
		assert.Error(t, err)
	})
}
