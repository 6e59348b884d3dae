package store

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/rgleason/trading-journal/internal/models"
)

// setupTestRedis starts a Redis container and returns a connected store.
func setupTestRedis(t *testing.T) *RedisStore {
	t.Helper()
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		t.Fatalf("failed to start redis container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Errorf("failed to terminate container: %v", err)
		}
	})

	connStr, err := container.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}
	addr := strings.TrimPrefix(connStr, "redis://")

	s, err := NewRedisStore(ctx, addr, "", 0, "test:trades")
	if err != nil {
		t.Fatalf("failed to connect to test redis: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return s
}

func TestRedisStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis integration test in short mode")
	}

	ctx := context.Background()
	s := setupTestRedis(t)

	t.Run("empty cache loads nil", func(t *testing.T) {
		trades, err := s.Load(ctx)
		require.NoError(t, err)
		assert.Nil(t, trades)
	})

	t.Run("save then load round-trips the batch", func(t *testing.T) {
		trade := sampleTrade()
		trade.Commission = math.NaN()
		require.NoError(t, s.Save(ctx, []models.Trade{trade}))

		trades, err := s.Load(ctx)
		require.NoError(t, err)
		require.Len(t, trades, 1)

		got := trades[0]
		assert.Equal(t, "ABC", got.Symbol)
		assert.True(t, trade.TimeOfEntry.Equal(got.TimeOfEntry))
		assert.Equal(t, trade.NetTotal, got.NetTotal)
		assert.True(t, math.IsNaN(got.Commission))
	})

	t.Run("a second save replaces the batch", func(t *testing.T) {
		require.NoError(t, s.Save(ctx, []models.Trade{sampleTrade(), sampleTrade()}))

		trades, err := s.Load(ctx)
		require.NoError(t, err)
		assert.Len(t, trades, 2)
	})
}
