package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rgleason/trading-journal/internal/models"
)

const defaultKey = "journal:trades"

// RedisStore caches the trade batch as a single JSON value under one key.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, addr, password string, db int, key string) (*RedisStore, error) {
	if key == "" {
		key = defaultKey
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{client: client, key: key}, nil
}

// Save replaces the cached batch.
func (s *RedisStore) Save(ctx context.Context, trades []models.Trade) error {
	data, err := encodeTrades(trades)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save trades: %w", err)
	}
	return nil
}

// Load returns the cached batch, or nil when nothing is cached.
func (s *RedisStore) Load(ctx context.Context) ([]models.Trade, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load trades: %w", err)
	}
	return decodeTrades(data)
}

// Close releases the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
