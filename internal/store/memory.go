package store

import (
	"context"
	"sync"

	"github.com/rgleason/trading-journal/internal/models"
)

// MemoryStore is a process-local TradeStore for cache-less runs and tests.
// It round-trips through the same wire form as RedisStore so both behave
// identically, NaN handling included.
type MemoryStore struct {
	mu   sync.Mutex
	data []byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save replaces the cached batch.
func (s *MemoryStore) Save(_ context.Context, trades []models.Trade) error {
	data, err := encodeTrades(trades)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
	return nil
}

// Load returns the cached batch, or nil when nothing is cached.
func (s *MemoryStore) Load(_ context.Context) ([]models.Trade, error) {
	s.mu.Lock()
	data := s.data
	s.mu.Unlock()
	if data == nil {
		return nil, nil
	}
	return decodeTrades(data)
}
