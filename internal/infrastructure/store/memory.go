package store

import (
	"context"
	"sync"
)

// MemoryStore is a thread-safe in-memory baseline store. It backs the
// default configuration and the test suite; state does not survive a
// restart, so the first run after boot reports everything as NEW.
type MemoryStore struct {
	prices map[string]int64
	stocks map[string]string
	mutex  sync.RWMutex
}

// NewMemoryStore creates an empty in-memory baseline store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		prices: make(map[string]int64),
		stocks: make(map[string]string),
	}
}

// Ping always succeeds for the in-memory store.
func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

// GetPrice returns the stored price for key and whether one exists.
func (s *MemoryStore) GetPrice(ctx context.Context, key string) (int64, bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	price, ok := s.prices[key]
	return price, ok, nil
}

// GetStock returns the stored stock label for key and whether one exists.
func (s *MemoryStore) GetStock(ctx context.Context, key string) (string, bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	label, ok := s.stocks[key]
	return label, ok, nil
}

// PutPrice overwrites the stored price for key.
func (s *MemoryStore) PutPrice(ctx context.Context, key string, price int64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.prices[key] = price
	return nil
}

// PutStock overwrites the stored stock label for key.
func (s *MemoryStore) PutStock(ctx context.Context, key string, label string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.stocks[key] = label
	return nil
}

// Size returns the number of keys with any stored baseline (for monitoring).
func (s *MemoryStore) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	keys := make(map[string]struct{}, len(s.prices))
	for k := range s.prices {
		keys[k] = struct{}{}
	}
	for k := range s.stocks {
		keys[k] = struct{}{}
	}
	return len(keys)
}

// Clear removes all stored baselines.
func (s *MemoryStore) Clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.prices = make(map[string]int64)
	s.stocks = make(map[string]string)
}
