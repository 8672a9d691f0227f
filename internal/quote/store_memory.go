package quote

import (
	"context"
	"sync"
)

type MemStore struct {
	mu sync.RWMutex
	m  map[string]Quote
}

func NewMemStore() *MemStore {
	return &MemStore{m: map[string]Quote{}}
}

func NewStore() Store {
	return NewMemStore()
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) Create(ctx context.Context, q Quote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.m[q.ID]; exists {
		return ErrQuoteExists
	}
	s.m[q.ID] = q
	return nil
}

func (s *MemStore) Get(ctx context.Context, id string) (Quote, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.m[id]
	return q, ok, nil
}
