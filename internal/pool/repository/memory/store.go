// Package memory keeps pool records in process memory.
package memory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/goodnatureofminers/giftpool-backend/internal/pool/model"
)

// Store is a map-backed ledger. Records are deep-copied on the way in and out.
type Store struct {
	mu      sync.RWMutex
	pools   map[string]model.Pool
	order   []string
	counter atomic.Uint64
}

// New returns an empty store.
func New() *Store {
	return &Store{pools: make(map[string]model.Pool)}
}

func (s *Store) Get(ctx context.Context, id string) (model.Pool, bool, error) {
	if err := ctx.Err(); err != nil {
		return model.Pool{}, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.pools[id]
	if !ok {
		return model.Pool{}, false, nil
	}
	return p.Clone(), true, nil
}

// List returns pools in creation order.
func (s *Store) List(ctx context.Context) ([]model.Pool, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Pool, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.pools[id].Clone())
	}
	return out, nil
}

func (s *Store) Upsert(ctx context.Context, p model.Pool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.ID == "" {
		return fmt.Errorf("upsert pool: empty id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pools[p.ID]; !ok {
		s.order = append(s.order, p.ID)
	}
	s.pools[p.ID] = p.Clone()
	return nil
}

func (s *Store) NextID(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return fmt.Sprintf("pool-%d", s.counter.Add(1)), nil
}
