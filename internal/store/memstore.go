package store

import (
	"context"
	"sync"
)

// MemStore is a mutex-guarded in-memory store. It hands out record copies so
// callers can never mutate stored state behind the store's back. Used for
// tests and single-process deployments that do not need durability.
type MemStore struct {
	mu          sync.Mutex
	collections map[string][]Record
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{collections: make(map[string][]Record)}
}

// List implements Store.
func (s *MemStore) List(ctx context.Context, collection string) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs := s.collections[collection]
	out := make([]Record, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.Clone())
	}
	return out, nil
}

// Append implements Store.
func (s *MemStore) Append(ctx context.Context, collection string, rec Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.collections[collection] = append(s.collections[collection], rec.Clone())
	return rec.Clone(), nil
}

// UpdateByID implements Store.
func (s *MemStore) UpdateByID(ctx context.Context, collection string, patch Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs := s.collections[collection]
	for i, rec := range recs {
		if rec.ID() != patch.ID() {
			continue
		}
		merged := merge(rec, patch)
		recs[i] = merged
		return merged.Clone(), nil
	}

	return nil, ErrNotFound
}
