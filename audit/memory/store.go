// Package memory is a fully in-memory audit store. Safe for concurrent
// access. Intended for unit testing and development.
package memory

import (
	"context"
	"sync"

	"github.com/xraph/portal/audit"
)

// Compile-time interface check.
var _ audit.Store = (*Store)(nil)

// Store keeps records in an in-memory slice, newest last.
type Store struct {
	mu      sync.RWMutex
	records []*audit.Record
}

// New returns a new empty Store.
func New() *Store {
	return &Store{}
}

// Append implements audit.Store.
func (s *Store) Append(_ context.Context, rec *audit.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *rec
	s.records = append(s.records, &cp)
	return nil
}

// List implements audit.Store, returning records newest first.
func (s *Store) List(_ context.Context, limit int) ([]*audit.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := len(s.records)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]*audit.Record, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		cp := *s.records[i]
		out = append(out, &cp)
	}
	return out, nil
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
