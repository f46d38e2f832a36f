package content

import (
	"sync"

	"devd.dev/internal/models"
)

// Store holds the current content snapshot. Snapshots are never mutated after
// they are stored; a reload swaps in a new one.
type Store struct {
	mu        sync.RWMutex
	portfolio *models.Portfolio
	version   uint64
}

// NewStore creates a store holding p
func NewStore(p *models.Portfolio) *Store {
	return &Store{portfolio: p, version: 1}
}

// Current returns the current snapshot
func (s *Store) Current() *models.Portfolio {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.portfolio
}

// Replace swaps in a new snapshot
func (s *Store) Replace(p *models.Portfolio) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.portfolio = p
	s.version++
}

// Version increases by one on every Replace
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}
