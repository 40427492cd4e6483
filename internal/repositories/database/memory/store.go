// Package memory provides a map-backed SlotStore used by tests and as a
// throwaway store when no database path is configured.
package memory

import (
	"context"
	"sync"

	portsrepo "github.com/mnjscf/team_ops_app/internal/core/ports/repositories"
)

// Store keeps slot payloads in process memory. Nothing survives a restart.
type Store struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewStore creates an empty in-memory slot store.
func NewStore() *Store {
	return &Store{slots: make(map[string][]byte)}
}

var _ portsrepo.SlotStore = (*Store)(nil)

// Load returns a copy of the payload stored under slot, or nil when unset.
func (s *Store) Load(_ context.Context, slot string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	payload, ok := s.slots[slot]
	if !ok {
		return nil, nil
	}
	cp := make([]byte, len(payload))
	copy(cp, payload)
	return cp, nil
}

// Save replaces the payload stored under slot.
func (s *Store) Save(_ context.Context, slot string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(payload))
	copy(cp, payload)
	s.slots[slot] = cp
	return nil
}

// Clear removes the slot entirely.
func (s *Store) Clear(_ context.Context, slot string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, slot)
	return nil
}
