// Package sqlite provides the embedded SlotStore: one row per snapshot slot
// in a single SQLite file, the server-side stand-in for the browser-local
// storage the dashboard UI was built around.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	portsrepo "github.com/mnjscf/team_ops_app/internal/core/ports/repositories"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// Store implements ports SlotStore over a snapshots table
// (slot TEXT PRIMARY KEY, payload BLOB).
type Store struct {
	db *sql.DB
}

// NewStore wraps an already-opened database handle. The snapshots table is
// created by the startup migrations.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

var _ portsrepo.SlotStore = (*Store)(nil)

// Load returns the payload stored under slot, or nil when the slot has never
// been written.
func (s *Store) Load(ctx context.Context, slot string) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM snapshots WHERE slot = ?`, slot).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read slot %q: %w", slot, err)
	}
	return payload, nil
}

// Save replaces the payload stored under slot in a single statement, so a
// reader never observes a partially written snapshot.
func (s *Store) Save(ctx context.Context, slot string, payload []byte) error {
	query := `
        INSERT INTO snapshots (slot, payload)
        VALUES (?, ?)
        ON CONFLICT (slot) DO UPDATE SET
            payload = excluded.payload;
    `
	if _, err := s.db.ExecContext(ctx, query, slot, payload); err != nil {
		return fmt.Errorf("failed to write slot %q: %w", slot, err)
	}
	return nil
}

// Clear removes the slot row entirely. Clearing an absent slot is a no-op.
func (s *Store) Clear(ctx context.Context, slot string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE slot = ?`, slot); err != nil {
		return fmt.Errorf("failed to clear slot %q: %w", slot, err)
	}
	return nil
}
