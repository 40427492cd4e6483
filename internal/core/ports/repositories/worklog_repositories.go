package repositories

import (
	"context"

	"github.com/mnjscf/team_ops_app/internal/core/domain"
)

// WorkLogReader defines read operations over the work log collection.
type WorkLogReader interface {
	// LoadAll returns the full collection, most-recent-first. A missing or
	// unparsable snapshot yields an empty collection, never an error.
	LoadAll(ctx context.Context) ([]domain.WorkLogEntry, error)
}

// WorkLogWriter defines write operations over the work log collection.
type WorkLogWriter interface {
	// Upsert replaces the entry with the same ID in place, or prepends the
	// entry when the ID is new, then rewrites the snapshot.
	Upsert(ctx context.Context, entry domain.WorkLogEntry) error

	// Remove filters the ID out of the collection. Removing an absent ID is
	// a no-op, not an error.
	Remove(ctx context.Context, entryID string) error
}

// WorkLogRepositoryFacade combines all work-log repository interfaces.
type WorkLogRepositoryFacade interface {
	WorkLogReader
	WorkLogWriter
}
