package snapshot

import (
	"context"
	"log/slog"

	"github.com/mnjscf/team_ops_app/internal/core/domain"
	portsrepo "github.com/mnjscf/team_ops_app/internal/core/ports/repositories"
)

// SlotWorkLogs is the snapshot slot name for the work log collection.
const SlotWorkLogs = "worklogs"

// WorkLogRepository persists the work log collection as one snapshot slot,
// most-recent-first.
type WorkLogRepository struct {
	store  portsrepo.SlotStore
	logger *slog.Logger
}

// NewWorkLogRepository creates a WorkLogRepository backed by the given store.
func NewWorkLogRepository(store portsrepo.SlotStore, logger *slog.Logger) *WorkLogRepository {
	return &WorkLogRepository{store: store, logger: logger}
}

var _ portsrepo.WorkLogRepositoryFacade = (*WorkLogRepository)(nil)

// LoadAll returns the full collection; missing or corrupt snapshots yield an
// empty collection.
func (r *WorkLogRepository) LoadAll(ctx context.Context) ([]domain.WorkLogEntry, error) {
	return loadAll[domain.WorkLogEntry](ctx, r.store, SlotWorkLogs, r.logger)
}

// Upsert replaces the entry with the same ID in place or prepends a new one,
// then rewrites the snapshot.
func (r *WorkLogRepository) Upsert(ctx context.Context, entry domain.WorkLogEntry) error {
	entries, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}
	return persist(ctx, r.store, SlotWorkLogs, upsertFront(entries, entry))
}

// Remove filters the ID out of the collection and rewrites the snapshot.
// Removing an absent ID rewrites the unchanged collection and is not an error.
func (r *WorkLogRepository) Remove(ctx context.Context, entryID string) error {
	entries, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}
	return persist(ctx, r.store, SlotWorkLogs, removeByID(entries, entryID))
}
