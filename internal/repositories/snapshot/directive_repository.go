package snapshot

import (
	"context"
	"log/slog"

	"github.com/mnjscf/team_ops_app/internal/core/domain"
	portsrepo "github.com/mnjscf/team_ops_app/internal/core/ports/repositories"
)

// SlotDirectives is the snapshot slot name for the directive collection.
const SlotDirectives = "directives"

// DirectiveRepository persists the directive collection as one snapshot slot,
// most-recent-first.
type DirectiveRepository struct {
	store  portsrepo.SlotStore
	logger *slog.Logger
}

// NewDirectiveRepository creates a DirectiveRepository backed by the given store.
func NewDirectiveRepository(store portsrepo.SlotStore, logger *slog.Logger) *DirectiveRepository {
	return &DirectiveRepository{store: store, logger: logger}
}

var _ portsrepo.DirectiveRepositoryFacade = (*DirectiveRepository)(nil)

// LoadAll returns the full collection; missing or corrupt snapshots yield an
// empty collection.
func (r *DirectiveRepository) LoadAll(ctx context.Context) ([]domain.Directive, error) {
	return loadAll[domain.Directive](ctx, r.store, SlotDirectives, r.logger)
}

// Upsert replaces the directive with the same ID in place or prepends a new
// one, then rewrites the snapshot.
func (r *DirectiveRepository) Upsert(ctx context.Context, directive domain.Directive) error {
	directives, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}
	return persist(ctx, r.store, SlotDirectives, upsertFront(directives, directive))
}

// Remove filters the ID out of the collection and rewrites the snapshot.
func (r *DirectiveRepository) Remove(ctx context.Context, directiveID string) error {
	directives, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}
	return persist(ctx, r.store, SlotDirectives, removeByID(directives, directiveID))
}
