package repositories

import (
	"context"

	"github.com/mnjscf/team_ops_app/internal/core/domain"
)

// DirectiveReader defines read operations over the directive collection.
type DirectiveReader interface {
	// LoadAll returns the full collection, most-recent-first. A missing or
	// unparsable snapshot yields an empty collection, never an error.
	LoadAll(ctx context.Context) ([]domain.Directive, error)
}

// DirectiveWriter defines write operations over the directive collection.
type DirectiveWriter interface {
	// Upsert replaces the directive with the same ID in place, or prepends
	// it when the ID is new, then rewrites the snapshot.
	Upsert(ctx context.Context, directive domain.Directive) error

	// Remove filters the ID out of the collection. Removing an absent ID is
	// a no-op, not an error.
	Remove(ctx context.Context, directiveID string) error
}

// DirectiveRepositoryFacade combines all directive repository interfaces.
type DirectiveRepositoryFacade interface {
	DirectiveReader
	DirectiveWriter
}
