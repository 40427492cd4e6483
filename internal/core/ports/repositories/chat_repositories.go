package repositories

import (
	"context"

	"github.com/mnjscf/team_ops_app/internal/core/domain"
)

// ChatRepositoryFacade manages the shared chat channel. The collection is
// append-only in practice and bounded: after every upsert it is truncated to
// the most-recent domain.ChatHistoryLimit messages before persisting.
type ChatRepositoryFacade interface {
	// LoadAll returns the bounded history in append order (oldest first).
	LoadAll(ctx context.Context) ([]domain.ChatMessage, error)

	// Upsert appends (or replaces by ID) and truncates to the history limit.
	Upsert(ctx context.Context, message domain.ChatMessage) error
}
