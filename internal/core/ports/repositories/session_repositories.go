package repositories

import (
	"context"

	"github.com/mnjscf/team_ops_app/internal/core/domain"
)

// SessionRepositoryFacade persists the single current-session record so a
// process restart restores the Authenticated state without re-prompting.
type SessionRepositoryFacade interface {
	// Load returns the persisted session user, or apperrors.ErrNotFound when
	// no session is stored (or the stored payload fails to parse).
	Load(ctx context.Context) (*domain.User, error)

	// Save replaces the persisted session user.
	Save(ctx context.Context, user domain.User) error

	// Clear removes the persisted session. Clearing an absent session is a
	// no-op.
	Clear(ctx context.Context) error
}
