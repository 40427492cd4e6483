package services

import (
	"context"

	"github.com/mnjscf/team_ops_app/internal/core/domain"
)

// SessionSvcFacade manages the two-state session machine: Anonymous until a
// successful login, Authenticated until an explicit logout. The authenticated
// user is persisted to the session snapshot slot so a process restart
// restores the session; there is no timeout-based expiry.
type SessionSvcFacade interface {
	// Login authenticates against the roster and persists the session
	// snapshot. Returns apperrors.ErrInvalidCredentials on failure.
	Login(ctx context.Context, userID, password string) (*domain.User, error)

	// Current returns the persisted session user, or apperrors.ErrNotFound
	// when the session is Anonymous.
	Current(ctx context.Context) (*domain.User, error)

	// Logout clears the persisted session snapshot. Logging out of an
	// Anonymous session is a no-op.
	Logout(ctx context.Context) error
}
