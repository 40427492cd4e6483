package services

import (
	"context"

	"github.com/mnjscf/team_ops_app/internal/core/domain"
)

// RosterSvcFacade is the identity directory: a fixed, immutable roster of
// users. There are no add/remove operations.
type RosterSvcFacade interface {
	// FindByID resolves a user by ID. Returns apperrors.ErrNotFound when the
	// ID is not on the roster.
	FindByID(ctx context.Context, userID string) (*domain.User, error)

	// FindByCredentials resolves a user by ID and password. The ID match is
	// case-insensitive, the password match exact. Returns
	// apperrors.ErrInvalidCredentials on any mismatch, without revealing
	// which part was wrong.
	FindByCredentials(ctx context.Context, userID, password string) (*domain.User, error)

	// ListUsers returns the full roster.
	ListUsers(ctx context.Context) []domain.User
}
