package services

import (
	"context"

	"github.com/mnjscf/team_ops_app/internal/core/domain"
	"github.com/mnjscf/team_ops_app/internal/dto"
)

// DirectiveSvcFacade manages admin-issued work assignments.
type DirectiveSvcFacade interface {
	// ListVisible returns the directives the caller may observe, in store
	// order (most-recent-first).
	ListVisible(ctx context.Context, caller domain.User) ([]domain.Directive, error)

	// Save creates a new directive (empty DirectiveID, status Pending) or
	// edits the matching directive in place. Admin only: for any other
	// caller it is a silent no-op guard.
	Save(ctx context.Context, caller domain.User, req dto.SaveDirectiveRequest) (*domain.Directive, error)

	// UpdateStatus sets the directive status. The progression is advisory;
	// any enumerated value is accepted from any authenticated caller.
	UpdateStatus(ctx context.Context, caller domain.User, directiveID string, status domain.DirectiveStatus) (*domain.Directive, error)

	// Recall removes the directive. Admin only: for any other caller it is a
	// silent no-op guard, not an error.
	Recall(ctx context.Context, caller domain.User, directiveID string) error
}
