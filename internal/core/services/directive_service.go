package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mnjscf/team_ops_app/internal/apperrors"
	"github.com/mnjscf/team_ops_app/internal/core/domain"
	portsrepo "github.com/mnjscf/team_ops_app/internal/core/ports/repositories"
	portssvc "github.com/mnjscf/team_ops_app/internal/core/ports/services"
	"github.com/mnjscf/team_ops_app/internal/dto"
)

// directiveService owns the directive collection: admin-only issue and
// recall, advisory status progression open to any authenticated caller.
type directiveService struct {
	BaseService
	directiveRepo portsrepo.DirectiveRepositoryFacade
	roster        portssvc.RosterSvcFacade
}

// NewDirectiveService creates a directive service.
func NewDirectiveService(directiveRepo portsrepo.DirectiveRepositoryFacade, roster portssvc.RosterSvcFacade) portssvc.DirectiveSvcFacade {
	return &directiveService{directiveRepo: directiveRepo, roster: roster}
}

var _ portssvc.DirectiveSvcFacade = (*directiveService)(nil)

// ListVisible returns the caller's visible slice of the collection, in store
// order.
func (s *directiveService) ListVisible(ctx context.Context, caller domain.User) ([]domain.Directive, error) {
	directives, err := s.directiveRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list directives: %w", err)
	}
	return domain.VisibleDirectives(directives, caller), nil
}

// Save issues a new directive (status Pending) or edits one in place. Only
// the admin issues directives; any other caller is silently refused.
func (s *directiveService) Save(ctx context.Context, caller domain.User, req dto.SaveDirectiveRequest) (*domain.Directive, error) {
	if !caller.IsAdmin() {
		s.LogWarn(ctx, "Refusing directive save for non-admin caller",
			slog.String("caller_id", caller.UserID))
		return nil, apperrors.ErrForbidden
	}

	target, err := s.roster.FindByID(ctx, req.TargetUserID)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown target user %q", apperrors.ErrValidation, req.TargetUserID)
	}

	directive := domain.Directive{
		DirectiveID:    req.DirectiveID,
		AdminID:        caller.UserID,
		TargetUserID:   target.UserID,
		TargetUserName: target.Name,
		Title:          req.Title,
		Description:    req.Description,
		Priority:       domain.DirectivePriority(req.Priority),
		Status:         domain.DirectivePending,
		Timestamp:      time.Now().UTC(),
	}

	if directive.DirectiveID == "" {
		directive.DirectiveID = uuid.NewString()
	} else {
		// Edits keep the immutable creation timestamp, the creation-time
		// name snapshot and the current status.
		directives, err := s.directiveRepo.LoadAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load directives: %w", err)
		}
		for _, existing := range directives {
			if existing.DirectiveID == directive.DirectiveID {
				directive.Timestamp = existing.Timestamp
				directive.Status = existing.Status
				if existing.TargetUserID == directive.TargetUserID {
					directive.TargetUserName = existing.TargetUserName
				}
				break
			}
		}
	}

	if err := s.directiveRepo.Upsert(ctx, directive); err != nil {
		return nil, fmt.Errorf("failed to save directive: %w", err)
	}
	s.LogInfo(ctx, "Directive saved",
		slog.String("directive_id", directive.DirectiveID),
		slog.String("target_user_id", directive.TargetUserID),
		slog.String("priority", string(directive.Priority)))
	return &directive, nil
}

// UpdateStatus sets the directive status. The Pending -> Acknowledged ->
// In Progress -> Done progression is advisory only: any enumerated value is
// accepted from any authenticated caller, matching the dashboard's behavior.
func (s *directiveService) UpdateStatus(ctx context.Context, caller domain.User, directiveID string, status domain.DirectiveStatus) (*domain.Directive, error) {
	directives, err := s.directiveRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load directives: %w", err)
	}
	for _, directive := range directives {
		if directive.DirectiveID != directiveID {
			continue
		}
		directive.Status = status
		if err := s.directiveRepo.Upsert(ctx, directive); err != nil {
			return nil, fmt.Errorf("failed to save directive: %w", err)
		}
		s.LogInfo(ctx, "Directive status updated",
			slog.String("directive_id", directiveID),
			slog.String("status", string(status)),
			slog.String("caller_id", caller.UserID))
		return &directive, nil
	}
	return nil, apperrors.ErrNotFound
}

// Recall removes the directive. Only the admin recalls; any other caller is
// silently refused. Recalling an absent ID is a no-op.
func (s *directiveService) Recall(ctx context.Context, caller domain.User, directiveID string) error {
	if !caller.IsAdmin() {
		s.LogWarn(ctx, "Refusing directive recall for non-admin caller",
			slog.String("directive_id", directiveID),
			slog.String("caller_id", caller.UserID))
		return apperrors.ErrForbidden
	}
	if err := s.directiveRepo.Remove(ctx, directiveID); err != nil {
		return fmt.Errorf("failed to recall directive: %w", err)
	}
	s.LogInfo(ctx, "Directive recalled", slog.String("directive_id", directiveID))
	return nil
}
