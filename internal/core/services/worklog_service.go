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

// workLogService owns the work log collection: visibility-filtered reads,
// upsert-style writes, admin-only deletes, and the best-effort sheet mirror.
type workLogService struct {
	BaseService
	workLogRepo portsrepo.WorkLogRepositoryFacade
	roster      portssvc.RosterSvcFacade
	submitter   portssvc.WorkLogSubmitter // nil when mirroring is not configured
}

// NewWorkLogService creates a work log service. The submitter may be nil, in
// which case saved entries are not mirrored anywhere.
func NewWorkLogService(workLogRepo portsrepo.WorkLogRepositoryFacade, roster portssvc.RosterSvcFacade, submitter portssvc.WorkLogSubmitter) portssvc.WorkLogSvcFacade {
	return &workLogService{workLogRepo: workLogRepo, roster: roster, submitter: submitter}
}

var _ portssvc.WorkLogSvcFacade = (*workLogService)(nil)

// ListVisible returns the caller's visible slice of the collection, in store
// order.
func (s *workLogService) ListVisible(ctx context.Context, caller domain.User) ([]domain.WorkLogEntry, error) {
	entries, err := s.workLogRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list work logs: %w", err)
	}
	return domain.VisibleWorkLogs(entries, caller), nil
}

// Save creates or edits a work log entry. A member always logs against
// themselves; an admin may log on any member's behalf. The owning member must
// exist on the roster. After persisting, the entry is mirrored best-effort to
// the external sheet; a mirror failure is logged and otherwise ignored.
func (s *workLogService) Save(ctx context.Context, caller domain.User, req dto.SaveWorkLogRequest) (*domain.WorkLogEntry, error) {
	memberID := req.TeamMemberID
	if !caller.IsAdmin() || memberID == "" {
		memberID = caller.UserID
	}

	var existing *domain.WorkLogEntry
	if req.EntryID != "" {
		entries, err := s.workLogRepo.LoadAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load work logs: %w", err)
		}
		for i := range entries {
			if entries[i].EntryID == req.EntryID {
				existing = &entries[i]
				break
			}
		}
	}

	entry := domain.WorkLogEntry{
		EntryID:      req.EntryID,
		Timestamp:    time.Now().UTC(),
		Category:     domain.Category(req.Category),
		TeamMemberID: memberID,
		Description:  req.Description,
		Status:       domain.WorkLogStatus(req.Status),
		MetricValue:  req.MetricValue,
		Comments:     req.Comments,
	}
	if entry.EntryID == "" {
		entry.EntryID = uuid.NewString()
	}

	switch {
	case existing != nil:
		// Edits keep the immutable creation timestamp, and the denormalized
		// name stays the creation-time snapshot unless the owner changed.
		entry.Timestamp = existing.Timestamp
		entry.TeamMemberName = existing.TeamMemberName
		if existing.TeamMemberID != memberID {
			member, err := s.roster.FindByID(ctx, memberID)
			if err != nil {
				return nil, fmt.Errorf("%w: unknown team member %q", apperrors.ErrValidation, memberID)
			}
			entry.TeamMemberName = member.Name
		}
	default:
		member, err := s.roster.FindByID(ctx, memberID)
		if err != nil {
			return nil, fmt.Errorf("%w: unknown team member %q", apperrors.ErrValidation, memberID)
		}
		entry.TeamMemberName = member.Name
	}

	if err := s.workLogRepo.Upsert(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to save work log: %w", err)
	}
	s.LogInfo(ctx, "Work log saved",
		slog.String("entry_id", entry.EntryID),
		slog.String("member_id", entry.TeamMemberID),
		slog.Bool("edit", existing != nil))

	s.mirrorToSheet(ctx, entry)
	return &entry, nil
}

// QuickComplete resubmits the entry with status Completed. A member may only
// complete their own entries; the guard is silent, as with deletes.
func (s *workLogService) QuickComplete(ctx context.Context, caller domain.User, entryID string) (*domain.WorkLogEntry, error) {
	entries, err := s.workLogRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load work logs: %w", err)
	}
	for i := range entries {
		if entries[i].EntryID != entryID {
			continue
		}
		if !caller.IsAdmin() && entries[i].TeamMemberID != caller.UserID {
			s.LogWarn(ctx, "Refusing quick-complete of another member's entry",
				slog.String("entry_id", entryID),
				slog.String("caller_id", caller.UserID))
			return nil, apperrors.ErrForbidden
		}
		entry := entries[i]
		entry.Status = domain.WorkLogCompleted
		if err := s.workLogRepo.Upsert(ctx, entry); err != nil {
			return nil, fmt.Errorf("failed to save work log: %w", err)
		}
		s.LogInfo(ctx, "Work log quick-completed", slog.String("entry_id", entryID))
		s.mirrorToSheet(ctx, entry)
		return &entry, nil
	}
	return nil, apperrors.ErrNotFound
}

// Delete removes the entry. Only the admin deletes; any other caller is
// silently refused without touching the collection. Deleting an absent ID is
// a no-op.
func (s *workLogService) Delete(ctx context.Context, caller domain.User, entryID string) error {
	if !caller.IsAdmin() {
		s.LogWarn(ctx, "Refusing work log delete for non-admin caller",
			slog.String("entry_id", entryID),
			slog.String("caller_id", caller.UserID))
		return apperrors.ErrForbidden
	}
	if err := s.workLogRepo.Remove(ctx, entryID); err != nil {
		return fmt.Errorf("failed to delete work log: %w", err)
	}
	s.LogInfo(ctx, "Work log deleted", slog.String("entry_id", entryID))
	return nil
}

// mirrorToSheet pushes the entry to the external sheet store. Local state is
// authoritative; failures are logged and never propagated.
func (s *workLogService) mirrorToSheet(ctx context.Context, entry domain.WorkLogEntry) {
	if s.submitter == nil {
		return
	}
	if err := s.submitter.Submit(ctx, entry); err != nil {
		s.LogWarn(ctx, "Sheet mirror failed",
			slog.String("entry_id", entry.EntryID),
			slog.String("error", err.Error()))
	}
}
