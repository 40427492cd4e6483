package services

import (
	"context"

	"github.com/mnjscf/team_ops_app/internal/core/domain"
	"github.com/mnjscf/team_ops_app/internal/dto"
)

// WorkLogReaderSvc defines read operations over work logs.
type WorkLogReaderSvc interface {
	// ListVisible returns the work logs the caller may observe, in store
	// order (most-recent-first).
	ListVisible(ctx context.Context, caller domain.User) ([]domain.WorkLogEntry, error)
}

// WorkLogWriterSvc defines mutations over work logs.
type WorkLogWriterSvc interface {
	// Save creates a new entry (empty EntryID) or edits the matching entry
	// in place. Members always log against themselves; an admin may log on
	// any member's behalf. The saved entry is mirrored best-effort to the
	// external sheet.
	Save(ctx context.Context, caller domain.User, req dto.SaveWorkLogRequest) (*domain.WorkLogEntry, error)

	// QuickComplete resubmits the entry with status Completed.
	QuickComplete(ctx context.Context, caller domain.User, entryID string) (*domain.WorkLogEntry, error)

	// Delete removes the entry. Admin only: for any other caller it is a
	// silent no-op guard, not an error.
	Delete(ctx context.Context, caller domain.User, entryID string) error
}

// WorkLogSvcFacade combines all work-log service interfaces.
type WorkLogSvcFacade interface {
	WorkLogReaderSvc
	WorkLogWriterSvc
}
