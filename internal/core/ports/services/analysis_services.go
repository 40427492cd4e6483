package services

import (
	"context"

	"github.com/mnjscf/team_ops_app/internal/core/domain"
)

// AnalysisSvcFacade runs the external analysis collaborator over the caller's
// visible work logs and keeps the most recent result in memory. The result is
// never persisted and is lost on restart.
type AnalysisSvcFacade interface {
	// Run samples the 15 most-recent visible logs and asks the collaborator
	// for a summary. Returns apperrors.ErrAnalysisRunning when a run is
	// already outstanding. Collaborator failures never surface here; the
	// fixed fallback result is returned instead.
	Run(ctx context.Context, caller domain.User) (*domain.AnalysisResult, error)

	// Last returns the most recent result, or nil when none has completed.
	Last() *domain.AnalysisResult
}
