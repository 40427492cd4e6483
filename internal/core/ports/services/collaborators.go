package services

import (
	"context"

	"github.com/mnjscf/team_ops_app/internal/core/domain"
)

// AnalysisProvider is the boundary to the external text-generation service.
// Implementations must degrade to domain.FallbackAnalysisResult() on any
// transport failure or malformed payload instead of returning an error; the
// error return exists so callers can log the degradation.
type AnalysisProvider interface {
	Summarize(ctx context.Context, sample []domain.WorkLogEntry) (domain.AnalysisResult, error)
}

// WorkLogSubmitter is the boundary to the external spreadsheet-backed store.
// Submission is best-effort: local state is authoritative and a failed submit
// is logged by the caller, never surfaced.
type WorkLogSubmitter interface {
	Submit(ctx context.Context, entry domain.WorkLogEntry) error
}
