package services

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/mnjscf/team_ops_app/internal/apperrors"
	"github.com/mnjscf/team_ops_app/internal/core/domain"
	portssvc "github.com/mnjscf/team_ops_app/internal/core/ports/services"
)

// analysisSampleSize caps how many recent entries are sent to the provider.
const analysisSampleSize = 15

// analysisService runs the external analysis provider over the caller's
// visible logs. At most one run may be outstanding at a time; the latest
// result is held in memory only.
type analysisService struct {
	BaseService
	workLogs portssvc.WorkLogReaderSvc
	provider portssvc.AnalysisProvider

	running atomic.Bool
	mu      sync.RWMutex
	last    *domain.AnalysisResult
}

// NewAnalysisService creates an analysis service. The provider may be nil
// when no analysis backend is configured; runs then yield the fallback
// result.
func NewAnalysisService(workLogs portssvc.WorkLogReaderSvc, provider portssvc.AnalysisProvider) portssvc.AnalysisSvcFacade {
	return &analysisService{workLogs: workLogs, provider: provider}
}

var _ portssvc.AnalysisSvcFacade = (*analysisService)(nil)

// Run samples the caller's most recent visible logs and asks the provider for
// a summary. Only one run may be in flight; concurrent callers get
// apperrors.ErrAnalysisRunning.
func (s *analysisService) Run(ctx context.Context, caller domain.User) (*domain.AnalysisResult, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, apperrors.ErrAnalysisRunning
	}
	defer s.running.Store(false)

	entries, err := s.workLogs.ListVisible(ctx, caller)
	if err != nil {
		return nil, err
	}
	if len(entries) > analysisSampleSize {
		entries = entries[:analysisSampleSize]
	}

	result := domain.FallbackAnalysisResult()
	if s.provider != nil {
		result, err = s.provider.Summarize(ctx, entries)
		if err != nil {
			// The provider already substituted the fallback payload.
			s.LogWarn(ctx, "analysis provider degraded to fallback", "error", err)
		}
	}

	s.mu.Lock()
	s.last = &result
	s.mu.Unlock()
	return &result, nil
}

// Last returns the most recent completed result, or nil.
func (s *analysisService) Last() *domain.AnalysisResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}
