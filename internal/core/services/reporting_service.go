package services

import (
	"context"
	"time"

	"github.com/mnjscf/team_ops_app/internal/core/domain"
	portssvc "github.com/mnjscf/team_ops_app/internal/core/ports/services"
	"github.com/mnjscf/team_ops_app/internal/dto"
	"github.com/shopspring/decimal"
)

// trendDays is the span of the dashboard activity trend, today inclusive.
const trendDays = 7

// reportingService derives dashboard aggregates from the caller's visible
// work logs. It is read-only and goes through the work log service so the
// visibility rules live in exactly one place.
type reportingService struct {
	BaseService
	workLogs portssvc.WorkLogReaderSvc
	now      func() time.Time
}

// ReportingOption configures the reporting service.
type ReportingOption func(*reportingService)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) ReportingOption {
	return func(s *reportingService) {
		s.now = now
	}
}

// NewReportingService creates a reporting service over the work log reader.
func NewReportingService(workLogs portssvc.WorkLogReaderSvc, opts ...ReportingOption) portssvc.ReportingSvcFacade {
	s := &reportingService{workLogs: workLogs, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// Dashboard aggregates the caller's visible logs: status counters, metric
// volume and completion rate, the last-7-day activity trend and the
// per-category distribution.
func (s *reportingService) Dashboard(ctx context.Context, caller domain.User) (*dto.DashboardResponse, error) {
	entries, err := s.workLogs.ListVisible(ctx, caller)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		TotalEntries:   len(entries),
		MetricVolume:   decimal.Zero,
		CompletionRate: decimal.Zero,
	}

	categoryCounts := make(map[domain.Category]int)
	for _, e := range entries {
		switch e.Status {
		case domain.WorkLogCompleted:
			resp.Completed++
		case domain.WorkLogBlocked:
			resp.Blocked++
		}
		resp.MetricVolume = resp.MetricVolume.Add(decimal.NewFromFloat(e.MetricValue))
		categoryCounts[e.Category]++
	}
	resp.Pending = resp.TotalEntries - resp.Completed

	if resp.TotalEntries > 0 {
		resp.CompletionRate = decimal.NewFromInt(int64(resp.Completed)).
			Div(decimal.NewFromInt(int64(resp.TotalEntries))).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}

	resp.Trend = s.activityTrend(entries)
	resp.Distribution = distribution(categoryCounts)
	return resp, nil
}

// activityTrend counts entries per calendar day (UTC) over the trailing
// window, oldest day first.
func (s *reportingService) activityTrend(entries []domain.WorkLogEntry) []dto.TrendPointResponse {
	today := s.now().UTC().Truncate(24 * time.Hour)
	trend := make([]dto.TrendPointResponse, 0, trendDays)
	for i := trendDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		point := dto.TrendPointResponse{Date: day.Format("2006-01-02")}
		for _, e := range entries {
			if e.Timestamp.UTC().Truncate(24 * time.Hour).Equal(day) {
				point.Count++
			}
		}
		trend = append(trend, point)
	}
	return trend
}

// distribution orders category counts by the fixed department enumeration so
// the dashboard bars render stably.
func distribution(counts map[domain.Category]int) []dto.CategoryCountResponse {
	ordered := []domain.Category{
		domain.CategoryTelecalling,
		domain.CategoryWebDevelopment,
		domain.CategoryBlogs,
		domain.CategorySocialMedia,
		domain.CategoryAdmin,
	}
	result := make([]dto.CategoryCountResponse, 0, len(counts))
	for _, c := range ordered {
		if n, ok := counts[c]; ok {
			result = append(result, dto.CategoryCountResponse{Category: string(c), Count: n})
		}
	}
	return result
}
