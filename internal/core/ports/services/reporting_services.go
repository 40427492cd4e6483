package services

import (
	"context"

	"github.com/mnjscf/team_ops_app/internal/core/domain"
	"github.com/mnjscf/team_ops_app/internal/dto"
)

// ReportingSvcFacade derives dashboard aggregates from the caller's visible
// work logs.
type ReportingSvcFacade interface {
	// Dashboard returns counters, the last-7-day activity trend and the
	// per-category distribution over the caller's visible logs.
	Dashboard(ctx context.Context, caller domain.User) (*dto.DashboardResponse, error)
}
