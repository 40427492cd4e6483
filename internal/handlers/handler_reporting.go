package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/mnjscf/team_ops_app/internal/core/ports/services"
	"github.com/mnjscf/team_ops_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for dashboard aggregates.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
	roster           portssvc.RosterSvcFacade
}

// registerReportingRoutes registers all reporting-related routes.
func registerReportingRoutes(rg *gin.RouterGroup, rs portssvc.ReportingSvcFacade, roster portssvc.RosterSvcFacade) {
	h := &reportingHandler{reportingService: rs, roster: roster}

	rg.GET("/dashboard", h.dashboard)
}

// dashboard godoc
// @Summary Dashboard aggregates
// @Description Returns counters, metric volume, completion rate, the last-7-day activity trend and the per-category distribution over the caller's visible work logs.
// @Tags reporting
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *reportingHandler) dashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	caller, ok := resolveCaller(c, h.roster)
	if !ok {
		return
	}

	resp, err := h.reportingService.Dashboard(c.Request.Context(), caller)
	if err != nil {
		logger.Error("Failed to build dashboard", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build dashboard"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
