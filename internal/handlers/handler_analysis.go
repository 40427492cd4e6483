package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mnjscf/team_ops_app/internal/apperrors"
	portssvc "github.com/mnjscf/team_ops_app/internal/core/ports/services"
	"github.com/mnjscf/team_ops_app/internal/dto"
	"github.com/mnjscf/team_ops_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// analysisHandler handles HTTP requests for the performance analysis.
type analysisHandler struct {
	analysisService portssvc.AnalysisSvcFacade
	roster          portssvc.RosterSvcFacade
}

// registerAnalysisRoutes registers all analysis-related routes.
func registerAnalysisRoutes(rg *gin.RouterGroup, as portssvc.AnalysisSvcFacade, roster portssvc.RosterSvcFacade) {
	h := &analysisHandler{analysisService: as, roster: roster}

	analysis := rg.Group("/analysis")
	{
		analysis.POST("", h.runAnalysis)
		analysis.GET("", h.lastAnalysis)
	}
}

// runAnalysis godoc
// @Summary Run the performance analysis
// @Description Samples the caller's most recent visible logs and asks the analysis collaborator for a summary. Collaborator failures yield the fixed fallback result, never an error.
// @Tags analysis
// @Produce json
// @Success 200 {object} dto.AnalysisResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "A run is already in progress"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /analysis [post]
func (h *analysisHandler) runAnalysis(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	caller, ok := resolveCaller(c, h.roster)
	if !ok {
		return
	}

	result, err := h.analysisService.Run(c.Request.Context(), caller)
	if err != nil {
		if errors.Is(err, apperrors.ErrAnalysisRunning) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Analysis already in progress"})
			return
		}
		logger.Error("Failed to run analysis", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to run analysis"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAnalysisResponse(*result))
}

// lastAnalysis godoc
// @Summary Last analysis result
// @Description Returns the most recent completed analysis. 404 when no run has completed since the process started; results are never persisted.
// @Tags analysis
// @Produce json
// @Success 200 {object} dto.AnalysisResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No completed analysis"
// @Security BearerAuth
// @Router /analysis [get]
func (h *analysisHandler) lastAnalysis(c *gin.Context) {
	if _, ok := resolveCaller(c, h.roster); !ok {
		return
	}

	result := h.analysisService.Last()
	if result == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "No completed analysis"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAnalysisResponse(*result))
}
