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

// workLogHandler handles HTTP requests related to work log entries.
type workLogHandler struct {
	workLogService portssvc.WorkLogSvcFacade
	roster         portssvc.RosterSvcFacade
}

// registerWorkLogRoutes registers all work-log-related routes.
func registerWorkLogRoutes(rg *gin.RouterGroup, ws portssvc.WorkLogSvcFacade, roster portssvc.RosterSvcFacade) {
	h := &workLogHandler{workLogService: ws, roster: roster}

	logs := rg.Group("/worklogs")
	{
		logs.GET("", h.listWorkLogs)
		logs.PUT("", h.saveWorkLog)                 // Upsert by entryID
		logs.POST("/:id/complete", h.quickComplete) // Owner shortcut
		logs.DELETE("/:id", h.deleteWorkLog)        // Admin only
	}
}

// listWorkLogs godoc
// @Summary List visible work logs
// @Description Returns the caller's visible entries most-recent-first. Admin sees all, a member only their own.
// @Tags worklogs
// @Produce json
// @Success 200 {object} dto.ListWorkLogsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /worklogs [get]
func (h *workLogHandler) listWorkLogs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	caller, ok := resolveCaller(c, h.roster)
	if !ok {
		return
	}

	entries, err := h.workLogService.ListVisible(c.Request.Context(), caller)
	if err != nil {
		logger.Error("Failed to list work logs", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list work logs"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListWorkLogsResponse(entries))
}

// saveWorkLog godoc
// @Summary Create or edit a work log entry
// @Description Creates a new entry when entryID is empty, otherwise edits the matching entry in place. A member always logs against themselves. The saved entry is mirrored best-effort to the external sheet.
// @Tags worklogs
// @Accept json
// @Produce json
// @Param entry body dto.SaveWorkLogRequest true "Entry details"
// @Success 200 {object} dto.WorkLogResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown entry or team member"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /worklogs [put]
func (h *workLogHandler) saveWorkLog(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	caller, ok := resolveCaller(c, h.roster)
	if !ok {
		return
	}

	var req dto.SaveWorkLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for save work log", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.workLogService.Save(c.Request.Context(), caller, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Entry or team member not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to save work log", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to save work log"})
		}
		return
	}

	logger.Info("Work log saved", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusOK, dto.ToWorkLogResponse(*entry))
}

// quickComplete godoc
// @Summary Mark an entry Completed
// @Description Resubmits the entry with status Completed. Only the owning member (or the admin) changes anything; for anyone else this is a silent no-op.
// @Tags worklogs
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} dto.WorkLogResponse
// @Success 204 "No Content (caller is not the owner)"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown entry"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /worklogs/{id}/complete [post]
func (h *workLogHandler) quickComplete(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	caller, ok := resolveCaller(c, h.roster)
	if !ok {
		return
	}
	entryID := c.Param("id")

	entry, err := h.workLogService.QuickComplete(c.Request.Context(), caller, entryID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			// Guarded operations never error visibly.
			c.Status(http.StatusNoContent)
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Entry not found"})
		default:
			logger.Error("Failed to complete work log", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to complete work log"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkLogResponse(*entry))
}

// deleteWorkLog godoc
// @Summary Delete a work log entry
// @Description Removes the entry from the collection. Admin only; for any other caller this is a silent no-op.
// @Tags worklogs
// @Produce json
// @Param id path string true "Entry ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /worklogs/{id} [delete]
func (h *workLogHandler) deleteWorkLog(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	caller, ok := resolveCaller(c, h.roster)
	if !ok {
		return
	}
	entryID := c.Param("id")

	if err := h.workLogService.Delete(c.Request.Context(), caller, entryID); err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			// Non-admin delete is swallowed, not rejected.
			c.Status(http.StatusNoContent)
			return
		}
		logger.Error("Failed to delete work log", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete work log"})
		return
	}

	logger.Info("Work log deleted", slog.String("entry_id", entryID))
	c.Status(http.StatusNoContent)
}
