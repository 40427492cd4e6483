package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mnjscf/team_ops_app/internal/apperrors"
	"github.com/mnjscf/team_ops_app/internal/core/domain"
	portssvc "github.com/mnjscf/team_ops_app/internal/core/ports/services"
	"github.com/mnjscf/team_ops_app/internal/dto"
	"github.com/mnjscf/team_ops_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// directiveHandler handles HTTP requests related to directives.
type directiveHandler struct {
	directiveService portssvc.DirectiveSvcFacade
	roster           portssvc.RosterSvcFacade
}

// registerDirectiveRoutes registers all directive-related routes.
func registerDirectiveRoutes(rg *gin.RouterGroup, ds portssvc.DirectiveSvcFacade, roster portssvc.RosterSvcFacade) {
	h := &directiveHandler{directiveService: ds, roster: roster}

	directives := rg.Group("/directives")
	{
		directives.GET("", h.listDirectives)
		directives.PUT("", h.saveDirective)            // Upsert by directiveID, admin only
		directives.POST("/:id/status", h.updateStatus) // Any authenticated caller
		directives.DELETE("/:id", h.recallDirective)   // Admin only
	}
}

// listDirectives godoc
// @Summary List visible directives
// @Description Returns the caller's visible directives most-recent-first. Admin sees all, a member only those targeting them.
// @Tags directives
// @Produce json
// @Success 200 {object} dto.ListDirectivesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /directives [get]
func (h *directiveHandler) listDirectives(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	caller, ok := resolveCaller(c, h.roster)
	if !ok {
		return
	}

	directives, err := h.directiveService.ListVisible(c.Request.Context(), caller)
	if err != nil {
		logger.Error("Failed to list directives", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list directives"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListDirectivesResponse(directives))
}

// saveDirective godoc
// @Summary Create or edit a directive
// @Description Creates a new directive (status Pending) when directiveID is empty, otherwise edits the matching directive in place. Admin only; for any other caller this is a silent no-op.
// @Tags directives
// @Accept json
// @Produce json
// @Param directive body dto.SaveDirectiveRequest true "Directive details"
// @Success 200 {object} dto.DirectiveResponse
// @Success 204 "No Content (caller is not the admin)"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown directive or target user"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /directives [put]
func (h *directiveHandler) saveDirective(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	caller, ok := resolveCaller(c, h.roster)
	if !ok {
		return
	}

	var req dto.SaveDirectiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for save directive", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	directive, err := h.directiveService.Save(c.Request.Context(), caller, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.Status(http.StatusNoContent)
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Directive or target user not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to save directive", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to save directive"})
		}
		return
	}

	logger.Info("Directive saved", slog.String("directive_id", directive.DirectiveID))
	c.JSON(http.StatusOK, dto.ToDirectiveResponse(*directive))
}

// updateStatus godoc
// @Summary Set a directive's status
// @Description Sets the directive status. The Pending, Acknowledged, In Progress, Done progression is advisory; any listed value is accepted from any authenticated caller.
// @Tags directives
// @Accept json
// @Produce json
// @Param id path string true "Directive ID"
// @Param status body dto.UpdateDirectiveStatusRequest true "New status"
// @Success 200 {object} dto.DirectiveResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown directive"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /directives/{id}/status [post]
func (h *directiveHandler) updateStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	caller, ok := resolveCaller(c, h.roster)
	if !ok {
		return
	}
	directiveID := c.Param("id")

	var req dto.UpdateDirectiveStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for update directive status", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	directive, err := h.directiveService.UpdateStatus(c.Request.Context(), caller, directiveID, domain.DirectiveStatus(req.Status))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Directive not found"})
			return
		}
		logger.Error("Failed to update directive status", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update directive status"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDirectiveResponse(*directive))
}

// recallDirective godoc
// @Summary Recall a directive
// @Description Removes the directive. Admin only; for any other caller this is a silent no-op.
// @Tags directives
// @Produce json
// @Param id path string true "Directive ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /directives/{id} [delete]
func (h *directiveHandler) recallDirective(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	caller, ok := resolveCaller(c, h.roster)
	if !ok {
		return
	}
	directiveID := c.Param("id")

	if err := h.directiveService.Recall(c.Request.Context(), caller, directiveID); err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.Status(http.StatusNoContent)
			return
		}
		logger.Error("Failed to recall directive", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to recall directive"})
		return
	}

	logger.Info("Directive recalled", slog.String("directive_id", directiveID))
	c.Status(http.StatusNoContent)
}
