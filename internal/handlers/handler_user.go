package handlers

import (
	"net/http"

	portssvc "github.com/mnjscf/team_ops_app/internal/core/ports/services"
	"github.com/mnjscf/team_ops_app/internal/dto"
	"github.com/mnjscf/team_ops_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// userHandler serves the fixed roster. There are no create, update or delete
// operations; the roster is immutable.
type userHandler struct {
	roster portssvc.RosterSvcFacade
}

// registerUserRoutes registers all user-related routes.
func registerUserRoutes(rg *gin.RouterGroup, roster portssvc.RosterSvcFacade) {
	h := &userHandler{roster: roster}

	users := rg.Group("/users")
	{
		users.GET("", h.listUsers)
	}
}

// listUsers godoc
// @Summary List the team roster
// @Description Returns every roster user, without credentials. Available to all authenticated users so chat and directives can render names.
// @Tags users
// @Produce json
// @Success 200 {object} dto.ListUsersResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /users [get]
func (h *userHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := resolveCaller(c, h.roster); !ok {
		return
	}

	users := h.roster.ListUsers(c.Request.Context())
	logger.Info("Roster listed", "count", len(users))
	c.JSON(http.StatusOK, dto.ToListUsersResponse(users))
}
