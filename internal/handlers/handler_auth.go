package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/mnjscf/team_ops_app/internal/apperrors"
	portssvc "github.com/mnjscf/team_ops_app/internal/core/ports/services"
	"github.com/mnjscf/team_ops_app/internal/dto"
	"github.com/mnjscf/team_ops_app/internal/middleware"
	"github.com/mnjscf/team_ops_app/internal/platform/config"
	"github.com/mnjscf/team_ops_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	sessionService portssvc.SessionSvcFacade
	jwtSecret      string
	jwtDuration    time.Duration
	jwtIssuer      string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(ss portssvc.SessionSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		sessionService: ss,
		jwtSecret:      cfg.JWTSecret,
		jwtDuration:    cfg.JWTExpiryDuration,
		jwtIssuer:      cfg.JWTIssuer,
	}
}

// registerAuthRoutes sets up the public routes for authentication.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.Session, cfg)

	// Define rate limit: 5 requests per minute
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/login", limitMiddleware, h.Login) // Apply rate limiting middleware here
	}
}

// registerSessionRoutes sets up the authenticated session routes.
func registerSessionRoutes(rg *gin.RouterGroup, ss portssvc.SessionSvcFacade, roster portssvc.RosterSvcFacade) {
	h := &sessionHandler{sessionService: ss, roster: roster}

	auth := rg.Group("/auth")
	{
		auth.GET("/session", h.session)
		auth.POST("/logout", h.logout)
	}
}

// Login godoc
// @Summary Roster login
// @Description Authenticates a roster user and returns a JWT token. The session survives restarts until an explicit logout.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Roster Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.sessionService.Login(c.Request.Context(), req.UserID, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid user ID or password"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to log in", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to log in"})
		return
	}

	tsignedString, err := utils.GenerateJWT(user.UserID, h.jwtSecret, h.jwtDuration, h.jwtIssuer)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: tsignedString, User: dto.ToUserResponse(*user)})
}

// sessionHandler serves the authenticated session endpoints.
type sessionHandler struct {
	sessionService portssvc.SessionSvcFacade
	roster         portssvc.RosterSvcFacade
}

// session godoc
// @Summary Restore the persisted session
// @Description Returns the user whose session snapshot is persisted. 404 when the session is anonymous.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No persisted session"
// @Security BearerAuth
// @Router /auth/session [get]
func (h *sessionHandler) session(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := resolveCaller(c, h.roster); !ok {
		return
	}

	user, err := h.sessionService.Current(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "No active session"})
			return
		}
		logger.Error("Failed to load session", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load session"})
		return
	}

	c.JSON(http.StatusOK, dto.SessionResponse{User: dto.ToUserResponse(*user)})
}

// logout godoc
// @Summary Log out
// @Description Clears the persisted session snapshot. Logging out of an anonymous session is a no-op.
// @Tags auth
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *sessionHandler) logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := resolveCaller(c, h.roster); !ok {
		return
	}

	if err := h.sessionService.Logout(c.Request.Context()); err != nil {
		logger.Error("Failed to log out", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to log out"})
		return
	}

	logger.Info("Session cleared")
	c.Status(http.StatusNoContent)
}
