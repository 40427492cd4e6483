package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/mnjscf/team_ops_app/internal/core/ports/services"
	"github.com/mnjscf/team_ops_app/internal/dto"
	"github.com/mnjscf/team_ops_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// chatHandler handles HTTP requests for the shared team channel.
type chatHandler struct {
	chatService portssvc.ChatSvcFacade
	roster      portssvc.RosterSvcFacade
}

// registerChatRoutes registers all chat-related routes.
func registerChatRoutes(rg *gin.RouterGroup, cs portssvc.ChatSvcFacade, roster portssvc.RosterSvcFacade) {
	h := &chatHandler{chatService: cs, roster: roster}

	chat := rg.Group("/chat")
	{
		chat.GET("", h.listMessages)
		chat.POST("", h.sendMessage)
	}
}

// listMessages godoc
// @Summary List the channel history
// @Description Returns the bounded channel history in append order. Every authenticated user sees the full history.
// @Tags chat
// @Produce json
// @Success 200 {object} dto.ListChatMessagesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /chat [get]
func (h *chatHandler) listMessages(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	caller, ok := resolveCaller(c, h.roster)
	if !ok {
		return
	}

	messages, err := h.chatService.List(c.Request.Context(), caller)
	if err != nil {
		logger.Error("Failed to list chat messages", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list chat messages"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListChatMessagesResponse(messages))
}

// sendMessage godoc
// @Summary Send a channel message
// @Description Appends one message stamped with the caller's identity. Only the most recent 50 messages are retained.
// @Tags chat
// @Accept json
// @Produce json
// @Param message body dto.SendMessageRequest true "Message text"
// @Success 201 {object} dto.ChatMessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /chat [post]
func (h *chatHandler) sendMessage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	caller, ok := resolveCaller(c, h.roster)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for send message", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	message, err := h.chatService.Send(c.Request.Context(), caller, req.Text)
	if err != nil {
		logger.Error("Failed to send chat message", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to send chat message"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToChatMessageResponse(*message))
}
