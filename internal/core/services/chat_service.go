package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mnjscf/team_ops_app/internal/core/domain"
	portsrepo "github.com/mnjscf/team_ops_app/internal/core/ports/repositories"
	portssvc "github.com/mnjscf/team_ops_app/internal/core/ports/services"
)

// chatService owns the shared team channel.
type chatService struct {
	BaseService
	chatRepo portsrepo.ChatRepositoryFacade
}

// NewChatService creates a chat service.
func NewChatService(chatRepo portsrepo.ChatRepositoryFacade) portssvc.ChatSvcFacade {
	return &chatService{chatRepo: chatRepo}
}

var _ portssvc.ChatSvcFacade = (*chatService)(nil)

// List returns the bounded channel history in append order. Chat is
// unfiltered: every authenticated user sees everything.
func (s *chatService) List(ctx context.Context, caller domain.User) ([]domain.ChatMessage, error) {
	messages, err := s.chatRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	return domain.VisibleChatMessages(messages, caller), nil
}

// Send appends one message stamped with the caller's identity. The repository
// enforces the history bound.
func (s *chatService) Send(ctx context.Context, caller domain.User, text string) (*domain.ChatMessage, error) {
	message := domain.ChatMessage{
		MessageID: uuid.NewString(),
		UserID:    caller.UserID,
		UserName:  caller.Name,
		Text:      text,
		Timestamp: time.Now().UTC(),
	}
	if err := s.chatRepo.Upsert(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to send chat message: %w", err)
	}
	s.LogInfo(ctx, "Chat message sent",
		slog.String("message_id", message.MessageID),
		slog.String("sender_id", caller.UserID))
	return &message, nil
}
