package services

import (
	"context"

	"github.com/mnjscf/team_ops_app/internal/core/domain"
)

// ChatSvcFacade manages the shared team channel. Every authenticated user
// sees the full bounded history; messages are never edited or deleted.
type ChatSvcFacade interface {
	// List returns the channel history in append order.
	List(ctx context.Context, caller domain.User) ([]domain.ChatMessage, error)

	// Send appends one message stamped with the caller's identity.
	Send(ctx context.Context, caller domain.User, text string) (*domain.ChatMessage, error)
}
