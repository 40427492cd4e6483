package snapshot

import (
	"context"
	"log/slog"

	"github.com/mnjscf/team_ops_app/internal/core/domain"
	portsrepo "github.com/mnjscf/team_ops_app/internal/core/ports/repositories"
)

// SlotChat is the snapshot slot name for the chat collection.
const SlotChat = "chat"

// ChatRepository persists the shared channel as one snapshot slot in append
// order, truncated to domain.ChatHistoryLimit after every upsert.
type ChatRepository struct {
	store  portsrepo.SlotStore
	logger *slog.Logger
}

// NewChatRepository creates a ChatRepository backed by the given store.
func NewChatRepository(store portsrepo.SlotStore, logger *slog.Logger) *ChatRepository {
	return &ChatRepository{store: store, logger: logger}
}

var _ portsrepo.ChatRepositoryFacade = (*ChatRepository)(nil)

// LoadAll returns the bounded history; missing or corrupt snapshots yield an
// empty collection.
func (r *ChatRepository) LoadAll(ctx context.Context) ([]domain.ChatMessage, error) {
	return loadAll[domain.ChatMessage](ctx, r.store, SlotChat, r.logger)
}

// Upsert appends (or replaces by ID), drops the oldest messages beyond the
// history limit, then rewrites the snapshot.
func (r *ChatRepository) Upsert(ctx context.Context, message domain.ChatMessage) error {
	messages, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}
	messages = upsertBack(messages, message)
	if len(messages) > domain.ChatHistoryLimit {
		messages = messages[len(messages)-domain.ChatHistoryLimit:]
	}
	return persist(ctx, r.store, SlotChat, messages)
}
