package snapshot

import (
	"log/slog"

	portsrepo "github.com/mnjscf/team_ops_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every collection repository onto one SlotStore.
func NewRepositoryProvider(store portsrepo.SlotStore, logger *slog.Logger) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		WorkLogRepo:   NewWorkLogRepository(store, logger),
		DirectiveRepo: NewDirectiveRepository(store, logger),
		ChatRepo:      NewChatRepository(store, logger),
		SessionRepo:   NewSessionRepository(store, logger),
	}
}
