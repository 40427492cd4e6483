package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mnjscf/team_ops_app/internal/apperrors"
	"github.com/mnjscf/team_ops_app/internal/core/domain"
	portsrepo "github.com/mnjscf/team_ops_app/internal/core/ports/repositories"
)

// SlotSession is the snapshot slot name for the current session record.
const SlotSession = "session"

// SessionRepository persists the single current-session user so a restart
// restores the Authenticated state.
type SessionRepository struct {
	store  portsrepo.SlotStore
	logger *slog.Logger
}

// NewSessionRepository creates a SessionRepository backed by the given store.
func NewSessionRepository(store portsrepo.SlotStore, logger *slog.Logger) *SessionRepository {
	return &SessionRepository{store: store, logger: logger}
}

var _ portsrepo.SessionRepositoryFacade = (*SessionRepository)(nil)

// Load returns the persisted session user. A missing slot means Anonymous; a
// corrupt payload is logged, discarded and likewise reported as not found.
func (r *SessionRepository) Load(ctx context.Context) (*domain.User, error) {
	payload, err := r.store.Load(ctx, SlotSession)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s snapshot: %w", SlotSession, err)
	}
	if len(payload) == 0 {
		return nil, apperrors.ErrNotFound
	}
	var user domain.User
	if err := json.Unmarshal(payload, &user); err != nil {
		r.logger.Warn("Discarding unparsable session snapshot",
			slog.String("slot", SlotSession),
			slog.String("error", err.Error()))
		return nil, apperrors.ErrNotFound
	}
	return &user, nil
}

// Save replaces the persisted session user.
func (r *SessionRepository) Save(ctx context.Context, user domain.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize %s snapshot: %w", SlotSession, err)
	}
	if err := r.store.Save(ctx, SlotSession, payload); err != nil {
		return fmt.Errorf("failed to persist %s snapshot: %w", SlotSession, err)
	}
	return nil
}

// Clear removes the persisted session. Clearing an absent session is a no-op.
func (r *SessionRepository) Clear(ctx context.Context) error {
	if err := r.store.Clear(ctx, SlotSession); err != nil {
		return fmt.Errorf("failed to clear %s snapshot: %w", SlotSession, err)
	}
	return nil
}
