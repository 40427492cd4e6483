package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mnjscf/team_ops_app/internal/apperrors"
	"github.com/mnjscf/team_ops_app/internal/core/domain"
	portsrepo "github.com/mnjscf/team_ops_app/internal/core/ports/repositories"
	portssvc "github.com/mnjscf/team_ops_app/internal/core/ports/services"
)

// sessionService implements the two-state session machine. The persisted
// session slot is the authority: a restart reads it back and the process is
// Authenticated again without re-prompting.
type sessionService struct {
	BaseService
	roster      portssvc.RosterSvcFacade
	sessionRepo portsrepo.SessionRepositoryFacade
}

// NewSessionService creates a session service over the roster and the
// persisted session slot.
func NewSessionService(roster portssvc.RosterSvcFacade, sessionRepo portsrepo.SessionRepositoryFacade) portssvc.SessionSvcFacade {
	return &sessionService{roster: roster, sessionRepo: sessionRepo}
}

var _ portssvc.SessionSvcFacade = (*sessionService)(nil)

// Login authenticates against the roster and persists the session snapshot.
func (s *sessionService) Login(ctx context.Context, userID, password string) (*domain.User, error) {
	user, err := s.roster.FindByCredentials(ctx, userID, password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			s.LogWarn(ctx, "Login rejected", slog.String("attempted_user_id", userID))
			return nil, err
		}
		return nil, fmt.Errorf("failed to resolve credentials: %w", err)
	}

	if err := s.sessionRepo.Save(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	s.LogInfo(ctx, "Session established", slog.String("session_user_id", user.UserID))
	return user, nil
}

// Current returns the persisted session user, or apperrors.ErrNotFound while
// Anonymous.
func (s *sessionService) Current(ctx context.Context) (*domain.User, error) {
	return s.sessionRepo.Load(ctx)
}

// Logout clears the persisted session snapshot.
func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.sessionRepo.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	s.LogInfo(ctx, "Session terminated")
	return nil
}
