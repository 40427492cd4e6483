package services

import (
	"context"
	"strings"

	"github.com/mnjscf/team_ops_app/internal/apperrors"
	"github.com/mnjscf/team_ops_app/internal/core/domain"
	portssvc "github.com/mnjscf/team_ops_app/internal/core/ports/services"
)

// rosterService is the identity directory over the static team roster. The
// roster is handed in at construction and never mutated.
type rosterService struct {
	BaseService
	users []domain.User
}

// NewRosterService creates a roster service over the given fixed user set.
func NewRosterService(users []domain.User) portssvc.RosterSvcFacade {
	roster := make([]domain.User, len(users))
	copy(roster, users)
	return &rosterService{users: roster}
}

var _ portssvc.RosterSvcFacade = (*rosterService)(nil)

// FindByID resolves a user by exact ID.
func (s *rosterService) FindByID(ctx context.Context, userID string) (*domain.User, error) {
	for _, u := range s.users {
		if u.UserID == userID {
			user := u
			return &user, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// FindByCredentials resolves a user by case-insensitive ID and exact password.
// The comparison is plain string equality against the roster; the single
// generic error never reveals which half of the pair was wrong.
func (s *rosterService) FindByCredentials(ctx context.Context, userID, password string) (*domain.User, error) {
	for _, u := range s.users {
		if strings.EqualFold(u.UserID, userID) && u.Password == password {
			user := u
			return &user, nil
		}
	}
	return nil, apperrors.ErrInvalidCredentials
}

// ListUsers returns a copy of the full roster.
func (s *rosterService) ListUsers(ctx context.Context) []domain.User {
	users := make([]domain.User, len(s.users))
	copy(users, s.users)
	return users
}
