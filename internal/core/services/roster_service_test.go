package services_test

import (
	"context"
	"testing"

	"github.com/mnjscf/team_ops_app/internal/apperrors"
	"github.com/mnjscf/team_ops_app/internal/core/domain"
	"github.com/mnjscf/team_ops_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRosterService_FindByID(t *testing.T) {
	ctx := context.Background()
	svc := services.NewRosterService(domain.TeamRoster())

	user, err := svc.FindByID(ctx, "dishant")
	require.NoError(t, err)
	assert.Equal(t, "Dishant", user.Name)
	assert.Equal(t, domain.CategoryBlogs, user.Category)

	// Unlike credential lookup, ID lookup is exact.
	_, err = svc.FindByID(ctx, "DISHANT")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = svc.FindByID(ctx, "ghost")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRosterService_FindByCredentials(t *testing.T) {
	ctx := context.Background()
	svc := services.NewRosterService(domain.TeamRoster())

	user, err := svc.FindByCredentials(ctx, "Akash", "akash123")
	require.NoError(t, err)
	assert.Equal(t, "akash", user.UserID)

	// The password half of the pair stays case-sensitive.
	_, err = svc.FindByCredentials(ctx, "akash", "AKASH123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRosterService_ListUsersReturnsCopy(t *testing.T) {
	ctx := context.Background()
	svc := services.NewRosterService(domain.TeamRoster())

	users := svc.ListUsers(ctx)
	require.Len(t, users, len(domain.TeamRoster()))

	users[0].Name = "Tampered"
	again := svc.ListUsers(ctx)
	assert.NotEqual(t, "Tampered", again[0].Name)
}
