package snapshot_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/mnjscf/team_ops_app/internal/apperrors"
	"github.com/mnjscf/team_ops_app/internal/core/domain"
	"github.com/mnjscf/team_ops_app/internal/repositories/database/memory"
	"github.com/mnjscf/team_ops_app/internal/repositories/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := snapshot.NewSessionRepository(memory.NewStore(), slog.Default())

	// Anonymous until a session is saved.
	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	user := domain.User{UserID: "vishakha", Name: "Vishakha", Role: domain.RoleMember, Category: domain.CategoryTelecalling}
	require.NoError(t, repo.Save(ctx, user))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, loaded.UserID)
	assert.Equal(t, user.Role, loaded.Role)

	require.NoError(t, repo.Clear(ctx))
	_, err = repo.Load(ctx)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// Clearing again stays a no-op.
	require.NoError(t, repo.Clear(ctx))
}

func TestSessionRepository_CorruptPayloadIsAnonymous(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repo := snapshot.NewSessionRepository(store, slog.Default())

	require.NoError(t, store.Save(ctx, snapshot.SlotSession, []byte("][")))

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
