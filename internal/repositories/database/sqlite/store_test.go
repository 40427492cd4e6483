package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mnjscf/team_ops_app/internal/repositories/database/sqlite"
	"github.com/mnjscf/team_ops_app/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	ctx := context.Background()

	db, err := database.NewSqliteDB(ctx, filepath.Join(t.TempDir(), "snapshots.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.CloseSqliteDB(db) })

	_, err = db.ExecContext(ctx, `CREATE TABLE snapshots (slot TEXT PRIMARY KEY, payload BLOB NOT NULL)`)
	require.NoError(t, err)

	return sqlite.NewStore(db)
}

func TestStore_LoadMissingSlot(t *testing.T) {
	store := newTestStore(t)

	payload, err := store.Load(context.Background(), "worklogs")

	require.NoError(t, err)
	assert.Nil(t, payload)
}

func TestStore_SaveOverwritesAndLoads(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Save(ctx, "worklogs", []byte(`[{"entryID":"e1"}]`)))
	require.NoError(t, store.Save(ctx, "chat", []byte(`[]`)))

	payload, err := store.Load(ctx, "worklogs")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"entryID":"e1"}]`), payload)

	// A rewrite fully replaces the previous payload.
	require.NoError(t, store.Save(ctx, "worklogs", []byte(`[]`)))
	payload, err = store.Load(ctx, "worklogs")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), payload)

	// Other slots are untouched.
	payload, err = store.Load(ctx, "chat")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), payload)
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Save(ctx, "session", []byte(`{"userID":"me"}`)))
	require.NoError(t, store.Clear(ctx, "session"))

	payload, err := store.Load(ctx, "session")
	require.NoError(t, err)
	assert.Nil(t, payload)

	// Clearing an absent slot is a no-op.
	require.NoError(t, store.Clear(ctx, "session"))
}
