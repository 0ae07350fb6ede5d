package storage

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := sql.Open("sqlite", "file:localstore?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE local_store (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`)
	require.NoError(t, err)
	return NewSQLiteStore(db)
}

func TestSQLiteStore_GetAbsentKey_ReturnsEmpty(t *testing.T) {
	s := setupStore(t)

	v, err := s.Get(context.Background(), KeyToken)
	require.NoError(t, err)
	require.Empty(t, v)
}

func TestSQLiteStore_SetGet_RoundTrip(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyToken, "T1"))

	v, err := s.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Equal(t, "T1", v)
}

func TestSQLiteStore_Set_OverwritesExistingValue(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyUserName, "Ann"))
	require.NoError(t, s.Set(ctx, KeyUserName, "Bea"))

	v, err := s.Get(ctx, KeyUserName)
	require.NoError(t, err)
	require.Equal(t, "Bea", v)
}

func TestSQLiteStore_Delete(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyToken, "T1"))
	require.NoError(t, s.Delete(ctx, KeyToken))

	v, err := s.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Empty(t, v)

	// deleting an absent key is a no-op
	require.NoError(t, s.Delete(ctx, KeyToken))
}

func TestSQLiteStore_Clear(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyToken, "T1"))
	require.NoError(t, s.Set(ctx, KeyUserEmail, "a@b.com"))
	require.NoError(t, s.Clear(ctx))

	for _, k := range []string{KeyToken, KeyUserEmail} {
		v, err := s.Get(ctx, k)
		require.NoError(t, err)
		require.Empty(t, v)
	}
}

func TestInitDatabase_AppliesMigrations(t *testing.T) {
	dsn := t.TempDir() + "/account.db"

	db, err := InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := NewSQLiteStore(db)
	require.NoError(t, s.Set(context.Background(), KeyToken, "T1"))

	v, err := s.Get(context.Background(), KeyToken)
	require.NoError(t, err)
	require.Equal(t, "T1", v)
}
