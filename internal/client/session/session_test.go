package session

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/daycast-app/daycast/internal/client/repositories/metadata"

	_ "modernc.org/sqlite"
)

func setupRepo(t *testing.T) metadata.Repository {
	t.Helper()
	db, err := sql.Open("sqlite", "file:sessrepo?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS metadata (key TEXT PRIMARY KEY, value BLOB NOT NULL)`)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM metadata`)
	require.NoError(t, err)
	return metadata.NewSQLiteRepository(db)
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
		"exp": exp.Unix(),
	})
	s, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestRestore_GeneratesAndPersistsClientID(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	s1, err := Restore(ctx, repo)
	require.NoError(t, err)
	require.NotEmpty(t, s1.ClientID())
	require.False(t, s1.Authenticated())

	// Second restore against the same store keeps the same id.
	s2, err := Restore(ctx, repo)
	require.NoError(t, err)
	require.Equal(t, s1.ClientID(), s2.ClientID())
}

func TestEstablish_PersistsAcrossRestore(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	s, err := Restore(ctx, repo)
	require.NoError(t, err)
	require.NoError(t, s.Establish(ctx, "opaque-token", "alice"))

	restored, err := Restore(ctx, repo)
	require.NoError(t, err)
	require.Equal(t, "opaque-token", restored.Token())
	require.Equal(t, "alice", restored.Username())
	require.True(t, restored.Authenticated())
}

func TestTeardown_KeepsClientID(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	s, err := Restore(ctx, repo)
	require.NoError(t, err)
	id := s.ClientID()
	require.NoError(t, s.Establish(ctx, "tok", "alice"))

	require.NoError(t, s.Teardown(ctx))
	require.False(t, s.Authenticated())
	require.Empty(t, s.Token())
	require.Empty(t, s.Username())
	require.Equal(t, id, s.ClientID())

	restored, err := Restore(ctx, repo)
	require.NoError(t, err)
	require.Equal(t, id, restored.ClientID())
	require.Empty(t, restored.Token())
}

func TestAuthenticated_ExpiredJWTCountsAsAbsent(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	s, err := Restore(ctx, repo)
	require.NoError(t, err)

	fixed := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	orig := now
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = orig })

	require.NoError(t, s.Establish(ctx, signedToken(t, fixed.Add(time.Hour)), "alice"))
	require.True(t, s.Authenticated())

	require.NoError(t, s.Establish(ctx, signedToken(t, fixed.Add(-time.Hour)), "alice"))
	require.False(t, s.Authenticated())
}

func TestAuthenticated_OpaqueTokenNeverExpires(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	s, err := Restore(ctx, repo)
	require.NoError(t, err)
	require.NoError(t, s.Establish(ctx, "not-a-jwt", "alice"))
	require.True(t, s.Authenticated())
}
