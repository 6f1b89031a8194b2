package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/daycast-app/daycast/internal/client/models"
)

func TestOpen_MigratesAndWiresRepositories(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "client.db")
	ctx := context.Background()

	repos, err := Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.DB.Close() })

	require.NoError(t, repos.Metadata.Set(ctx, "client_id", []byte("cid")))
	got, err := repos.Metadata.Get(ctx, "client_id")
	require.NoError(t, err)
	require.Equal(t, []byte("cid"), got)

	day := &models.Day{Date: "2026-01-15"}
	require.NoError(t, repos.Days.Put(ctx, day, time.Now()))
	cached, err := repos.Days.Get(ctx, "2026-01-15")
	require.NoError(t, err)
	require.Equal(t, "2026-01-15", cached.Date)
}

func TestOpen_IsIdempotent(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "client.db")
	ctx := context.Background()

	repos, err := Open(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, repos.DB.Close())

	// A second open against the same file re-runs migrations as a no-op.
	repos, err = Open(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, repos.DB.Close())
}
