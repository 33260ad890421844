package repository_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"shortlink/internal/repository"
	"shortlink/internal/repository/storetest"
)

func startPostgres(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	tc.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("shortlink"),
		tcpostgres.WithUsername("shortlink"),
		tcpostgres.WithPassword("shortlink"),
		tc.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, repository.Migrate(dsn, logger))
	// Applying twice must be a no-op.
	require.NoError(t, repository.Migrate(dsn, logger))
	return dsn
}

func TestLinkRepository(t *testing.T) {
	dsn := startPostgres(t)

	storetest.Run(t, func(t *testing.T) storetest.Store {
		ctx := context.Background()
		repo, err := repository.NewLinkRepository(ctx, dsn, 10)
		require.NoError(t, err)
		truncate(t, dsn)
		t.Cleanup(func() { _ = repo.Close() })
		return repo
	})
}

func truncate(t *testing.T, dsn string) {
	t.Helper()
	ctx := context.Background()
	conn, err := pgx.Connect(ctx, dsn)
	require.NoError(t, err)
	defer conn.Close(ctx)

	_, err = conn.Exec(ctx, `TRUNCATE links, clicks RESTART IDENTITY`)
	require.NoError(t, err)
}

func TestLinkRepository_PoolStats(t *testing.T) {
	dsn := startPostgres(t)

	repo, err := repository.NewLinkRepository(context.Background(), dsn, 4)
	require.NoError(t, err)
	defer repo.Close()

	stats := repo.PoolStats()
	assert.Equal(t, 4, stats.Max)
	assert.GreaterOrEqual(t, stats.Total, 1)
	assert.Zero(t, stats.Acquired)
}
