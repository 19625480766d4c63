package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
)

// RunMigrations executes all necessary database migrations on startup
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	slog.Info("Starting database migrations")

	migrations := []Migration{
		{
			Name: "create_snapshot_revisions",
			Up: func(ctx context.Context, pool *pgxpool.Pool) error {
				return createSnapshotRevisions(ctx, pool)
			},
		},
		{
			Name: "index_snapshot_revisions_kind",
			Up: func(ctx context.Context, pool *pgxpool.Pool) error {
				return indexSnapshotRevisionsKind(ctx, pool)
			},
		},
	}

	for _, m := range migrations {
		if err := m.Up(ctx, pool); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		slog.Info("Migration completed", "name", m.Name)
	}

	slog.Info("All migrations completed successfully")
	return nil
}

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

// createSnapshotRevisions creates the revision history table if it
// doesn't exist
func createSnapshotRevisions(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE TABLE IF NOT EXISTS snapshot_revisions (
			id UUID PRIMARY KEY,
			kind TEXT NOT NULL,
			payload JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`
	_, err := pool.Exec(ctx, query)
	return err
}

// indexSnapshotRevisionsKind speeds up latest-revision lookups per
// kind
func indexSnapshotRevisionsKind(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE INDEX IF NOT EXISTS idx_snapshot_revisions_kind_created
		ON snapshot_revisions (kind, created_at DESC)`
	_, err := pool.Exec(ctx, query)
	return err
}
