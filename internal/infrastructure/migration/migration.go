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
			Name: "create_resumes_table",
			Up: func(ctx context.Context, pool *pgxpool.Pool) error {
				return createResumesTable(ctx, pool)
			},
		},
		{
			Name: "add_share_id_index",
			Up: func(ctx context.Context, pool *pgxpool.Pool) error {
				return addShareIDIndex(ctx, pool)
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

func createResumesTable(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE TABLE IF NOT EXISTS resumes (
			id SERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			template TEXT NOT NULL DEFAULT 'modern',
			personal_details JSONB,
			work_experience JSONB,
			education JSONB,
			skills JSONB,
			projects JSONB,
			certifications JSONB,
			is_public BOOLEAN NOT NULL DEFAULT FALSE,
			share_id TEXT NOT NULL UNIQUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`

	if _, err := pool.Exec(ctx, query); err != nil {
		return err
	}

	slog.Info("Successfully ensured resumes table")
	return nil
}

func addShareIDIndex(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE INDEX IF NOT EXISTS resumes_share_id_idx ON resumes (share_id);
	`

	if _, err := pool.Exec(ctx, query); err != nil {
		// Log the error but don't fail - the index may already exist
		slog.Warn("Error adding share_id index (may already exist)", "error", err)
		return nil
	}

	slog.Info("Successfully added share_id index")
	return nil
}
