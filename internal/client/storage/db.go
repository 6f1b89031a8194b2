// Package storage opens the local sqlite database and wires the client
// repositories on top of it.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/daycast-app/daycast/internal/client/repositories/days"
	"github.com/daycast-app/daycast/internal/client/repositories/metadata"
	"github.com/daycast-app/daycast/internal/client/storage/migrations"

	_ "modernc.org/sqlite"
)

// Repositories bundles the local stores backed by one database handle.
type Repositories struct {
	DB       *sql.DB
	Metadata metadata.Repository
	Days     days.Repository
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if necessary) the client database at dsn, migrates
// it, and returns the repositories bound to it. The caller owns closing
// Repositories.DB.
func Open(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening client database: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrating client database: %w", err)
	}

	return &Repositories{
		DB:       db,
		Metadata: metadata.NewSQLiteRepository(db),
		Days:     days.NewSQLiteRepository(db),
	}, nil
}
