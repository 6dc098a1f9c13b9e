// Package storefront wires the local persistence layer: it opens the SQLite
// database backing the record store, applies embedded goose migrations, and
// seeds the default menu on first run.
package storefront

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"snackdash/internal/dbx"
	"snackdash/internal/logging"
	"snackdash/internal/menu"
	"snackdash/internal/store"
	"snackdash/internal/storefront/migrations"
)

// RunMigrations applies the embedded migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the SQLite database at dsn, migrates it, and seeds the
// menu inside a single transaction. The returned handle backs every record
// store the storefront creates.
func InitDatabase(ctx context.Context, dsn string, log logging.Logger) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	err = dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return menu.NewCatalog(store.NewSQLiteStore(tx), log).Seed(ctx)
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to seed menu: %w", err)
	}

	return db, nil
}
