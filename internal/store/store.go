// Package store opens the local SQLite database, applies embedded goose
// migrations, and hands out repositories bound to it.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/avolkov/termlock/internal/dbx"
	"github.com/avolkov/termlock/internal/store/audit"
	"github.com/avolkov/termlock/internal/store/migrations"
	"github.com/avolkov/termlock/internal/store/users"
)

type Repositories struct {
	Users users.Repository
	Audit audit.Repository
	DB    *sql.DB
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// modernc sqlite is not safe for concurrent writers on one file.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	repos := &Repositories{
		Users: users.NewSQLiteRepository(db),
		Audit: audit.NewSQLiteRepository(db),
		DB:    db,
	}
	return repos, nil
}

// UsersTx returns a users repository bound to the given handle, typically a
// transaction begun on r.DB via dbx.WithTx.
func (r *Repositories) UsersTx(tx dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(tx)
}

// Close releases the underlying database handle.
func (r *Repositories) Close() error {
	return r.DB.Close()
}
