package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/deckkeeper/internal/client/migrations"
	"github.com/dmitrijs2005/deckkeeper/internal/client/repositories/summaries"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// Repositories bundles the local cache repositories.
type Repositories struct {
	DB        *sql.DB
	Summaries summaries.Repository
}

// gooseUpContext is a test seam.
var gooseUpContext = goose.UpContext

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return gooseUpContext(ctx, db, ".")
}

// InitDatabase opens the SQLite listing cache at dsn and migrates it.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("cache migrations: %w", err)
	}

	return &Repositories{DB: db, Summaries: summaries.NewSQLiteRepository(db)}, nil
}
