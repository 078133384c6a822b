package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/deckkeeper/internal/dbx"
	"github.com/dmitrijs2005/deckkeeper/internal/server/repositories/presentations"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Presentations(db dbx.DBTX) presentations.Repository
}
