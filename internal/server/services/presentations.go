// Package services holds the store's business rules: the row policy, the
// listing cache and the transactions around writes.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/deckkeeper/internal/common"
	"github.com/dmitrijs2005/deckkeeper/internal/dbx"
	"github.com/dmitrijs2005/deckkeeper/internal/logging"
	"github.com/dmitrijs2005/deckkeeper/internal/server/apierr"
	"github.com/dmitrijs2005/deckkeeper/internal/server/auth"
	"github.com/dmitrijs2005/deckkeeper/internal/server/models"
	"github.com/dmitrijs2005/deckkeeper/internal/server/repositories/presentations"
	"github.com/dmitrijs2005/deckkeeper/internal/server/repositories/repomanager"
	"github.com/patrickmn/go-cache"
)

// Operation is a kind of table access checked by the row policy.
type Operation string

const (
	OpSelect Operation = "select"
	OpInsert Operation = "insert"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// Policy decides which role may perform which operation.
type Policy struct {
	AllowAnonWrites bool
}

// Check returns a 42501 error when role may not perform op.
func (p Policy) Check(role string, op Operation) error {
	if role == auth.RoleService || op == OpSelect {
		return nil
	}
	if role == auth.RoleAnon && p.AllowAnonWrites {
		return nil
	}
	return apierr.PermissionDenied(common.PresentationsTable)
}

type PresentationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	policy      Policy
	listings    *cache.Cache
	logger      logging.Logger
}

func NewPresentationService(db *sql.DB, rm repomanager.RepositoryManager, policy Policy, listTTL time.Duration, logger logging.Logger) *PresentationService {
	return &PresentationService{
		db:          db,
		repomanager: rm,
		policy:      policy,
		listings:    cache.New(listTTL, 2*listTTL),
		logger:      logger.With("module", "presentations"),
	}
}

func listKey(opts presentations.ListOptions) string {
	return fmt.Sprintf("list:%t:%d:%t", opts.Ascending, opts.Limit, opts.IncludeContent)
}

// List returns the rows matching opts, from cache when possible.
func (s *PresentationService) List(ctx context.Context, role string, opts presentations.ListOptions) ([]*models.Presentation, error) {
	if err := s.policy.Check(role, OpSelect); err != nil {
		return nil, err
	}

	key := listKey(opts)
	if v, ok := s.listings.Get(key); ok {
		return v.([]*models.Presentation), nil
	}

	rows, err := s.repomanager.Presentations(s.db).List(ctx, opts)
	if err != nil {
		return nil, err
	}
	s.listings.SetDefault(key, rows)
	return rows, nil
}

func (s *PresentationService) Get(ctx context.Context, role, id string) (*models.Presentation, error) {
	if err := s.policy.Check(role, OpSelect); err != nil {
		return nil, err
	}
	return s.repomanager.Presentations(s.db).Get(ctx, id)
}

func (s *PresentationService) Create(ctx context.Context, role string, patch *models.Patch) (*models.Presentation, error) {
	if err := s.policy.Check(role, OpInsert); err != nil {
		s.logger.Warn(ctx, "insert denied", "role", role)
		return nil, err
	}

	row := &models.Presentation{}
	patch.Apply(row)

	created, err := s.repomanager.Presentations(s.db).Insert(ctx, row)
	if err != nil {
		return nil, err
	}
	s.listings.Flush()
	s.logger.Info(ctx, "presentation created", "id", created.ID, "title", created.Title)
	return created, nil
}

// Update applies patch to the row and returns the result. An unknown id is
// common.ErrNotFound.
func (s *PresentationService) Update(ctx context.Context, role, id string, patch *models.Patch) (*models.Presentation, error) {
	if err := s.policy.Check(role, OpUpdate); err != nil {
		s.logger.Warn(ctx, "update denied", "role", role, "id", id)
		return nil, err
	}

	var updated *models.Presentation
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		updated, err = s.repomanager.Presentations(tx).Update(ctx, id, patch)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.listings.Flush()
	s.logger.Info(ctx, "presentation updated", "id", id)
	return updated, nil
}

// Delete removes the row and returns the ids removed, possibly none.
func (s *PresentationService) Delete(ctx context.Context, role, id string) ([]string, error) {
	if err := s.policy.Check(role, OpDelete); err != nil {
		s.logger.Warn(ctx, "delete denied", "role", role, "id", id)
		return nil, err
	}

	var deleted []string
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		deleted, err = s.repomanager.Presentations(tx).Delete(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	if len(deleted) > 0 {
		s.listings.Flush()
		s.logger.Info(ctx, "presentation deleted", "id", id)
	}
	return deleted, nil
}
