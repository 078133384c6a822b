// Package presentations provides the PostgreSQL-backed repository of the
// presentations table.
package presentations

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrijs2005/deckkeeper/internal/common"
	"github.com/dmitrijs2005/deckkeeper/internal/dbx"
	"github.com/dmitrijs2005/deckkeeper/internal/server/apierr"
	"github.com/dmitrijs2005/deckkeeper/internal/server/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes translated into PostgREST ones.
const (
	pgUndefinedTable  = "42P01"
	pgUndefinedColumn = "42703"
	pgInvalidText     = "22P02"
)

const (
	summaryColumns = `id, created_at, COALESCE(title, ''), COALESCE(author, ''), COALESCE(date, ''), COALESCE(slides, 0), active`
	fullColumns    = summaryColumns + `, content, meta`
)

var columnInMessage = regexp.MustCompile(`column "([^"]+)"`)

// newID is a test seam.
var newID = uuid.NewString

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// mapError turns driver errors into the store's error vocabulary.
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUndefinedTable:
			return apierr.TableMissing(common.PresentationsTable)
		case pgUndefinedColumn:
			col := pgErr.ColumnName
			if m := columnInMessage.FindStringSubmatch(pgErr.Message); col == "" && m != nil {
				col = m[1]
			}
			return apierr.ColumnMissing(col, common.PresentationsTable)
		case pgInvalidText:
			return apierr.BadRequest(apierr.CodeInvalidText, pgErr.Message)
		}
	}
	return fmt.Errorf("db error: %w", err)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRow(s scanner, withContent bool) (*models.Presentation, error) {
	var p models.Presentation
	dest := []any{&p.ID, &p.CreatedAt, &p.Title, &p.Author, &p.Date, &p.Slides, &p.Active}

	var content, meta []byte
	if withContent {
		dest = append(dest, &content, &meta)
	}
	if err := s.Scan(dest...); err != nil {
		return nil, err
	}
	if len(content) > 0 {
		p.Content = json.RawMessage(content)
	}
	if len(meta) > 0 {
		p.Meta = json.RawMessage(meta)
	}
	return &p, nil
}

func jsonArg(b json.RawMessage) any {
	if len(b) == 0 {
		return nil
	}
	return []byte(b)
}

func validID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apierr.BadRequest(apierr.CodeInvalidText, fmt.Sprintf("invalid input syntax for type uuid: %q", id))
	}
	return nil
}

// List returns rows ordered by creation time. Content and meta are only
// read when opts.IncludeContent is set.
func (r *PostgresRepository) List(ctx context.Context, opts ListOptions) ([]*models.Presentation, error) {
	cols := summaryColumns
	if opts.IncludeContent {
		cols = fullColumns
	}
	order := "DESC"
	if opts.Ascending {
		order = "ASC"
	}

	query := fmt.Sprintf(`SELECT %s FROM presentations ORDER BY created_at %s`, cols, order)
	var args []any
	if opts.Limit > 0 {
		query += ` LIMIT $1`
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	result := make([]*models.Presentation, 0)
	for rows.Next() {
		p, err := scanRow(rows, opts.IncludeContent)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return result, nil
}

// Get returns the full row, or common.ErrNotFound.
func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Presentation, error) {
	if err := validID(id); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM presentations WHERE id = $1`, fullColumns)
	p, err := scanRow(r.db.QueryRowContext(ctx, query, id), true)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("presentation %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, mapError(err)
	}
	return p, nil
}

// Insert stores p under a fresh id and returns the stored row.
func (r *PostgresRepository) Insert(ctx context.Context, p *models.Presentation) (*models.Presentation, error) {
	out := *p
	out.ID = newID()

	query := `INSERT INTO presentations (id, title, author, date, slides, content, meta, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		out.ID, out.Title, out.Author, out.Date, out.Slides, jsonArg(out.Content), jsonArg(out.Meta), out.Active,
	).Scan(&out.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &out, nil
}

// Update writes the non-nil fields of patch and returns the updated row.
// An unknown id is common.ErrNotFound.
func (r *PostgresRepository) Update(ctx context.Context, id string, patch *models.Patch) (*models.Presentation, error) {
	if err := validID(id); err != nil {
		return nil, err
	}
	if patch.Empty() {
		return r.Get(ctx, id)
	}

	var (
		sets []string
		args []any
	)
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if patch.Title != nil {
		set("title", *patch.Title)
	}
	if patch.Author != nil {
		set("author", *patch.Author)
	}
	if patch.Date != nil {
		set("date", *patch.Date)
	}
	if patch.Slides != nil {
		set("slides", *patch.Slides)
	}
	if patch.Content != nil {
		set("content", jsonArg(patch.Content))
	}
	if patch.Meta != nil {
		set("meta", jsonArg(patch.Meta))
	}
	if patch.Active != nil {
		set("active", *patch.Active)
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE presentations SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), fullColumns)

	p, err := scanRow(r.db.QueryRowContext(ctx, query, args...), true)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("presentation %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, mapError(err)
	}
	return p, nil
}

// Delete removes the row and returns the ids actually deleted.
func (r *PostgresRepository) Delete(ctx context.Context, id string) ([]string, error) {
	if err := validID(id); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `DELETE FROM presentations WHERE id = $1 RETURNING id`, id)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	deleted := make([]string, 0, 1)
	for rows.Next() {
		var got string
		if err := rows.Scan(&got); err != nil {
			return nil, err
		}
		deleted = append(deleted, got)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return deleted, nil
}
