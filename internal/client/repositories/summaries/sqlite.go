package summaries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/deckkeeper/internal/client/models"
	"github.com/dmitrijs2005/deckkeeper/internal/dbx"
)

const refreshedAtKey = "refreshed_at"

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Replace(ctx context.Context, rows []models.Summary, refreshedAt time.Time) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM summaries`); err != nil {
			return fmt.Errorf("failed to clear summaries: %w", err)
		}

		for i, s := range rows {
			var created any
			if s.CreatedAt != nil {
				created = s.CreatedAt.UTC().Format(time.RFC3339Nano)
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO summaries (id, position, created_at, title, author, date, slides, active)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				s.ID, i, created, s.Title, s.Author, s.Date, s.Slides, s.Active)
			if err != nil {
				return fmt.Errorf("failed to insert summary %s: %w", s.ID, err)
			}
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO cache_state (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			refreshedAtKey, refreshedAt.UTC().Format(time.RFC3339Nano))
		if err != nil {
			return fmt.Errorf("failed to store refresh time: %w", err)
		}
		return nil
	})
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.Summary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, created_at, title, author, date, slides, active
		FROM summaries ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to list summaries: %w", err)
	}
	defer rows.Close()

	var result []models.Summary
	for rows.Next() {
		var (
			s       models.Summary
			created sql.NullString
		)
		if err := rows.Scan(&s.ID, &created, &s.Title, &s.Author, &s.Date, &s.Slides, &s.Active); err != nil {
			return nil, fmt.Errorf("failed to scan summary: %w", err)
		}
		if created.Valid {
			if ts, err := time.Parse(time.RFC3339Nano, created.String); err == nil {
				s.CreatedAt = &ts
			}
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate summaries: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) RefreshedAt(ctx context.Context) (time.Time, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM cache_state WHERE key = ?`, refreshedAtKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read refresh time: %w", err)
	}
	return time.Parse(time.RFC3339Nano, value)
}
