// Package summaries caches the last successful presentation listing so the
// client can still show it while the store is unreachable.
package summaries

import (
	"context"
	"time"

	"github.com/dmitrijs2005/deckkeeper/internal/client/models"
)

type Repository interface {
	// Replace swaps the whole cached listing for rows, in order.
	Replace(ctx context.Context, rows []models.Summary, refreshedAt time.Time) error
	List(ctx context.Context) ([]models.Summary, error)
	// RefreshedAt is the time of the last Replace; zero when never refreshed.
	RefreshedAt(ctx context.Context) (time.Time, error)
}
