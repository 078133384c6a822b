package presentations

import (
	"context"

	"github.com/dmitrijs2005/deckkeeper/internal/server/models"
)

// ListOptions narrows a listing.
type ListOptions struct {
	Ascending      bool
	Limit          int
	IncludeContent bool
}

type Repository interface {
	List(ctx context.Context, opts ListOptions) ([]*models.Presentation, error)
	Get(ctx context.Context, id string) (*models.Presentation, error)
	Insert(ctx context.Context, p *models.Presentation) (*models.Presentation, error)
	Update(ctx context.Context, id string, patch *models.Patch) (*models.Presentation, error)
	Delete(ctx context.Context, id string) ([]string, error)
}
