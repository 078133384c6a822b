// Package client talks to the remote presentations store.
//
// The store speaks the PostgREST dialect: the hosted database service and
// the self-hosted server in this repository both serve it. Failures are
// reported with the sentinel taxonomy from internal/common (match with
// errors.Is); store responses that fit no sentinel surface as *RemoteError.
//
// The client keeps no session state. Endpoint and credential are fixed at
// construction.
package client

import (
	"context"

	"github.com/dmitrijs2005/deckkeeper/internal/client/models"
)

type Client interface {
	List(ctx context.Context) ([]models.Summary, error)
	Fetch(ctx context.Context, id string) (*models.Record, error)
	Insert(ctx context.Context, rec *models.Record) (*models.Record, error)
	Update(ctx context.Context, id string, rec *models.Record) (*models.Record, error)
	Remove(ctx context.Context, id string) error
	Ping(ctx context.Context) error
	Close() error
}
