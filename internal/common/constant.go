// Package common contains shared constants and sentinel errors used across
// deckkeeper components.
package common

// PresentationsTable is the remote table holding saved decks.
const PresentationsTable = "presentations"

// Header names used by the PostgREST dialect spoken between client and store.
const (
	APIKeyHeaderName = "apikey"
	PreferHeaderName = "Prefer"
)

// SingleObjectMediaType asks the store to return one object instead of an array.
const SingleObjectMediaType = "application/vnd.pgrst.object+json"
