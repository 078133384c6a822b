// Package services contains the client application services. SyncService
// mediates between the editing session and the remote presentations store.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/deckkeeper/internal/client/client"
	"github.com/dmitrijs2005/deckkeeper/internal/client/models"
	"github.com/dmitrijs2005/deckkeeper/internal/client/repositories/summaries"
	"github.com/dmitrijs2005/deckkeeper/internal/common"
	"github.com/dmitrijs2005/deckkeeper/internal/deck"
	"github.com/dmitrijs2005/deckkeeper/internal/editor"
	"github.com/dmitrijs2005/deckkeeper/internal/logging"
)

// CopySuffix is appended to the title of a duplicated presentation.
const CopySuffix = " (Cópia)"

// SyncService tracks which remote record the in-memory deck is bound to and
// the last known listing. It is driven from the UI loop and is not safe for
// concurrent use.
type SyncService struct {
	client  client.Client
	cache   summaries.Repository
	session *editor.Session
	logger  logging.Logger
	now     func() time.Time

	activeID  string
	rows      []models.Summary
	fromCache bool
}

// NewSyncService wires the service. cache may be nil, which disables the
// offline listing.
func NewSyncService(c client.Client, cache summaries.Repository, s *editor.Session, l logging.Logger) *SyncService {
	return &SyncService{
		client:  c,
		cache:   cache,
		session: s,
		logger:  l.With("module", "sync"),
		now:     time.Now,
	}
}

// ActiveID is the id of the record the deck is bound to, or "".
func (s *SyncService) ActiveID() string { return s.activeID }

// Rows is the last listing, active flag reflecting the current binding.
func (s *SyncService) Rows() []models.Summary {
	return append([]models.Summary(nil), s.rows...)
}

// FromCache reports whether Rows came from the local cache.
func (s *SyncService) FromCache() bool { return s.fromCache }

func (s *SyncService) markActive(rows []models.Summary) []models.Summary {
	out := make([]models.Summary, len(rows))
	for i, r := range rows {
		r.Active = s.activeID != "" && r.ID == s.activeID
		out[i] = r
	}
	return out
}

// RefreshList reloads the listing. A missing table is only logged and
// yields an empty listing with no error. When the store is unreachable the
// cached listing is returned together with the error.
func (s *SyncService) RefreshList(ctx context.Context) ([]models.Summary, error) {
	rows, err := s.client.List(ctx)
	if err != nil {
		if errors.Is(err, common.ErrSchemaMissing) {
			s.logger.Warn(ctx, "presentations table is missing, run the setup script", "error", err)
			s.rows, s.fromCache = nil, false
			return nil, nil
		}

		s.logger.Error(ctx, "failed to list presentations", "error", err)
		if errors.Is(err, common.ErrConnectivity) && s.cache != nil {
			cached, cerr := s.cache.List(ctx)
			if cerr != nil {
				s.logger.Warn(ctx, "failed to read cached listing", "error", cerr)
			} else {
				s.rows, s.fromCache = s.markActive(cached), true
				return s.Rows(), fmt.Errorf("list presentations: %w", err)
			}
		}
		return nil, fmt.Errorf("list presentations: %w", err)
	}

	s.rows, s.fromCache = s.markActive(rows), false
	if s.cache != nil {
		if err := s.cache.Replace(ctx, rows, s.now()); err != nil {
			s.logger.Warn(ctx, "failed to cache listing", "error", err)
		}
	}
	return s.Rows(), nil
}

func isNull(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) == 0 || bytes.Equal(t, []byte("null"))
}

// Load replaces the in-memory deck with the stored one and binds to it.
// Records saved before metadata existed get metadata built from their
// title and author.
func (s *SyncService) Load(ctx context.Context, id string) error {
	rec, err := s.client.Fetch(ctx, id)
	if err != nil {
		return fmt.Errorf("load presentation %s: %w", id, err)
	}
	if isNull(rec.Content) {
		return fmt.Errorf("load presentation %s: %w: record has no content", id, common.ErrValidation)
	}

	slides, err := deck.UnmarshalSlides(rec.Content)
	if err != nil {
		return fmt.Errorf("load presentation %s: %w: %v", id, common.ErrValidation, err)
	}

	meta := deck.Metadata{Title: rec.Title, Author: rec.Author}
	if !isNull(rec.Meta) {
		var m deck.Metadata
		if err := json.Unmarshal(rec.Meta, &m); err != nil {
			s.logger.Warn(ctx, "ignoring malformed metadata", "id", id, "error", err)
		} else {
			meta = m
		}
	}

	s.session.Replace(deck.Document{Slides: slides, Meta: meta})
	s.activeID = rec.ID
	s.rows = s.markActive(s.rows)
	s.logger.Info(ctx, "presentation loaded", "id", rec.ID, "slides", len(slides))
	return nil
}

func (s *SyncService) record(doc deck.Document, title, author string, slides int, active bool) (*models.Record, error) {
	content, err := deck.MarshalSlides(doc.Slides)
	if err != nil {
		return nil, fmt.Errorf("encode slides: %w", err)
	}
	meta, err := json.Marshal(doc.Meta)
	if err != nil {
		return nil, fmt.Errorf("encode metadata: %w", err)
	}
	return &models.Record{
		Title:   title,
		Author:  author,
		Date:    s.now().Format(models.DateLayout),
		Slides:  slides,
		Content: content,
		Meta:    meta,
		Active:  active,
	}, nil
}

// Save writes the whole deck: a new record when unbound, otherwise an
// update of the bound one. It returns the bound id.
func (s *SyncService) Save(ctx context.Context) (string, error) {
	doc := deck.NormalizeAll(s.session.Snapshot())

	rec, err := s.record(doc, doc.Meta.Title, doc.Meta.Author, deck.RenderedCount(len(doc.Slides)), true)
	if err != nil {
		return "", err
	}

	if s.activeID == "" {
		out, err := s.client.Insert(ctx, rec)
		if err != nil {
			return "", fmt.Errorf("save presentation: %w", err)
		}
		s.activeID = out.ID
		s.logger.Info(ctx, "presentation created", "id", out.ID)
	} else {
		if _, err := s.client.Update(ctx, s.activeID, rec); err != nil {
			return "", fmt.Errorf("save presentation %s: %w", s.activeID, err)
		}
		s.logger.Info(ctx, "presentation updated", "id", s.activeID)
	}

	s.session.Replace(doc)

	if _, err := s.RefreshList(ctx); err != nil {
		s.logger.Warn(ctx, "listing refresh after save failed", "error", err)
	}
	return s.activeID, nil
}

func (s *SyncService) summary(ctx context.Context, id string) (models.Summary, error) {
	for _, r := range s.rows {
		if r.ID == id {
			return r, nil
		}
	}
	rec, err := s.client.Fetch(ctx, id)
	if err != nil {
		return models.Summary{}, err
	}
	return models.Summary{ID: rec.ID, Title: rec.Title, Author: rec.Author, Slides: rec.Slides}, nil
}

// Duplicate stores a new, inactive record titled after source id but
// carrying the slides currently in memory. The binding is unchanged.
func (s *SyncService) Duplicate(ctx context.Context, id string) (string, error) {
	src, err := s.summary(ctx, id)
	if err != nil {
		return "", fmt.Errorf("duplicate presentation %s: %w", id, err)
	}

	doc := deck.NormalizeAll(s.session.Snapshot())
	title := src.Title + CopySuffix
	doc.Meta.Title = title
	doc.Meta.Author = src.Author

	rec, err := s.record(doc, title, src.Author, src.Slides, false)
	if err != nil {
		return "", err
	}
	out, err := s.client.Insert(ctx, rec)
	if err != nil {
		return "", fmt.Errorf("duplicate presentation %s: %w", id, err)
	}
	s.logger.Info(ctx, "presentation duplicated", "source", id, "id", out.ID)

	if _, err := s.RefreshList(ctx); err != nil {
		s.logger.Warn(ctx, "listing refresh after duplicate failed", "error", err)
	}
	return out.ID, nil
}

// Remove deletes a record. Removing the bound record resets the deck to the
// starter content and clears the binding.
func (s *SyncService) Remove(ctx context.Context, id string) error {
	if err := s.client.Remove(ctx, id); err != nil {
		return fmt.Errorf("remove presentation %s: %w", id, err)
	}
	s.logger.Info(ctx, "presentation removed", "id", id)

	if id == s.activeID {
		s.Reset()
	}

	if _, err := s.RefreshList(ctx); err != nil {
		s.logger.Warn(ctx, "listing refresh after remove failed", "error", err)
	}
	return nil
}

// Reset drops the binding and restores the starter deck.
func (s *SyncService) Reset() {
	s.session.Replace(deck.Default())
	s.activeID = ""
	s.rows = s.markActive(s.rows)
}
