package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/deckkeeper/internal/client/client"
	"github.com/dmitrijs2005/deckkeeper/internal/client/models"
	"github.com/dmitrijs2005/deckkeeper/internal/common"
)

// fakeStore is an in-memory presentations table.
type fakeStore struct {
	client.Client

	rows   []*models.Record
	nextID int
	clock  time.Time

	listErr   error
	fetchErr  error
	insertErr error
	updateErr error
	removeErr error

	inserts int
	updates int
}

func newFakeStore() *fakeStore {
	return &fakeStore{clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (f *fakeStore) List(ctx context.Context) ([]models.Summary, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Summary, 0, len(f.rows))
	for i := len(f.rows) - 1; i >= 0; i-- {
		r := f.rows[i]
		out = append(out, models.Summary{ID: r.ID, CreatedAt: r.CreatedAt, Title: r.Title, Author: r.Author, Date: r.Date, Slides: r.Slides, Active: r.Active})
	}
	return out, nil
}

func (f *fakeStore) find(id string) (int, *models.Record) {
	for i, r := range f.rows {
		if r.ID == id {
			return i, r
		}
	}
	return -1, nil
}

func (f *fakeStore) Fetch(ctx context.Context, id string) (*models.Record, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	_, r := f.find(id)
	if r == nil {
		return nil, common.ErrNotFound
	}
	c := *r
	return &c, nil
}

func (f *fakeStore) Insert(ctx context.Context, rec *models.Record) (*models.Record, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.nextID++
	f.inserts++
	f.clock = f.clock.Add(time.Minute)
	created := f.clock
	c := *rec
	c.ID = fmt.Sprintf("rec-%d", f.nextID)
	c.CreatedAt = &created
	f.rows = append(f.rows, &c)
	out := c
	return &out, nil
}

func (f *fakeStore) Update(ctx context.Context, id string, rec *models.Record) (*models.Record, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	i, r := f.find(id)
	if r == nil {
		return nil, common.ErrNotFound
	}
	f.updates++
	c := *rec
	c.ID = r.ID
	c.CreatedAt = r.CreatedAt
	f.rows[i] = &c
	out := c
	return &out, nil
}

func (f *fakeStore) Remove(ctx context.Context, id string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	i, r := f.find(id)
	if r == nil {
		return common.ErrNotFound
	}
	f.rows = append(f.rows[:i], f.rows[i+1:]...)
	return nil
}
