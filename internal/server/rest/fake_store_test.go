package rest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/deckkeeper/internal/common"
	"github.com/dmitrijs2005/deckkeeper/internal/server/models"
	"github.com/dmitrijs2005/deckkeeper/internal/server/repositories/presentations"
	"github.com/dmitrijs2005/deckkeeper/internal/server/services"
	"github.com/google/uuid"
)

// memStore keeps rows in memory and applies the same row policy as the
// real service.
type memStore struct {
	mu     sync.Mutex
	policy services.Policy
	rows   map[string]*models.Presentation
	clock  time.Time
	err    error
}

func newMemStore(allowAnonWrites bool) *memStore {
	return &memStore{
		policy: services.Policy{AllowAnonWrites: allowAnonWrites},
		rows:   map[string]*models.Presentation{},
		clock:  time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC),
	}
}

func (m *memStore) List(ctx context.Context, role string, opts presentations.ListOptions) ([]*models.Presentation, error) {
	if err := m.policy.Check(role, services.OpSelect); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}

	out := make([]*models.Presentation, 0, len(m.rows))
	for _, r := range m.rows {
		cp := *r
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if opts.Ascending {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}

func (m *memStore) Get(ctx context.Context, role, id string) (*models.Presentation, error) {
	if err := m.policy.Check(role, services.OpSelect); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *memStore) Create(ctx context.Context, role string, patch *models.Patch) (*models.Presentation, error) {
	if err := m.policy.Check(role, services.OpInsert); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}

	m.clock = m.clock.Add(time.Minute)
	row := &models.Presentation{ID: uuid.NewString(), CreatedAt: m.clock}
	patch.Apply(row)
	m.rows[row.ID] = row
	cp := *row
	return &cp, nil
}

func (m *memStore) Update(ctx context.Context, role, id string, patch *models.Patch) (*models.Presentation, error) {
	if err := m.policy.Check(role, services.OpUpdate); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	patch.Apply(r)
	cp := *r
	return &cp, nil
}

func (m *memStore) Delete(ctx context.Context, role, id string) ([]string, error) {
	if err := m.policy.Check(role, services.OpDelete); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return []string{}, nil
	}
	delete(m.rows, id)
	return []string{id}, nil
}
