package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/deckkeeper/internal/client/models"
	"github.com/dmitrijs2005/deckkeeper/internal/common"
)

// RESTConfig is everything the client needs to reach the store.
type RESTConfig struct {
	BaseURL string
	APIKey  string
	// HealthAddr is the gRPC health endpoint of a self-hosted store.
	// When empty, Ping probes the REST endpoint instead.
	HealthAddr string
	Timeout    time.Duration
}

type RESTClient struct {
	base   *url.URL
	apiKey string
	http   *http.Client
	health *HealthChecker
}

func NewRESTClient(cfg RESTConfig) (*RESTClient, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("%w: store url is not configured", common.ErrValidation)
	}
	u, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("%w: bad store url: %v", common.ErrValidation, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: store url must be http or https", common.ErrValidation)
	}

	c := &RESTClient{
		base:   u,
		apiKey: cfg.APIKey,
		http:   &http.Client{Timeout: cfg.Timeout},
	}

	if cfg.HealthAddr != "" {
		h, err := NewHealthChecker(cfg.HealthAddr)
		if err != nil {
			return nil, err
		}
		c.health = h
	}
	return c, nil
}

func (c *RESTClient) Close() error {
	if c.health != nil {
		return c.health.Close()
	}
	return nil
}

func (c *RESTClient) tableURL(q url.Values) string {
	u := *c.base
	u.Path = u.Path + "/rest/v1/" + common.PresentationsTable
	u.RawQuery = q.Encode()
	return u.String()
}

type request struct {
	method string
	query  url.Values
	body   any
	single bool
	prefer string
}

func (c *RESTClient) do(ctx context.Context, r request, out any) error {
	var body io.Reader
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.tableURL(r.query), body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set(common.APIKeyHeaderName, c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.single {
		req.Header.Set("Accept", common.SingleObjectMediaType)
	} else {
		req.Header.Set("Accept", "application/json")
	}
	if r.prefer != "" {
		req.Header.Set(common.PreferHeaderName, r.prefer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return connectivity(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return mapResponseError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func byID(id string) url.Values {
	return url.Values{"id": {"eq." + id}}
}

func requireID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: empty presentation id", common.ErrValidation)
	}
	return nil
}

// List returns every presentation, newest first, without content.
func (c *RESTClient) List(ctx context.Context) ([]models.Summary, error) {
	q := url.Values{
		"select": {models.SummaryColumns},
		"order":  {"created_at.desc"},
	}
	var rows []models.Summary
	if err := c.do(ctx, request{method: http.MethodGet, query: q}, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *RESTClient) Fetch(ctx context.Context, id string) (*models.Record, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	q := byID(id)
	q.Set("select", "*")

	var rec models.Record
	if err := c.do(ctx, request{method: http.MethodGet, query: q, single: true}, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Insert creates a row and returns it as stored, including the new id.
func (c *RESTClient) Insert(ctx context.Context, rec *models.Record) (*models.Record, error) {
	payload := *rec
	payload.ID = ""
	payload.CreatedAt = nil

	var out models.Record
	r := request{method: http.MethodPost, body: payload, single: true, prefer: "return=representation"}
	if err := c.do(ctx, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces the row's columns. An unknown id is common.ErrNotFound.
func (c *RESTClient) Update(ctx context.Context, id string, rec *models.Record) (*models.Record, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	payload := *rec
	payload.ID = ""
	payload.CreatedAt = nil

	var out models.Record
	r := request{method: http.MethodPatch, query: byID(id), body: payload, single: true, prefer: "return=representation"}
	if err := c.do(ctx, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Remove deletes a row. An unknown id is common.ErrNotFound.
func (c *RESTClient) Remove(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	q := byID(id)
	q.Set("select", "id")

	var deleted []struct {
		ID string `json:"id"`
	}
	r := request{method: http.MethodDelete, query: q, prefer: "return=representation"}
	if err := c.do(ctx, r, &deleted); err != nil {
		return err
	}
	if len(deleted) == 0 {
		return fmt.Errorf("presentation %s: %w", id, common.ErrNotFound)
	}
	return nil
}

// Ping reports whether the store is reachable. Store-side errors such as a
// missing table still count as reachable.
func (c *RESTClient) Ping(ctx context.Context) error {
	if c.health != nil {
		return c.health.Check(ctx)
	}
	q := url.Values{"select": {"id"}, "limit": {"1"}}
	err := c.do(ctx, request{method: http.MethodGet, query: q}, nil)
	if err == nil || !isConnectivity(err) {
		return nil
	}
	return err
}
