package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/deckkeeper/internal/common"
	"github.com/dmitrijs2005/deckkeeper/internal/logging"
	"github.com/dmitrijs2005/deckkeeper/internal/server/apierr"
	"github.com/dmitrijs2005/deckkeeper/internal/server/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type harness struct {
	t       *testing.T
	store   *memStore
	handler http.Handler
	anon    string
	service string
}

func newHarness(t *testing.T, allowAnonWrites bool) *harness {
	t.Helper()
	store := newMemStore(allowAnonWrites)
	srv := NewServer("127.0.0.1:0", NewHandler(store, testSecret, logging.Nop{}), logging.Nop{})

	anon, err := auth.GenerateKey(auth.RoleAnon, []byte(testSecret), 0)
	require.NoError(t, err)
	service, err := auth.GenerateKey(auth.RoleService, []byte(testSecret), 0)
	require.NoError(t, err)

	return &harness{t: t, store: store, handler: srv.Handler(), anon: anon, service: service}
}

type call struct {
	method string
	target string
	body   string
	key    string
	single bool
	repr   bool
	header map[string]string
}

func (h *harness) do(c call) *httptest.ResponseRecorder {
	h.t.Helper()
	req := httptest.NewRequest(c.method, c.target, strings.NewReader(c.body))
	if c.key != "" {
		req.Header.Set(common.APIKeyHeaderName, c.key)
		req.Header.Set("Authorization", "Bearer "+c.key)
	}
	if c.body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.single {
		req.Header.Set("Accept", common.SingleObjectMediaType)
	}
	if c.repr {
		req.Header.Set(common.PreferHeaderName, "return=representation")
	}
	for k, v := range c.header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apierr.Error {
	t.Helper()
	var e apierr.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e), rec.Body.String())
	return e
}

func (h *harness) insert(title string) map[string]any {
	h.t.Helper()
	rec := h.do(call{
		method: http.MethodPost, target: "/rest/v1/presentations",
		body: `{"title":"` + title + `","slides":5,"content":[],"active":false}`,
		key:  h.service, single: true, repr: true,
	})
	require.Equal(h.t, http.StatusCreated, rec.Code, rec.Body.String())
	var out map[string]any
	require.NoError(h.t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestAuth_MissingAndBadKeys(t *testing.T) {
	h := newHarness(t, false)

	rec := h.do(call{method: http.MethodGet, target: "/rest/v1/presentations"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apierr.CodeJWT, decodeError(t, rec).Code)

	wrong, err := auth.GenerateKey(auth.RoleAnon, []byte("other"), 0)
	require.NoError(t, err)
	rec = h.do(call{method: http.MethodGet, target: "/rest/v1/presentations", key: wrong})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	expired, err := auth.GenerateKey(auth.RoleAnon, []byte(testSecret), -time.Second)
	require.NoError(t, err)
	rec = h.do(call{method: http.MethodGet, target: "/rest/v1/presentations", key: expired})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apierr.CodeJWTExpired, decodeError(t, rec).Code)
}

func TestAuth_ApiKeyHeaderAlone(t *testing.T) {
	h := newHarness(t, false)

	req := httptest.NewRequest(http.MethodGet, "/rest/v1/presentations", nil)
	req.Header.Set(common.APIKeyHeaderName, h.anon)
	rec := httptest.NewRecorder()
	h.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestUnknownTable(t *testing.T) {
	h := newHarness(t, false)

	rec := h.do(call{method: http.MethodGet, target: "/rest/v1/decks", key: h.anon})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	e := decodeError(t, rec)
	assert.Equal(t, apierr.CodeTableMissing, e.Code)
	assert.Contains(t, e.Message, "public.decks")
}

func TestSelect_ListProjectsAndOrders(t *testing.T) {
	h := newHarness(t, false)
	h.insert("First")
	h.insert("Second")

	rec := h.do(call{method: http.MethodGet, target: "/rest/v1/presentations?select=id,title&order=created_at.desc", key: h.anon})
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "Second", rows[0]["title"])
	assert.Len(t, rows[0], 2)

	rec = h.do(call{method: http.MethodGet, target: "/rest/v1/presentations?select=title&order=created_at.asc&limit=1", key: h.anon})
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "First", rows[0]["title"])
}

func TestSelect_BadQueries(t *testing.T) {
	h := newHarness(t, false)

	tests := []struct {
		name   string
		target string
		status int
		code   string
	}{
		{"unknown column", "/rest/v1/presentations?select=id,owner", http.StatusBadRequest, apierr.CodeColumnMissing},
		{"bad filter", "/rest/v1/presentations?id=gt.5", http.StatusBadRequest, apierr.CodeBadQuery},
		{"bad order", "/rest/v1/presentations?order=title.desc", http.StatusBadRequest, apierr.CodeBadQuery},
		{"bad limit", "/rest/v1/presentations?limit=-1", http.StatusBadRequest, apierr.CodeBadQuery},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := h.do(call{method: http.MethodGet, target: tt.target, key: h.anon})
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decodeError(t, rec).Code)
		})
	}
}

func TestSelect_SingleObjectAndETag(t *testing.T) {
	h := newHarness(t, false)
	row := h.insert("Deck")
	target := "/rest/v1/presentations?select=*&id=eq." + row["id"].(string)

	rec := h.do(call{method: http.MethodGet, target: target, key: h.anon, single: true})
	require.Equal(t, http.StatusOK, rec.Code)
	tag := rec.Header().Get("ETag")
	require.NotEmpty(t, tag)

	var obj map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &obj))
	assert.Equal(t, "Deck", obj["title"])
	assert.Equal(t, ETag(rec.Body.Bytes()), tag)

	rec = h.do(call{method: http.MethodGet, target: target, key: h.anon, single: true, header: map[string]string{"If-None-Match": tag}})
	assert.Equal(t, http.StatusNotModified, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = h.do(call{method: http.MethodGet, target: target, key: h.anon, single: true, header: map[string]string{"If-None-Match": `"stale"`}})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSelect_SingleObjectMissingIsNoRows(t *testing.T) {
	h := newHarness(t, false)
	target := "/rest/v1/presentations?id=eq.6f1c2f7e-3a0b-4f4e-9a43-2b6c1b0e8d11"

	rec := h.do(call{method: http.MethodGet, target: target, key: h.anon, single: true})
	assert.Equal(t, http.StatusNotAcceptable, rec.Code)
	assert.Equal(t, apierr.CodeNoRows, decodeError(t, rec).Code)

	rec = h.do(call{method: http.MethodGet, target: target, key: h.anon})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestInsert_PolicyAndRepresentation(t *testing.T) {
	h := newHarness(t, false)

	rec := h.do(call{method: http.MethodPost, target: "/rest/v1/presentations", body: `{"title":"x"}`, key: h.anon, repr: true})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, apierr.CodeInsufficientPrivs, decodeError(t, rec).Code)

	rec = h.do(call{method: http.MethodPost, target: "/rest/v1/presentations", body: `{"title":"x"}`, key: h.service})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = h.do(call{method: http.MethodPost, target: "/rest/v1/presentations", body: `{"title":"y","meta":{"title":"y"}}`, key: h.service, repr: true})
	assert.Equal(t, http.StatusCreated, rec.Code)
	var rows []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, map[string]any{"title": "y"}, rows[0]["meta"])
}

func TestInsert_AnonAllowedWhenOpen(t *testing.T) {
	h := newHarness(t, true)

	rec := h.do(call{method: http.MethodPost, target: "/rest/v1/presentations", body: `{"title":"x"}`, key: h.anon, single: true, repr: true})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestInsert_BadBodies(t *testing.T) {
	h := newHarness(t, true)

	tests := []struct {
		name string
		body string
		code string
	}{
		{"not json", `{`, apierr.CodeBadBody},
		{"array", `[{"title":"x"}]`, apierr.CodeBadBody},
		{"unknown column", `{"owner":"x"}`, apierr.CodeColumnMissing},
		{"wrong type", `{"title":5}`, apierr.CodeBadBody},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := h.do(call{method: http.MethodPost, target: "/rest/v1/presentations", body: tt.body, key: h.anon})
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.code, decodeError(t, rec).Code)
		})
	}
}

func TestUpdate(t *testing.T) {
	h := newHarness(t, false)
	row := h.insert("Old")
	target := "/rest/v1/presentations?id=eq." + row["id"].(string)

	rec := h.do(call{method: http.MethodPatch, target: target, body: `{"title":"New","active":true}`, key: h.service, single: true, repr: true})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var obj map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &obj))
	assert.Equal(t, "New", obj["title"])
	assert.Equal(t, true, obj["active"])
	assert.Equal(t, float64(5), obj["slides"])

	rec = h.do(call{method: http.MethodPatch, target: target, body: `{"title":"Quiet"}`, key: h.service})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = h.do(call{method: http.MethodPatch, target: target, body: `{"title":"x"}`, key: h.anon})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = h.do(call{method: http.MethodPatch, target: "/rest/v1/presentations", body: `{"title":"x"}`, key: h.service})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdate_UnknownID(t *testing.T) {
	h := newHarness(t, false)
	target := "/rest/v1/presentations?id=eq.6f1c2f7e-3a0b-4f4e-9a43-2b6c1b0e8d11"

	rec := h.do(call{method: http.MethodPatch, target: target, body: `{"title":"x"}`, key: h.service, single: true, repr: true})
	assert.Equal(t, http.StatusNotAcceptable, rec.Code)
	assert.Equal(t, apierr.CodeNoRows, decodeError(t, rec).Code)
}

func TestDelete(t *testing.T) {
	h := newHarness(t, false)
	row := h.insert("Gone")
	target := "/rest/v1/presentations?select=id&id=eq." + row["id"].(string)

	rec := h.do(call{method: http.MethodDelete, target: target, key: h.anon, repr: true})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = h.do(call{method: http.MethodDelete, target: target, key: h.service, repr: true})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":"`+row["id"].(string)+`"}]`, rec.Body.String())

	rec = h.do(call{method: http.MethodDelete, target: target, key: h.service, repr: true})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = h.do(call{method: http.MethodDelete, target: "/rest/v1/presentations", key: h.service})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInternalErrorsAreOpaque(t *testing.T) {
	h := newHarness(t, false)
	h.store.err = errors.New("pq: password authentication failed for user deck")

	rec := h.do(call{method: http.MethodGet, target: "/rest/v1/presentations", key: h.anon})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	e := decodeError(t, rec)
	assert.Equal(t, apierr.CodeInternal, e.Code)
	assert.NotContains(t, e.Message, "password")
}

func TestUnknownRoute(t *testing.T) {
	h := newHarness(t, false)

	rec := h.do(call{method: http.MethodGet, target: "/nope"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP404", decodeError(t, rec).Code)
}

func TestMatchesETag(t *testing.T) {
	assert.True(t, matchesETag(`"a", "b"`, `"b"`))
	assert.True(t, matchesETag(`W/"b"`, `"b"`))
	assert.True(t, matchesETag(`*`, `"b"`))
	assert.False(t, matchesETag(`"a"`, `"b"`))
}
