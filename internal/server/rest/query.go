package rest

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/deckkeeper/internal/common"
	"github.com/dmitrijs2005/deckkeeper/internal/server/apierr"
	"github.com/dmitrijs2005/deckkeeper/internal/server/models"
	"github.com/dmitrijs2005/deckkeeper/internal/server/repositories/presentations"
	"github.com/labstack/echo/v4"
)

// query is the subset of the PostgREST query language the store accepts.
type query struct {
	columns []string
	id      string
	list    presentations.ListOptions
}

func parseSelect(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "*" {
		return nil, nil
	}
	var cols []string
	for _, c := range strings.Split(raw, ",") {
		c = strings.TrimSpace(c)
		if c == "*" {
			return nil, nil
		}
		if !models.IsColumn(c) {
			return nil, apierr.ColumnMissing(c, common.PresentationsTable)
		}
		cols = append(cols, c)
	}
	return cols, nil
}

func parseIDFilter(raw string) (string, error) {
	if raw == "" {
		return "", nil
	}
	v, ok := strings.CutPrefix(raw, "eq.")
	if !ok || v == "" {
		return "", apierr.BadRequest(apierr.CodeBadQuery, fmt.Sprintf("unsupported filter on id: %q", raw))
	}
	return v, nil
}

// parseOrder accepts created_at with an optional .asc or .desc suffix.
// The default is newest first.
func parseOrder(raw string) (ascending bool, err error) {
	switch raw {
	case "", "created_at.desc":
		return false, nil
	case "created_at", "created_at.asc":
		return true, nil
	}
	return false, apierr.BadRequest(apierr.CodeBadQuery, fmt.Sprintf("unsupported order: %q", raw))
}

func parseLimit(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, apierr.BadRequest(apierr.CodeBadQuery, fmt.Sprintf("invalid limit: %q", raw))
	}
	return n, nil
}

func needsContent(cols []string) bool {
	if len(cols) == 0 {
		return true
	}
	for _, c := range cols {
		if c == "content" || c == "meta" {
			return true
		}
	}
	return false
}

func parseQuery(c echo.Context) (*query, error) {
	cols, err := parseSelect(c.QueryParam("select"))
	if err != nil {
		return nil, err
	}
	id, err := parseIDFilter(c.QueryParam("id"))
	if err != nil {
		return nil, err
	}
	asc, err := parseOrder(c.QueryParam("order"))
	if err != nil {
		return nil, err
	}
	limit, err := parseLimit(c.QueryParam("limit"))
	if err != nil {
		return nil, err
	}

	return &query{
		columns: cols,
		id:      id,
		list:    presentations.ListOptions{Ascending: asc, Limit: limit, IncludeContent: needsContent(cols)},
	}, nil
}

func wantsSingle(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), common.SingleObjectMediaType)
}

func wantsRepresentation(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(common.PreferHeaderName), "return=representation")
}

func badBody(err error) error {
	return apierr.BadRequest(apierr.CodeBadBody, fmt.Sprintf("Empty or invalid json: %v", err))
}

// decodePatch reads a JSON object of column values. Unknown columns are
// reported the way a missing column is; id and created_at are ignored.
func decodePatch(body []byte) (*models.Patch, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, badBody(err)
	}
	if fields == nil {
		return nil, badBody(fmt.Errorf("expected an object"))
	}

	p := &models.Patch{}
	for k, v := range fields {
		var err error
		switch k {
		case "id", "created_at":
		case "title":
			err = json.Unmarshal(v, &p.Title)
		case "author":
			err = json.Unmarshal(v, &p.Author)
		case "date":
			err = json.Unmarshal(v, &p.Date)
		case "slides":
			var n *float64
			if err = json.Unmarshal(v, &n); err == nil && n != nil {
				slides := int(*n)
				p.Slides = &slides
			}
		case "active":
			err = json.Unmarshal(v, &p.Active)
		case "content":
			p.Content = jsonColumn(v)
		case "meta":
			p.Meta = jsonColumn(v)
		default:
			return nil, apierr.ColumnMissing(k, common.PresentationsTable)
		}
		if err != nil {
			return nil, badBody(fmt.Errorf("column %s: %w", k, err))
		}
	}
	return p, nil
}

// jsonColumn maps a JSON null to an empty, non-nil value so the column is
// written as SQL NULL.
func jsonColumn(v json.RawMessage) json.RawMessage {
	if strings.TrimSpace(string(v)) == "null" {
		return json.RawMessage{}
	}
	return append(json.RawMessage(nil), v...)
}
