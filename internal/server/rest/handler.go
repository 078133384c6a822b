// Package rest exposes the presentations table over the PostgREST subset
// the deck client speaks.
package rest

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/dmitrijs2005/deckkeeper/internal/common"
	"github.com/dmitrijs2005/deckkeeper/internal/logging"
	"github.com/dmitrijs2005/deckkeeper/internal/server/apierr"
	"github.com/dmitrijs2005/deckkeeper/internal/server/models"
	"github.com/dmitrijs2005/deckkeeper/internal/server/repositories/presentations"
	"github.com/labstack/echo/v4"
)

// Store is what the handler needs from the service layer.
type Store interface {
	List(ctx context.Context, role string, opts presentations.ListOptions) ([]*models.Presentation, error)
	Get(ctx context.Context, role, id string) (*models.Presentation, error)
	Create(ctx context.Context, role string, patch *models.Patch) (*models.Presentation, error)
	Update(ctx context.Context, role, id string, patch *models.Patch) (*models.Presentation, error)
	Delete(ctx context.Context, role, id string) ([]string, error)
}

type Handler struct {
	store     Store
	secretKey []byte
	logger    logging.Logger
}

func NewHandler(store Store, secretKey string, logger logging.Logger) *Handler {
	return &Handler{
		store:     store,
		secretKey: []byte(secretKey),
		logger:    logger.With("module", "rest"),
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/rest/v1", h.authenticate)
	g.GET("/:table", h.handleSelect)
	g.POST("/:table", h.handleInsert)
	g.PATCH("/:table", h.handleUpdate)
	g.DELETE("/:table", h.handleDelete)
}

func checkTable(c echo.Context) error {
	if t := c.Param("table"); t != common.PresentationsTable {
		return apierr.TableMissing(t)
	}
	return nil
}

// respondRows writes rows as an array, or as a single object when the
// client asked for one. A single-object request that does not match exactly
// one row is PGRST116.
func respondRows(c echo.Context, status int, rows []map[string]any) error {
	if !wantsSingle(c) {
		return c.JSON(status, rows)
	}
	if len(rows) != 1 {
		return apierr.NoRows()
	}
	return c.JSON(status, rows[0])
}

func project(rows []*models.Presentation, cols []string) []map[string]any {
	out := make([]map[string]any, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Project(cols))
	}
	return out
}

func (h *Handler) handleSelect(c echo.Context) error {
	if err := checkTable(c); err != nil {
		return err
	}
	q, err := parseQuery(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	if q.id == "" {
		rows, err := h.store.List(ctx, roleOf(c), q.list)
		if err != nil {
			return err
		}
		return respondRows(c, http.StatusOK, project(rows, q.columns))
	}

	row, err := h.store.Get(ctx, roleOf(c), q.id)
	if errors.Is(err, common.ErrNotFound) {
		return respondRows(c, http.StatusOK, []map[string]any{})
	}
	if err != nil {
		return err
	}

	obj := row.Project(q.columns)
	if !wantsSingle(c) {
		return c.JSON(http.StatusOK, []map[string]any{obj})
	}
	return writeTagged(c, obj)
}

func readPatch(c echo.Context) (*models.Patch, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, badBody(err)
	}
	return decodePatch(body)
}

func (h *Handler) handleInsert(c echo.Context) error {
	if err := checkTable(c); err != nil {
		return err
	}
	q, err := parseQuery(c)
	if err != nil {
		return err
	}
	patch, err := readPatch(c)
	if err != nil {
		return err
	}

	created, err := h.store.Create(c.Request().Context(), roleOf(c), patch)
	if err != nil {
		return err
	}

	if !wantsRepresentation(c) {
		return c.NoContent(http.StatusCreated)
	}
	return respondRows(c, http.StatusCreated, project([]*models.Presentation{created}, q.columns))
}

func requireIDFilter(q *query, method string) error {
	if q.id == "" {
		return apierr.BadRequest(apierr.CodeBadQuery, method+" requires an id=eq. filter")
	}
	return nil
}

func (h *Handler) handleUpdate(c echo.Context) error {
	if err := checkTable(c); err != nil {
		return err
	}
	q, err := parseQuery(c)
	if err != nil {
		return err
	}
	if err := requireIDFilter(q, http.MethodPatch); err != nil {
		return err
	}
	patch, err := readPatch(c)
	if err != nil {
		return err
	}

	var rows []*models.Presentation
	updated, err := h.store.Update(c.Request().Context(), roleOf(c), q.id, patch)
	switch {
	case errors.Is(err, common.ErrNotFound):
	case err != nil:
		return err
	default:
		rows = append(rows, updated)
	}

	if !wantsRepresentation(c) {
		return c.NoContent(http.StatusNoContent)
	}
	return respondRows(c, http.StatusOK, project(rows, q.columns))
}

func (h *Handler) handleDelete(c echo.Context) error {
	if err := checkTable(c); err != nil {
		return err
	}
	q, err := parseQuery(c)
	if err != nil {
		return err
	}
	if err := requireIDFilter(q, http.MethodDelete); err != nil {
		return err
	}

	ids, err := h.store.Delete(c.Request().Context(), roleOf(c), q.id)
	if err != nil {
		return err
	}

	if !wantsRepresentation(c) {
		return c.NoContent(http.StatusNoContent)
	}
	rows := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, map[string]any{"id": id})
	}
	return respondRows(c, http.StatusOK, rows)
}
