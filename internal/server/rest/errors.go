package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/deckkeeper/internal/logging"
	"github.com/dmitrijs2005/deckkeeper/internal/server/apierr"
	"github.com/labstack/echo/v4"
)

// errorHandler renders every error as a PostgREST error body.
func errorHandler(logger logging.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var e *apierr.Error
		var he *echo.HTTPError
		switch {
		case errors.As(err, &e):
		case errors.As(err, &he):
			e = &apierr.Error{Status: he.Code, Code: fmt.Sprintf("HTTP%d", he.Code), Message: http.StatusText(he.Code)}
		default:
			e = apierr.From(err)
		}

		if e.Status >= http.StatusInternalServerError {
			logger.Error(c.Request().Context(), "request failed", "error", err)
		}
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(e.Status)
			return
		}
		_ = c.JSON(e.Status, e)
	}
}
