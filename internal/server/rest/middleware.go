package rest

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/deckkeeper/internal/common"
	"github.com/dmitrijs2005/deckkeeper/internal/logging"
	"github.com/dmitrijs2005/deckkeeper/internal/server/apierr"
	"github.com/dmitrijs2005/deckkeeper/internal/server/auth"
	"github.com/labstack/echo/v4"
)

const roleKey = "role"

// apiKey returns the bearer token if present, else the apikey header.
func apiKey(c echo.Context) string {
	if h := c.Request().Header.Get(echo.HeaderAuthorization); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok && token != "" {
			return strings.TrimSpace(token)
		}
	}
	return strings.TrimSpace(c.Request().Header.Get(common.APIKeyHeaderName))
}

// authenticate resolves the caller role from its key.
func (h *Handler) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		key := apiKey(c)
		if key == "" {
			return apierr.Unauthorized(apierr.CodeJWT, "No API key found in request")
		}

		role, err := auth.RoleFromKey(key, h.secretKey)
		if err != nil {
			h.logger.Debug(c.Request().Context(), "rejected api key", "error", err)
			return err
		}

		c.Set(roleKey, role)
		return next(c)
	}
}

func roleOf(c echo.Context) string {
	role, _ := c.Get(roleKey).(string)
	return role
}

// requestLogger logs one line per request.
func requestLogger(logger logging.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			logger.Info(req.Context(), "request",
				"method", req.Method,
				"uri", req.RequestURI,
				"status", c.Response().Status,
				"role", roleOf(c),
				"duration", time.Since(start),
			)
			return nil
		}
	}
}
