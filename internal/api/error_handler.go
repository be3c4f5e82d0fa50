package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// errorEnvelope mirrors the handlers' response wrapper so that errors raised
// outside a handler (unknown routes, oversized bodies, panics caught by
// Recover) still come back in the documented shape.
type errorEnvelope struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Data    any     `json:"data"`
	Error   *string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that keeps every
// failure inside the JSON envelope and logs unexpected errors without
// leaking their details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorEnvelope{Message: http.StatusText(code), Error: &msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (404 from the router, method not allowed, body
	// limit, etc.) carry their status code.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Anything else escaping a handler is a bug: log the cause, return a
	// generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
