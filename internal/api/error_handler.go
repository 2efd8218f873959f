package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/newsroom/news-api/internal/api/handler"
	"github.com/newsroom/news-api/internal/core/domain"
)

// errorBody is the canonical error envelope for domain failures. The numeric
// codes are part of the public contract: 1000 already registered, 1001 bad
// credentials, then plain HTTP codes.
type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// validationBody carries the per-field violations of a rejected payload.
type validationBody struct {
	Message string               `json:"message"`
	Errors  []handler.FieldError `json:"errors"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to deterministic HTTP status codes.
//   - Renders validation failures as a 400 with the field list.
//   - Logs unexpected errors internally without leaking details to the client.
//
// Core packages signal failure kinds only; HTTP semantics live here.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *handler.ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, validationBody{Message: "Validation failed", Errors: ve.Fields})
			return
		}

		// Echo's own errors (middleware 401s, bind failures, router 404s).
		var he *echo.HTTPError
		if errors.As(err, &he) {
			_ = c.JSON(he.Code, map[string]string{"error": fmt.Sprintf("%v", he.Message)})
			return
		}

		code, body := resolveError(err, log, c)
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorBody) {
	switch {
	case errors.Is(err, domain.ErrAlreadyRegistered):
		return http.StatusConflict, errorBody{Code: 1000, Message: "Already registered!"}
	case errors.Is(err, domain.ErrBadCredentials):
		return http.StatusUnauthorized, errorBody{Code: 1001, Message: "Bad credentials!"}
	case errors.Is(err, domain.ErrArticleNotFound), errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, errorBody{Code: 404, Message: "Resource not found!"}
	}

	// Unexpected error (storage faults included): log the real cause,
	// return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorBody{Code: 500, Message: "Internal server error!"}
}
