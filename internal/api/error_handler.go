package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/skillsphere/mentorship-api/internal/core/domain"
)

// retryAfterBusy is the Retry-After value, in seconds, sent with ErrBusy.
const retryAfterBusy = "1"

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that maps domain errors
// to status codes and renders {"error": "<message>"}. Unexpected errors are
// logged and answered with a generic 500.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if errors.Is(err, domain.ErrBusy) {
			c.Response().Header().Set(echo.HeaderRetryAfter, retryAfterBusy)
		}
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Internal != nil {
			log.Debug().Err(he.Internal).Str("path", c.Path()).Msg("http error")
		}
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case domain.IsNotFound(err):
		return http.StatusNotFound, rootMessage(err)
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, domain.ErrForbidden.Error()
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, rootMessage(err)
	case errors.Is(err, domain.ErrBusy):
		log.Warn().Err(err).Str("path", c.Path()).Msg("booking lock contention")
		return http.StatusServiceUnavailable, domain.ErrBusy.Error()
	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrNotRatable),
		errors.Is(err, domain.ErrTooEarly),
		errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, domain.ErrInvalidCredentials.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

// rootMessage returns the message of the domain sentinel wrapped by err, so
// storage details added while wrapping never reach the client.
func rootMessage(err error) string {
	for _, sentinel := range []error{
		domain.ErrUserNotFound,
		domain.ErrMentorNotFound,
		domain.ErrSessionNotFound,
		domain.ErrConflict,
		domain.ErrUserExists,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}
