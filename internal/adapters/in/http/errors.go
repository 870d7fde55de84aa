package http

import (
	"errors"
	"fmt"
	"net/http"

	"inventory/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "internal server error"

// ErrorResponse is the body of every failed API response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// statusFor maps the error taxonomy to an HTTP status and a message safe to
// show to the caller.
func statusFor(err error) (int, string) {
	var (
		httpErr   *echo.HTTPError
		unauth    *errs.UnauthenticatedError
		forbidden *errs.ForbiddenError
		notFound  *errs.ObjectNotFoundError
		exists    *errs.AlreadyExistsError
	)

	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code, fmt.Sprint(httpErr.Message)
	case errors.As(err, &unauth):
		msg := unauth.Public
		if msg == "" {
			msg = "authentication required"
		}
		return http.StatusUnauthorized, msg
	case errors.Is(err, errs.ErrUnauthenticated):
		return http.StatusUnauthorized, "authentication required"
	case errors.As(err, &forbidden):
		return http.StatusForbidden, fmt.Sprintf("%s: %s", forbidden.Action, forbidden.Reason)
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, errs.ErrForbidden.Error()
	case errors.As(err, &notFound):
		return http.StatusNotFound, fmt.Sprintf("%s not found", notFound.ParamName)
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, errs.ErrObjectNotFound.Error()
	case errors.As(err, &exists):
		if exists.Cause != nil {
			return http.StatusBadRequest, exists.Cause.Error()
		}
		return http.StatusBadRequest, fmt.Sprintf("%s %s", exists.ParamName, errs.ErrAlreadyExists)
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrAlreadyExists):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, internalErrorMessage
	}
}

// errorHandler replaces echo's default so every failure has the same
// {"error": "..."} shape. Internal faults are logged and never described.
func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, msg := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error().Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Request().URL.Path).
			Msg("request failed")
		msg = internalErrorMessage
	}

	var respErr error
	if c.Request().Method == http.MethodHead {
		respErr = c.NoContent(status)
	} else {
		respErr = c.JSON(status, ErrorResponse{Error: msg})
	}
	if respErr != nil {
		s.logger.Warn().Err(respErr).Msg("write error response")
	}
}
