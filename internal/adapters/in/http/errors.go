package http

import (
	"errors"
	"log/slog"
	"net/http"

	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/rating"
	"freight/internal/core/domain/model/truck"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorKind struct {
	target error
	code   string
	status int
}

// Domain sentinels come before the generic ones they may also wrap.
var errorKinds = []errorKind{
	{bid.ErrInvalidTruckCount, "InvalidTruckCount", http.StatusBadRequest},
	{truck.ErrTruckUnavailable, "TruckUnavailable", http.StatusConflict},
	{bid.ErrDuplicateBid, "DuplicateBid", http.StatusConflict},
	{rating.ErrDuplicateRating, "DuplicateRating", http.StatusConflict},
	{rating.ErrNotDelivered, "NotDelivered", http.StatusUnprocessableEntity},
	{errs.ErrObjectNotFound, "NotFound", http.StatusNotFound},
	{errs.ErrInvalidTransition, "InvalidTransition", http.StatusUnprocessableEntity},
	{errs.ErrConflict, "Conflict", http.StatusConflict},
	{errs.ErrValueIsRequired, "ValidationError", http.StatusBadRequest},
	{errs.ErrValueIsInvalid, "ValidationError", http.StatusBadRequest},
	{errs.ErrValueIsOutOfRange, "ValidationError", http.StatusBadRequest},
}

// Classify maps an error returned by a use case to its API code and HTTP status.
func Classify(err error) (string, int) {
	for _, kind := range errorKinds {
		if errors.Is(err, kind.target) {
			return kind.code, kind.status
		}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		switch {
		case httpErr.Code == http.StatusNotFound:
			return "NotFound", http.StatusNotFound
		case httpErr.Code == http.StatusMethodNotAllowed:
			return "MethodNotAllowed", http.StatusMethodNotAllowed
		case httpErr.Code < http.StatusInternalServerError:
			return "ValidationError", http.StatusBadRequest
		}
	}

	return "InternalError", http.StatusInternalServerError
}

// NewErrorHandler renders errors as ErrorResponse. Internal errors are logged and
// their details are not exposed.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	logger = logger.With("component", "http")

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, status := Classify(err)
		metrics.TrackOperationError(code)

		message := err.Error()
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			if msg, ok := httpErr.Message.(string); ok {
				message = msg
			}
		}
		if status == http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "Request failed",
				"method", c.Request().Method, "path", c.Path(), "error", err)
			message = http.StatusText(http.StatusInternalServerError)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, ErrorResponse{Code: code, Message: message})
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "Failed to write error response", "error", writeErr)
		}
	}
}
