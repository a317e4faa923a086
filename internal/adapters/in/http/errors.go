package http

import (
	"errors"
	"log/slog"
	"net/http"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the body of every non 2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrActorNotPrivileged):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, shipment.ErrTerminalStateViolation),
		errors.Is(err, shipment.ErrStatusRegression),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	case errors.Is(err, shipment.ErrInvalidStatus),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError answers with the mapped status. Server errors are logged and
// their text is not sent to the client.
func (s *Server) writeError(c echo.Context, err error, message string) error {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		s.logger.Error(message,
			slog.String("path", c.Path()),
			slog.String("error", err.Error()))
		return c.JSON(code, Error{Code: code, Message: message})
	}
	return c.JSON(code, Error{Code: code, Message: message + ": " + err.Error()})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
