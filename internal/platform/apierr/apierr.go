// Package apierr maps service-layer errors onto the HTTP error taxonomy:
// validation failures are 400, missing records 404, broken flow preconditions
// 409, and upstream Gateway failures 502 with a generic notice.
package apierr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hms/hms/internal/gateway"
)

type kind int

const (
	kindValidation kind = iota
	kindPrecondition
	kindNotFound
)

// Error is a classified domain error.
type Error struct {
	kind kind
	msg  string
}

func (e *Error) Error() string { return e.msg }

// Invalid marks a validation failure; nothing was persisted.
func Invalid(format string, args ...any) error {
	return &Error{kind: kindValidation, msg: fmt.Sprintf(format, args...)}
}

// Precondition marks a flow precondition failure that is terminal for the
// flow (e.g. discharging a bed with no admission date).
func Precondition(format string, args ...any) error {
	return &Error{kind: kindPrecondition, msg: fmt.Sprintf(format, args...)}
}

// NotFound marks a missing record.
func NotFound(format string, args ...any) error {
	return &Error{kind: kindNotFound, msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.kind == kindValidation
}

// HTTP converts a service error into an echo.HTTPError with the right status.
func HTTP(err error) *echo.HTTPError {
	var e *Error
	if errors.As(err, &e) {
		switch e.kind {
		case kindValidation:
			return echo.NewHTTPError(http.StatusBadRequest, e.msg)
		case kindPrecondition:
			return echo.NewHTTPError(http.StatusConflict, e.msg)
		case kindNotFound:
			return echo.NewHTTPError(http.StatusNotFound, e.msg)
		}
	}

	if errors.Is(err, gateway.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "record not found")
	}
	var se *gateway.StatusError
	if errors.As(err, &se) {
		return echo.NewHTTPError(http.StatusBadGateway, "upstream service unavailable")
	}
	return echo.NewHTTPError(http.StatusBadGateway, "upstream service unavailable")
}
