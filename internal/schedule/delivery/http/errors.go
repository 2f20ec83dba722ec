package http

import (
	"smart-todo/internal/schedule"
	pkgErrors "smart-todo/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case schedule.ErrInvalidDate:
		return pkgErrors.NewHTTPError(400, "date must be a valid YYYY-MM-DD value")
	default:
		return pkgErrors.NewHTTPError(500, "something went wrong")
	}
}
