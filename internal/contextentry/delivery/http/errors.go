package http

import (
	"errors"

	"smart-todo/internal/contextentry"
	pkgErrors "smart-todo/pkg/errors"
)

var errIDRequired = errors.New("id is required")

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case contextentry.ErrEntryNotFound:
		return pkgErrors.NewHTTPError(404, "context entry not found")
	case contextentry.ErrEmptyContent:
		return pkgErrors.NewHTTPError(400, "content is required")
	case contextentry.ErrInvalidEntryType:
		return pkgErrors.NewHTTPError(400, "invalid entry type")
	default:
		return pkgErrors.NewHTTPError(500, "something went wrong")
	}
}
