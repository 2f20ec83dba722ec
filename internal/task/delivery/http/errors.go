package http

import (
	"errors"

	"smart-todo/internal/task"
	pkgErrors "smart-todo/pkg/errors"
)

var errIDRequired = errors.New("id is required")

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case task.ErrTaskNotFound:
		return pkgErrors.NewHTTPError(404, "task not found")
	case task.ErrCategoryNotFound:
		return pkgErrors.NewHTTPError(400, "unknown category")
	case task.ErrEmptyCategoryName:
		return pkgErrors.NewHTTPError(400, "category name is required")
	case task.ErrEmptyTitle:
		return pkgErrors.NewHTTPError(400, "title is required")
	case task.ErrInvalidPriority:
		return pkgErrors.NewHTTPError(400, "priority must be between 1 (high) and 3 (low)")
	case task.ErrInvalidStatus:
		return pkgErrors.NewHTTPError(400, "invalid task status")
	default:
		return pkgErrors.NewHTTPError(500, "something went wrong")
	}
}
