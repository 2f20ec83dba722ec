package http

import (
	"errors"

	"smart-todo/internal/recommendation"
	pkgErrors "smart-todo/pkg/errors"
)

var errIDRequired = errors.New("id is required")

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case recommendation.ErrRecommendationNotFound:
		return pkgErrors.NewHTTPError(404, "recommendation not found")
	case recommendation.ErrAlreadyActed:
		return pkgErrors.NewHTTPError(409, "recommendation was already accepted or dismissed")
	default:
		return pkgErrors.NewHTTPError(500, "something went wrong")
	}
}
