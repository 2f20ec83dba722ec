package contextentry

import "errors"

// Domain-specific errors for the contextentry package.
var (
	ErrEntryNotFound    = errors.New("context entry not found")
	ErrEmptyContent     = errors.New("context entry content is empty")
	ErrInvalidEntryType = errors.New("invalid context entry type")
)
