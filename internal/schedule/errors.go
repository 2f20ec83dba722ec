package schedule

import "errors"

// Domain-specific errors for the schedule package.
var (
	ErrInvalidDate = errors.New("invalid schedule date")
)
