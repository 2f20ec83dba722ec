package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrInvalidPriority  = errors.New("priority must be between 1 (high) and 3 (low)")
	ErrInvalidStatus    = errors.New("invalid task status")
	ErrEmptyTitle       = errors.New("task title is empty")

	ErrEmptyCategoryName = errors.New("category name is empty")
)
