package repository

import "time"

// CreateSuggestionOptions holds one time-block row for batch insert.
type CreateSuggestionOptions struct {
	UserID string
	TaskID string

	SuggestedStartTime time.Time
	SuggestedEndTime   time.Time
	Reasoning          string
}
