package repository

import (
	"context"
	"time"

	"smart-todo/internal/model"
)

// Repository defines all data access methods for TimeBlockSuggestion.
// Suggestion sets are day-scoped: a run for one date never touches
// another date's rows.
type Repository interface {
	// ReplaceForDate removes the user's suggestions whose start time
	// falls on the given day and inserts the replacement batch in the
	// same transaction. An empty batch clears the day.
	ReplaceForDate(ctx context.Context, userID string, date time.Time, opts []CreateSuggestionOptions) ([]model.TimeBlockSuggestion, error)

	// ListForDate returns the user's suggestions for the day ordered by
	// start time.
	ListForDate(ctx context.Context, userID string, date time.Time) ([]model.TimeBlockSuggestion, error)
}
