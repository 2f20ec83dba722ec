package repository

import (
	"context"

	"smart-todo/internal/model"
)

// Repository defines all data access methods for the ContextEntry entity.
type Repository interface {
	CreateEntry(ctx context.Context, opt CreateEntryOptions) (model.ContextEntry, error)

	// GetOneEntry returns the zero-value ContextEntry (ID == "") when not found.
	GetOneEntry(ctx context.Context, opt GetOneEntryOptions) (model.ContextEntry, error)

	ListEntries(ctx context.Context, opt ListEntriesOptions) ([]model.ContextEntry, int, error)

	// ListRecentEntries returns the user's most recent entries ordered by
	// entry_date then created_at, newest first. Feeds the AI prompts.
	ListRecentEntries(ctx context.Context, userID string, limit int) ([]model.ContextEntry, error)

	// UpdateEntryAnalysis overwrites all extracted fields in one statement.
	UpdateEntryAnalysis(ctx context.Context, opt UpdateEntryAnalysisOptions) (model.ContextEntry, error)

	DeleteEntry(ctx context.Context, id, userID string) error
}
