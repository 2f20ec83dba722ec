package repository

import (
	"time"

	"smart-todo/internal/model"
)

// CreateEntryOptions holds parameters for inserting a new ContextEntry.
type CreateEntryOptions struct {
	UserID    string
	Content   string
	EntryType model.EntryType
	EntryDate time.Time
	Source    string

	// ImportanceScore seeds the pre-analysis neutral score.
	ImportanceScore float64
}

// GetOneEntryOptions holds filter parameters for fetching a single entry.
// All non-empty fields are applied as AND conditions.
type GetOneEntryOptions struct {
	ID     string
	UserID string
}

// ListEntriesOptions holds filter and pagination parameters.
type ListEntriesOptions struct {
	UserID    string
	EntryType model.EntryType
	DateFrom  *time.Time
	DateTo    *time.Time
	Search    string
	Limit     int
	Offset    int
}

// UpdateEntryAnalysisOptions holds the analysis-workflow result payload.
// All seven fields overwrite the stored values wholesale, so the latest
// analysis always wins regardless of how many times the job re-runs.
type UpdateEntryAnalysisOptions struct {
	ID     string
	UserID string

	ImportanceScore    float64
	Sentiment          model.Sentiment
	Summary            string
	Keywords           []string
	ExtractedTasks     []string
	ExtractedDeadlines []string
	ExtractedPeople    []string
}
