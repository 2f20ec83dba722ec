package repository

import (
	"time"

	"smart-todo/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	UserID            string
	Title             string
	Description       string
	Priority          int
	Status            model.TaskStatus
	Deadline          *time.Time
	AIReasoning       string
	CategoryIDs       []string
	EstimatedDuration *time.Duration
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
// All non-empty fields are applied as AND conditions.
type GetOneTaskOptions struct {
	ID     string
	UserID string
}

// ListTasksOptions holds filter and pagination parameters for listing Tasks.
type ListTasksOptions struct {
	UserID       string
	Statuses     []model.TaskStatus
	Priority     int
	DeadlineFrom *time.Time
	DeadlineTo   *time.Time
	Search       string
	Limit        int
	Offset       int
	OrderBy      string
}

// UpdateTaskOptions holds parameters for a user-driven task update.
// Nil pointer fields are left unchanged.
type UpdateTaskOptions struct {
	ID     string
	UserID string

	Title             *string
	Description       *string
	Priority          *int
	Status            *model.TaskStatus
	Deadline          *time.Time
	ClearDeadline     bool
	CompletedAt       *time.Time
	ClearCompletedAt  bool
	ContextTags       []string
	EstimatedDuration *time.Duration
	ActualDuration    *time.Duration
}

// UpdateTaskEnrichmentOptions holds the enrichment-workflow merge payload.
type UpdateTaskEnrichmentOptions struct {
	ID     string
	UserID string

	Title                 string
	AIEnhancedDescription string
	Priority              int
	AISuggestedPriority   int
	Deadline              *time.Time
	AISuggestedDeadline   *time.Time
	AIReasoning           string
	ContextTags           []string
}

// TaskStatsCounts are aggregate counters for the user-facing stats endpoint.
type TaskStatsCounts struct {
	Total        int
	Completed    int
	Pending      int
	InProgress   int
	HighPriority int
	Overdue      int

	// AvgCompletionHours averages completed_at - created_at over completed
	// tasks, in hours. Zero when none are completed.
	AvgCompletionHours float64
}

// TaskLoadCounts are the workload counters fed into the enrichment prompt.
type TaskLoadCounts struct {
	Total        int
	HighPriority int
	Upcoming     int // deadline within the next 7 days
}
