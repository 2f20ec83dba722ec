package repository

import (
	"context"

	"smart-todo/internal/model"
)

// Repository is the composed interface for the task domain data store.
type Repository interface {
	TaskRepository
	CategoryRepository
}

// TaskRepository defines all data access methods for the Task entity.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)

	// GetOneTask returns the zero-value Task (ID == "") when not found.
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)

	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, int, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)

	// UpdateTaskEnrichment overwrites only the AI-owned fields plus the
	// operative title/priority/deadline in a single statement, so a
	// re-run of the same job converges to the same stored state.
	UpdateTaskEnrichment(ctx context.Context, opt UpdateTaskEnrichmentOptions) (model.Task, error)

	DeleteTask(ctx context.Context, id, userID string) error

	// CountTaskLoad returns the workload counters the enrichment prompt needs.
	CountTaskLoad(ctx context.Context, userID string) (TaskLoadCounts, error)

	// CountTaskStats returns aggregate counters over all of the user's tasks.
	CountTaskStats(ctx context.Context, userID string) (TaskStatsCounts, error)
}

// CategoryRepository defines data access for TaskCategory and the
// task-category attachment set.
type CategoryRepository interface {
	// GetOrCreateCategory resolves a category by unique name, creating it
	// with default color when absent. Safe to call concurrently.
	GetOrCreateCategory(ctx context.Context, name string) (model.TaskCategory, error)

	ListCategories(ctx context.Context) ([]model.TaskCategory, map[string]int, error)
	ListPopularCategories(ctx context.Context, limit int) ([]model.TaskCategory, map[string]int, error)

	// AttachCategories adds category attachments to a task; existing
	// attachments are kept, duplicates are ignored.
	AttachCategories(ctx context.Context, taskID string, categoryIDs []string) error

	ListTaskCategories(ctx context.Context, taskID string) ([]model.TaskCategory, error)
}
