package task

import (
	"time"

	"smart-todo/internal/model"
)

// --- UseCase Inputs ---

type CreateTaskInput struct {
	Title             string
	Description       string
	Priority          int
	Deadline          *time.Time
	CategoryIDs       []string
	EstimatedDuration *time.Duration
}

type ListTasksInput struct {
	Statuses     []model.TaskStatus
	Priority     int // 0 = any
	DeadlineFrom *time.Time
	DeadlineTo   *time.Time
	Search       string
	Limit        int
	Offset       int
	OrderBy      string
}

type UpdateTaskInput struct {
	ID                string
	Title             *string
	Description       *string
	Priority          *int
	Status            *model.TaskStatus
	Deadline          *time.Time
	ClearDeadline     bool
	CategoryIDs       []string
	EstimatedDuration *time.Duration
	ActualDuration    *time.Duration
}

type CreateCategoryInput struct {
	Name string
}

// --- UseCase Outputs ---

type CreateTaskOutput struct {
	Task model.Task
}

type ListTasksOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

type DetailTaskOutput struct {
	Task       model.Task
	Categories []model.TaskCategory
}

type UpdateTaskOutput struct {
	Task model.Task
}

// StatsOutput summarizes the user's workload.
type StatsOutput struct {
	TotalTasks        int
	CompletedTasks    int
	PendingTasks      int
	InProgressTasks   int
	HighPriorityTasks int
	OverdueTasks      int
	CompletionRate    float64
	AvgCompletionTime float64 // hours
}

// CategoryOutput wraps a category with its task count.
type CategoryOutput struct {
	Category  model.TaskCategory
	TaskCount int
}
