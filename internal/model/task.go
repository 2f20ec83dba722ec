package model

import "time"

// Task priority levels. Lower is more urgent.
const (
	PriorityHigh   = 1
	PriorityMedium = 2
	PriorityLow    = 3
)

// Task status values.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

// ValidTaskStatus reports whether s is a known task status.
func ValidTaskStatus(s TaskStatus) bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return true
	}
	return false
}

// ValidPriority reports whether p is in the 1..3 range.
func ValidPriority(p int) bool {
	return p >= PriorityHigh && p <= PriorityLow
}

// Task is the central work item, carrying both user-provided fields and
// AI-produced enrichment fields. The user's original description is kept
// in Description; enrichment writes only to the AI* fields, Title and
// Priority.
type Task struct {
	ID          string
	UserID      string
	Title       string
	Description string

	Priority int
	Status   TaskStatus

	Deadline    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time

	AISuggestedPriority   *int
	AISuggestedDeadline   *time.Time
	AIReasoning           string
	AIEnhancedDescription string

	CategoryIDs []string
	ContextTags []string

	EstimatedDuration *time.Duration
	ActualDuration    *time.Duration
}

// IsOverdue reports whether the task has a deadline in the past and is not completed.
func (t Task) IsOverdue(now time.Time) bool {
	return t.Deadline != nil && t.Status != TaskStatusCompleted && now.After(*t.Deadline)
}

// TaskCategory is a named label shared across tasks, created lazily by name.
type TaskCategory struct {
	ID          string
	Name        string
	Color       string
	Description string
	CreatedAt   time.Time
}

// DefaultCategoryColor matches the original UI default.
const DefaultCategoryColor = "#3B82F6"
