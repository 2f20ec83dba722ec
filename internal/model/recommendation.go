package model

import "time"

// TaskRecommendation is a proactive task suggestion produced by the
// recommendation workflow. Unacted recommendations are superseded
// (deleted) by the next run; accepted or dismissed ones are immutable
// history.
type TaskRecommendation struct {
	ID     string
	UserID string

	Title             string
	Description       string
	SuggestedPriority int
	SuggestedDeadline *time.Time

	Reasoning       string
	ConfidenceScore float64

	BasedOnContext      []string // ContextEntry IDs the suggestion was derived from
	SuggestedCategories []string // category names, resolved lazily on accept

	IsAccepted    bool
	IsDismissed   bool
	CreatedTaskID *string

	CreatedAt time.Time
}

// DefaultConfidenceScore is used when the model omits a confidence value.
const DefaultConfidenceScore = 0.75
