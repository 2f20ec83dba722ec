package model

import "time"

// TimeBlockSuggestion is an AI-proposed time block scheduling one task on
// a specific day. All suggestions for a user+date are replaced on each
// schedule run. Invariant: SuggestedStartTime < SuggestedEndTime.
type TimeBlockSuggestion struct {
	ID     string
	UserID string
	TaskID string

	SuggestedStartTime time.Time
	SuggestedEndTime   time.Time
	Reasoning          string

	CreatedAt time.Time
}

// CalendarEvent is an already-committed event supplied by the caller (or
// fetched from an integrated calendar) that schedule suggestions should
// avoid overlapping.
type CalendarEvent struct {
	Title     string
	StartTime time.Time
	EndTime   time.Time
}
