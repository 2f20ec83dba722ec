package schedule

import (
	"time"

	"smart-todo/internal/model"
)

// GenerateInput drives one synchronous schedule run for a single day.
// Events are already-committed calendar events the suggestions must
// avoid; when empty, integrated-calendar events may be used instead.
type GenerateInput struct {
	Date   time.Time
	Events []model.CalendarEvent
}

// GenerateOutput carries the replaced suggestion set for the day.
type GenerateOutput struct {
	Date        time.Time
	Suggestions []model.TimeBlockSuggestion
}

// ListOutput carries the stored suggestions for one day.
type ListOutput struct {
	Date        time.Time
	Suggestions []model.TimeBlockSuggestion
}
