package http

import (
	"time"

	"smart-todo/internal/model"
	"smart-todo/internal/schedule"
)

const dateLayout = "2006-01-02"

// --- Request DTOs ---

type eventReq struct {
	Title     string    `json:"title"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time"   binding:"required"`
}

type generateReq struct {
	Date           string     `json:"date" binding:"required"`
	ExistingEvents []eventReq `json:"existing_events"`
}

func (r generateReq) toInput() (schedule.GenerateInput, error) {
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return schedule.GenerateInput{}, schedule.ErrInvalidDate
	}

	events := make([]model.CalendarEvent, len(r.ExistingEvents))
	for i, e := range r.ExistingEvents {
		events[i] = model.CalendarEvent{
			Title:     e.Title,
			StartTime: e.StartTime,
			EndTime:   e.EndTime,
		}
	}
	return schedule.GenerateInput{Date: date, Events: events}, nil
}

type listReq struct {
	Date string `form:"date"`
}

func (r listReq) toInput() (schedule.GenerateInput, error) {
	if r.Date == "" {
		return schedule.GenerateInput{Date: time.Now().UTC().Truncate(24 * time.Hour)}, nil
	}
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return schedule.GenerateInput{}, schedule.ErrInvalidDate
	}
	return schedule.GenerateInput{Date: date}, nil
}

// --- Response DTOs ---

type suggestionResp struct {
	ID                 string    `json:"id"`
	TaskID             string    `json:"task_id"`
	SuggestedStartTime time.Time `json:"suggested_start_time"`
	SuggestedEndTime   time.Time `json:"suggested_end_time"`
	Reasoning          string    `json:"reasoning,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

func newSuggestionResp(s model.TimeBlockSuggestion) suggestionResp {
	return suggestionResp{
		ID:                 s.ID,
		TaskID:             s.TaskID,
		SuggestedStartTime: s.SuggestedStartTime,
		SuggestedEndTime:   s.SuggestedEndTime,
		Reasoning:          s.Reasoning,
		CreatedAt:          s.CreatedAt,
	}
}

type scheduleResp struct {
	Date        string           `json:"date"`
	Suggestions []suggestionResp `json:"suggestions"`
}

func newScheduleResp(date time.Time, suggestions []model.TimeBlockSuggestion) scheduleResp {
	resp := scheduleResp{
		Date:        date.Format(dateLayout),
		Suggestions: make([]suggestionResp, len(suggestions)),
	}
	for i, s := range suggestions {
		resp.Suggestions[i] = newSuggestionResp(s)
	}
	return resp
}

func (h *handler) newGenerateResp(out schedule.GenerateOutput) scheduleResp {
	return newScheduleResp(out.Date, out.Suggestions)
}

func (h *handler) newListResp(out schedule.ListOutput) scheduleResp {
	return newScheduleResp(out.Date, out.Suggestions)
}
