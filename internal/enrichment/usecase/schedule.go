package usecase

import (
	"context"
	"time"

	"smart-todo/internal/enrichment/reasoner"
	"smart-todo/internal/model"
	"smart-todo/internal/schedule"
	schedRepo "smart-todo/internal/schedule/repository"
	taskRepo "smart-todo/internal/task/repository"
	"smart-todo/pkg/gcalendar"
)

const (
	scheduleTemperature = 0.3
	scheduleMaxTokens   = 1200

	// calendarEventLimit caps events fetched from an integrated calendar.
	calendarEventLimit = 50
)

// GenerateSchedule replaces the user's time-block suggestions for one
// day with a fresh, validated batch and returns it. Suggestions naming
// unknown tasks or carrying unparseable timestamps are dropped; the
// rest of the batch still lands.
func (uc *implUseCase) GenerateSchedule(ctx context.Context, sc model.Scope, input schedule.GenerateInput) (schedule.GenerateOutput, error) {
	if input.Date.IsZero() {
		return schedule.GenerateOutput{}, schedule.ErrInvalidDate
	}

	pending, _, err := uc.taskRepo.ListTasks(ctx, taskRepo.ListTasksOptions{
		UserID:   sc.UserID,
		Statuses: []model.TaskStatus{model.TaskStatusPending, model.TaskStatusInProgress},
		Limit:    activeTaskPageLimit,
	})
	if err != nil {
		return schedule.GenerateOutput{}, err
	}

	events := input.Events
	if len(events) == 0 && uc.calendar != nil {
		events = uc.fetchCalendarEvents(ctx, input.Date)
	}

	batch := uc.scheduleSuggestions(ctx, sc, pending, input.Date, events)

	created, err := uc.schedRepo.ReplaceForDate(ctx, sc.UserID, input.Date, batch)
	if err != nil {
		return schedule.GenerateOutput{}, err
	}

	uc.l.Infof(ctx, "enrichment: generated %d schedule suggestions for user %s on %s",
		len(created), sc.UserID, input.Date.Format("2006-01-02"))
	return schedule.GenerateOutput{Date: input.Date, Suggestions: created}, nil
}

// ListSchedule returns the stored suggestions for one day.
func (uc *implUseCase) ListSchedule(ctx context.Context, sc model.Scope, input schedule.GenerateInput) (schedule.ListOutput, error) {
	if input.Date.IsZero() {
		return schedule.ListOutput{}, schedule.ErrInvalidDate
	}
	suggestions, err := uc.schedRepo.ListForDate(ctx, sc.UserID, input.Date)
	if err != nil {
		return schedule.ListOutput{}, err
	}
	return schedule.ListOutput{Date: input.Date, Suggestions: suggestions}, nil
}

// fetchCalendarEvents loads the day's committed events from the
// integrated calendar. Failures degrade to no events; a schedule run
// never fails over the calendar.
func (uc *implUseCase) fetchCalendarEvents(ctx context.Context, date time.Time) []model.CalendarEvent {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	items, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.cfg.CalendarID,
		TimeMin:    dayStart,
		TimeMax:    dayStart.AddDate(0, 0, 1),
		MaxResults: calendarEventLimit,
	})
	if err != nil {
		uc.l.Warnf(ctx, "enrichment: calendar fetch failed for %s: %v", date.Format("2006-01-02"), err)
		return nil
	}

	events := make([]model.CalendarEvent, 0, len(items))
	for _, item := range items {
		events = append(events, model.CalendarEvent{
			Title:     item.Summary,
			StartTime: item.StartTime,
			EndTime:   item.EndTime,
		})
	}
	return events
}

// scheduleSuggestions runs the reasoning call and validates each
// suggestion. Never fails: a reasoning error yields an empty batch.
func (uc *implUseCase) scheduleSuggestions(ctx context.Context, sc model.Scope, pending []model.Task, date time.Time, events []model.CalendarEvent) []schedRepo.CreateSuggestionOptions {
	obj, err := uc.reasoner.Complete(ctx, reasoner.Call{
		Instruction: scheduleInstruction,
		Prompt:      buildSchedulePrompt(pending, date, events, uc.cfg.WorkHours),
		Temperature: scheduleTemperature,
		MaxTokens:   scheduleMaxTokens,
	})
	if err != nil {
		uc.l.Errorf(ctx, "enrichment: reasoning failed for schedule (user %s): %v", sc.UserID, err)
		return nil
	}

	ownedTasks := make(map[string]bool, len(pending))
	for _, t := range pending {
		ownedTasks[t.ID] = true
	}

	raw := reasoner.Objects(obj, "suggestions")
	batch := make([]schedRepo.CreateSuggestionOptions, 0, len(raw))
	for _, item := range raw {
		taskID := reasoner.Str(item, "task_id", "")
		if !ownedTasks[taskID] {
			uc.l.Warnf(ctx, "enrichment: schedule suggestion names unknown task %q for user %s, dropping", taskID, sc.UserID)
			continue
		}

		start, okStart := parseISOTimestamp(reasoner.Str(item, "suggested_start_time", ""))
		end, okEnd := parseISOTimestamp(reasoner.Str(item, "suggested_end_time", ""))
		if !okStart || !okEnd || !start.Before(end) {
			uc.l.Warnf(ctx, "enrichment: schedule suggestion for task %s has invalid time range, dropping", taskID)
			continue
		}

		batch = append(batch, schedRepo.CreateSuggestionOptions{
			UserID:             sc.UserID,
			TaskID:             taskID,
			SuggestedStartTime: start,
			SuggestedEndTime:   end,
			Reasoning:          reasoner.Str(item, "reasoning", ""),
		})
	}
	return batch
}
