package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"smart-todo/internal/model"
	"smart-todo/internal/schedule"
	"smart-todo/pkg/gcalendar"
)

func TestGenerateSchedule(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}
	dateD := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)
	dateD2 := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)

	pendingTasks := []model.Task{
		{ID: "t1", UserID: "user-1", Title: "Write report", Priority: 1, Status: model.TaskStatusPending},
		{ID: "t2", UserID: "user-1", Title: "Review PR", Priority: 2, Status: model.TaskStatusInProgress},
	}

	block := func(taskID, start, end string) map[string]any {
		return map[string]any{
			"task_id":              taskID,
			"suggested_start_time": start,
			"suggested_end_time":   end,
			"reasoning":            "focus block",
		}
	}

	t.Run("replaces suggestions for the date, other dates untouched", func(t *testing.T) {
		sr := &fakeSchedRepo{suggestions: []model.TimeBlockSuggestion{
			{ID: "old-1", UserID: "user-1", TaskID: "t1", SuggestedStartTime: dateD.Add(9 * time.Hour)},
			{ID: "old-2", UserID: "user-1", TaskID: "t1", SuggestedStartTime: dateD.Add(11 * time.Hour)},
			{ID: "old-3", UserID: "user-1", TaskID: "t2", SuggestedStartTime: dateD.Add(14 * time.Hour)},
			{ID: "d2-1", UserID: "user-1", TaskID: "t1", SuggestedStartTime: dateD2.Add(9 * time.Hour)},
			{ID: "d2-2", UserID: "user-1", TaskID: "t2", SuggestedStartTime: dateD2.Add(13 * time.Hour)},
		}}
		r := &stubReasoner{objects: []map[string]any{{
			"suggestions": []any{
				block("t1", "2026-09-03T09:00:00Z", "2026-09-03T11:00:00Z"),
				block("t2", "2026-09-03T13:00:00Z", "2026-09-03T14:00:00Z"),
			},
		}}}
		uc := newTestUseCase(newFakeTaskRepo(pendingTasks...), newFakeContextRepo(), &fakeRecRepo{}, sr, r, nil)

		out, err := uc.GenerateSchedule(ctx, sc, schedule.GenerateInput{Date: dateD})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Suggestions) != 2 {
			t.Fatalf("returned %d suggestions, want 2", len(out.Suggestions))
		}

		stored, _ := sr.ListForDate(ctx, "user-1", dateD)
		if len(stored) != 2 {
			t.Errorf("date D holds %d suggestions, want only the new 2", len(stored))
		}
		otherDay, _ := sr.ListForDate(ctx, "user-1", dateD2)
		if len(otherDay) != 2 {
			t.Errorf("date D2 holds %d suggestions, want both untouched", len(otherDay))
		}
	})

	t.Run("suggestion naming a foreign task is dropped, rest stored", func(t *testing.T) {
		sr := &fakeSchedRepo{}
		r := &stubReasoner{objects: []map[string]any{{
			"suggestions": []any{
				block("someone-elses-task", "2026-09-03T09:00:00Z", "2026-09-03T10:00:00Z"),
				block("t1", "2026-09-03T10:00:00Z", "2026-09-03T12:00:00Z"),
			},
		}}}
		uc := newTestUseCase(newFakeTaskRepo(pendingTasks...), newFakeContextRepo(), &fakeRecRepo{}, sr, r, nil)

		out, err := uc.GenerateSchedule(ctx, sc, schedule.GenerateInput{Date: dateD})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Suggestions) != 1 || out.Suggestions[0].TaskID != "t1" {
			t.Errorf("suggestions = %+v, want only the owned task", out.Suggestions)
		}
	})

	t.Run("invalid timestamps and inverted ranges are dropped", func(t *testing.T) {
		sr := &fakeSchedRepo{}
		r := &stubReasoner{objects: []map[string]any{{
			"suggestions": []any{
				block("t1", "mid-morning", "2026-09-03T10:00:00Z"),
				block("t1", "2026-09-03T12:00:00Z", "2026-09-03T10:00:00Z"),
				block("t2", "2026-09-03T10:00:00Z", "2026-09-03T11:00:00Z"),
			},
		}}}
		uc := newTestUseCase(newFakeTaskRepo(pendingTasks...), newFakeContextRepo(), &fakeRecRepo{}, sr, r, nil)

		out, err := uc.GenerateSchedule(ctx, sc, schedule.GenerateInput{Date: dateD})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Suggestions) != 1 || out.Suggestions[0].TaskID != "t2" {
			t.Errorf("suggestions = %+v, want only the valid block", out.Suggestions)
		}
	})

	t.Run("reasoning failure clears the date and stores nothing", func(t *testing.T) {
		sr := &fakeSchedRepo{suggestions: []model.TimeBlockSuggestion{
			{ID: "old-1", UserID: "user-1", TaskID: "t1", SuggestedStartTime: dateD.Add(9 * time.Hour)},
		}}
		uc := newTestUseCase(newFakeTaskRepo(pendingTasks...), newFakeContextRepo(), &fakeRecRepo{}, sr, &stubReasoner{err: errors.New("down")}, nil)

		out, err := uc.GenerateSchedule(ctx, sc, schedule.GenerateInput{Date: dateD})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Suggestions) != 0 {
			t.Errorf("suggestions = %+v, want none", out.Suggestions)
		}
		stored, _ := sr.ListForDate(ctx, "user-1", dateD)
		if len(stored) != 0 {
			t.Error("stale suggestions must still be cleared")
		}
	})

	t.Run("zero date is rejected", func(t *testing.T) {
		uc := newTestUseCase(newFakeTaskRepo(), newFakeContextRepo(), &fakeRecRepo{}, &fakeSchedRepo{}, &stubReasoner{}, nil)

		if _, err := uc.GenerateSchedule(ctx, sc, schedule.GenerateInput{}); !errors.Is(err, schedule.ErrInvalidDate) {
			t.Errorf("err = %v, want ErrInvalidDate", err)
		}
	})

	t.Run("caller events suppress the calendar fetch", func(t *testing.T) {
		cal := &fakeCalendar{}
		r := &stubReasoner{objects: []map[string]any{{}}}
		uc := newTestUseCase(newFakeTaskRepo(pendingTasks...), newFakeContextRepo(), &fakeRecRepo{}, &fakeSchedRepo{}, r, cal)

		input := schedule.GenerateInput{
			Date: dateD,
			Events: []model.CalendarEvent{
				{Title: "Standup", StartTime: dateD.Add(9 * time.Hour), EndTime: dateD.Add(10 * time.Hour)},
			},
		}
		if _, err := uc.GenerateSchedule(ctx, sc, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cal.calls != 0 {
			t.Error("calendar must not be queried when the caller supplies events")
		}
	})

	t.Run("integrated calendar fills missing events", func(t *testing.T) {
		cal := &fakeCalendar{events: []gcalendar.Event{
			{Summary: "1:1", StartTime: dateD.Add(10 * time.Hour), EndTime: dateD.Add(11 * time.Hour)},
		}}
		r := &stubReasoner{objects: []map[string]any{{}}}
		uc := newTestUseCase(newFakeTaskRepo(pendingTasks...), newFakeContextRepo(), &fakeRecRepo{}, &fakeSchedRepo{}, r, cal)

		if _, err := uc.GenerateSchedule(ctx, sc, schedule.GenerateInput{Date: dateD}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cal.calls != 1 {
			t.Errorf("calendar calls = %d, want 1", cal.calls)
		}
		if !strings.Contains(r.calls[0].Prompt, "1:1") {
			t.Error("calendar event missing from prompt")
		}
	})
}
