package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"smart-todo/internal/model"
)

func TestProcessTask(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	baseTask := model.Task{
		ID:          "task-1",
		UserID:      "user-1",
		Title:       "fix bug",
		Description: "",
		Priority:    model.PriorityLow,
		Status:      model.TaskStatusPending,
	}

	t.Run("reasoning failure echoes original fields with fixed reasoning", func(t *testing.T) {
		tr := newFakeTaskRepo(baseTask)
		uc := newTestUseCase(tr, newFakeContextRepo(), &fakeRecRepo{}, &fakeSchedRepo{}, &stubReasoner{err: errors.New("service unavailable")}, nil)

		if err := uc.ProcessTask(ctx, sc, "task-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := tr.tasks["task-1"]
		if got.Title != "fix bug" {
			t.Errorf("title = %q, want original", got.Title)
		}
		if got.Priority != model.PriorityLow {
			t.Errorf("priority = %d, want original", got.Priority)
		}
		if got.Deadline != nil {
			t.Error("deadline must stay absent on fallback")
		}
		if got.AIReasoning != fallbackReasoning {
			t.Errorf("reasoning = %q, want fixed fallback string", got.AIReasoning)
		}
		if len(got.ContextTags) != 0 || len(tr.attached["task-1"]) != 0 {
			t.Error("fallback must leave tags and categories empty")
		}
	})

	t.Run("successful enrichment merges all fields", func(t *testing.T) {
		tr := newFakeTaskRepo(baseTask)
		r := &stubReasoner{objects: []map[string]any{{
			"title":                "Fix login-page crash",
			"enhanced_description": "Crash on empty password field, reported twice this week",
			"priority":             float64(1),
			"deadline":             "2026-09-01T17:00:00Z",
			"suggested_categories": []any{"Work", "Bugs"},
			"context_tags":         []any{"login", "crash"},
			"reasoning":            "Mentioned in two recent emails",
		}}}
		uc := newTestUseCase(tr, newFakeContextRepo(), &fakeRecRepo{}, &fakeSchedRepo{}, r, nil)

		if err := uc.ProcessTask(ctx, sc, "task-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := tr.tasks["task-1"]
		if got.Title != "Fix login-page crash" {
			t.Errorf("title = %q", got.Title)
		}
		if got.Priority != model.PriorityHigh {
			t.Errorf("priority = %d, want AI priority to become operative", got.Priority)
		}
		if got.AISuggestedPriority == nil || *got.AISuggestedPriority != model.PriorityHigh {
			t.Error("ai_suggested_priority not recorded")
		}
		if got.Deadline == nil || !got.Deadline.Equal(time.Date(2026, 9, 1, 17, 0, 0, 0, time.UTC)) {
			t.Errorf("deadline = %v", got.Deadline)
		}
		if got.AIEnhancedDescription == "" || got.AIReasoning == "" {
			t.Error("enhanced description and reasoning must be stored")
		}
		if len(got.ContextTags) != 2 {
			t.Errorf("context tags = %v", got.ContextTags)
		}
		if len(tr.attached["task-1"]) != 2 {
			t.Errorf("attached categories = %v, want 2 resolved", tr.attached["task-1"])
		}
		if _, ok := tr.categories["Work"]; !ok {
			t.Error("category Work not lazily created")
		}
	})

	t.Run("invalid deadline is dropped, rest of result kept", func(t *testing.T) {
		tr := newFakeTaskRepo(baseTask)
		r := &stubReasoner{objects: []map[string]any{{
			"title":    "Fix bug",
			"priority": float64(2),
			"deadline": "next Tuesday-ish",
		}}}
		uc := newTestUseCase(tr, newFakeContextRepo(), &fakeRecRepo{}, &fakeSchedRepo{}, r, nil)

		if err := uc.ProcessTask(ctx, sc, "task-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := tr.tasks["task-1"]
		if got.Deadline != nil {
			t.Errorf("deadline = %v, want absent for unparseable value", got.Deadline)
		}
		if got.Priority != model.PriorityMedium {
			t.Errorf("priority = %d, rest of result must be kept", got.Priority)
		}
	})

	t.Run("out-of-range priority falls back to original", func(t *testing.T) {
		tr := newFakeTaskRepo(baseTask)
		r := &stubReasoner{objects: []map[string]any{{"priority": float64(9)}}}
		uc := newTestUseCase(tr, newFakeContextRepo(), &fakeRecRepo{}, &fakeSchedRepo{}, r, nil)

		if err := uc.ProcessTask(ctx, sc, "task-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := tr.tasks["task-1"]; got.Priority != model.PriorityLow {
			t.Errorf("priority = %d, want original", got.Priority)
		}
	})

	t.Run("missing task is a logged no-op", func(t *testing.T) {
		r := &stubReasoner{}
		uc := newTestUseCase(newFakeTaskRepo(), newFakeContextRepo(), &fakeRecRepo{}, &fakeSchedRepo{}, r, nil)

		if err := uc.ProcessTask(ctx, sc, "gone"); err != nil {
			t.Fatalf("missing task must not error: %v", err)
		}
		if len(r.calls) != 0 {
			t.Error("no reasoning call should be made for a missing task")
		}
	})

	t.Run("another user's task is invisible", func(t *testing.T) {
		tr := newFakeTaskRepo(baseTask)
		uc := newTestUseCase(tr, newFakeContextRepo(), &fakeRecRepo{}, &fakeSchedRepo{}, &stubReasoner{}, nil)

		if err := uc.ProcessTask(ctx, model.Scope{UserID: "user-2"}, "task-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := tr.tasks["task-1"]; got.AIReasoning != "" {
			t.Error("cross-owner job must not touch the task")
		}
	})

	t.Run("reasoning call carries workflow parameters", func(t *testing.T) {
		tr := newFakeTaskRepo(baseTask)
		r := &stubReasoner{objects: []map[string]any{{}}}
		uc := newTestUseCase(tr, newFakeContextRepo(), &fakeRecRepo{}, &fakeSchedRepo{}, r, nil)

		if err := uc.ProcessTask(ctx, sc, "task-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(r.calls) != 1 {
			t.Fatalf("reasoning calls = %d, want exactly 1", len(r.calls))
		}
		call := r.calls[0]
		if call.Temperature != enrichTaskTemperature || call.MaxTokens != enrichTaskMaxTokens {
			t.Errorf("call = %+v", call)
		}
	})
}

func TestParseISOTimestamp(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2026-09-01T17:00:00Z", true},
		{"2026-09-01T17:00:00+07:00", true},
		{"2026-09-01T17:00:00", true},
		{"2026-09-01", true},
		{"next Friday", false},
		{"", false},
		{"2026-99-01T17:00:00Z", false},
	}
	for _, c := range cases {
		if _, ok := parseISOTimestamp(c.in); ok != c.ok {
			t.Errorf("parseISOTimestamp(%q) ok = %v, want %v", c.in, ok, c.ok)
		}
	}
}
