package usecase

import (
	"context"
	"errors"
	"testing"

	"smart-todo/internal/model"
)

func TestProcessContextEntry(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	entry := model.ContextEntry{
		ID:              "entry-1",
		UserID:          "user-1",
		Content:         "Meeting moved to Friday 3pm with Alice",
		EntryType:       model.EntryTypeMeeting,
		ImportanceScore: model.DefaultImportanceScore,
	}

	t.Run("successful analysis merges all extracted fields", func(t *testing.T) {
		cr := newFakeContextRepo(entry)
		r := &stubReasoner{objects: []map[string]any{{
			"summary":             "The meeting was rescheduled to Friday afternoon.",
			"importance_score":    0.7,
			"sentiment":           "neutral",
			"keywords":            []any{"meeting", "reschedule"},
			"potential_tasks":     []any{"Update calendar invite"},
			"mentioned_deadlines": []any{"Friday 3pm"},
			"mentioned_people":    []any{"Alice"},
		}}}
		uc := newTestUseCase(newFakeTaskRepo(), cr, &fakeRecRepo{}, &fakeSchedRepo{}, r, nil)

		if err := uc.ProcessContextEntry(ctx, sc, "entry-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := cr.entries["entry-1"]
		if len(got.ExtractedPeople) != 1 || got.ExtractedPeople[0] != "Alice" {
			t.Errorf("extracted people = %v, want [Alice]", got.ExtractedPeople)
		}
		if len(got.ExtractedDeadlines) != 1 || got.ExtractedDeadlines[0] != "Friday 3pm" {
			t.Errorf("extracted deadlines = %v, want [Friday 3pm]", got.ExtractedDeadlines)
		}
		if got.ImportanceScore != 0.7 || got.Sentiment != model.SentimentNeutral {
			t.Errorf("score/sentiment = %v/%v", got.ImportanceScore, got.Sentiment)
		}
	})

	t.Run("second analysis wins, no accumulation", func(t *testing.T) {
		cr := newFakeContextRepo(entry)
		r := &stubReasoner{objects: []map[string]any{
			{
				"summary":          "First read.",
				"importance_score": 0.9,
				"sentiment":        "positive",
				"keywords":         []any{"alpha", "beta"},
				"potential_tasks":  []any{"task A", "task B"},
				"mentioned_people": []any{"Alice", "Bob"},
			},
			{
				"summary":          "Second read.",
				"importance_score": 0.2,
				"sentiment":        "negative",
				"keywords":         []any{"gamma"},
				"potential_tasks":  []any{},
				"mentioned_people": []any{"Carol"},
			},
		}}
		uc := newTestUseCase(newFakeTaskRepo(), cr, &fakeRecRepo{}, &fakeSchedRepo{}, r, nil)

		if err := uc.ProcessContextEntry(ctx, sc, "entry-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := uc.ProcessContextEntry(ctx, sc, "entry-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := cr.entries["entry-1"]
		if got.Summary != "Second read." {
			t.Errorf("summary = %q", got.Summary)
		}
		if len(got.Keywords) != 1 || got.Keywords[0] != "gamma" {
			t.Errorf("keywords = %v, want only second run's values", got.Keywords)
		}
		if len(got.ExtractedTasks) != 0 {
			t.Errorf("extracted tasks = %v, want empty from second run", got.ExtractedTasks)
		}
		if len(got.ExtractedPeople) != 1 || got.ExtractedPeople[0] != "Carol" {
			t.Errorf("extracted people = %v", got.ExtractedPeople)
		}
		if got.ImportanceScore != 0.2 || got.Sentiment != model.SentimentNegative {
			t.Errorf("score/sentiment = %v/%v", got.ImportanceScore, got.Sentiment)
		}
	})

	t.Run("reasoning failure stores neutral fallback", func(t *testing.T) {
		cr := newFakeContextRepo(entry)
		uc := newTestUseCase(newFakeTaskRepo(), cr, &fakeRecRepo{}, &fakeSchedRepo{}, &stubReasoner{err: errors.New("timeout")}, nil)

		if err := uc.ProcessContextEntry(ctx, sc, "entry-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := cr.entries["entry-1"]
		if got.Summary != fallbackSummary {
			t.Errorf("summary = %q, want fallback", got.Summary)
		}
		if got.ImportanceScore != model.DefaultImportanceScore || got.Sentiment != model.SentimentNeutral {
			t.Errorf("score/sentiment = %v/%v, want neutral fallback", got.ImportanceScore, got.Sentiment)
		}
		if len(got.Keywords) != 0 || len(got.ExtractedTasks) != 0 {
			t.Error("fallback lists must be empty")
		}
	})

	t.Run("unknown sentiment and out-of-range score are normalized", func(t *testing.T) {
		cr := newFakeContextRepo(entry)
		r := &stubReasoner{objects: []map[string]any{{
			"summary":          "ok",
			"importance_score": 3.5,
			"sentiment":        "ecstatic",
		}}}
		uc := newTestUseCase(newFakeTaskRepo(), cr, &fakeRecRepo{}, &fakeSchedRepo{}, r, nil)

		if err := uc.ProcessContextEntry(ctx, sc, "entry-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := cr.entries["entry-1"]
		if got.ImportanceScore != 1 {
			t.Errorf("score = %v, want clamped to 1", got.ImportanceScore)
		}
		if got.Sentiment != model.SentimentNeutral {
			t.Errorf("sentiment = %q, want neutral", got.Sentiment)
		}
	})

	t.Run("missing entry is a logged no-op", func(t *testing.T) {
		r := &stubReasoner{}
		uc := newTestUseCase(newFakeTaskRepo(), newFakeContextRepo(), &fakeRecRepo{}, &fakeSchedRepo{}, r, nil)

		if err := uc.ProcessContextEntry(ctx, sc, "gone"); err != nil {
			t.Fatalf("missing entry must not error: %v", err)
		}
		if len(r.calls) != 0 {
			t.Error("no reasoning call should be made for a missing entry")
		}
	})
}
