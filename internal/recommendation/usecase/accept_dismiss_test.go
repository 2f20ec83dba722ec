package usecase

import (
	"context"
	"errors"
	"testing"

	"smart-todo/internal/enrichment/queue"
	"smart-todo/internal/model"
	"smart-todo/internal/recommendation"
	repo "smart-todo/internal/recommendation/repository"
	taskRepo "smart-todo/internal/task/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockRecRepo struct {
	recs     map[string]model.TaskRecommendation
	accepted map[string]string // rec id -> task id
}

func newMockRecRepo(recs ...model.TaskRecommendation) *mockRecRepo {
	m := &mockRecRepo{recs: map[string]model.TaskRecommendation{}, accepted: map[string]string{}}
	for _, r := range recs {
		m.recs[r.ID] = r
	}
	return m
}

func (m *mockRecRepo) ReplaceUnacted(ctx context.Context, userID string, opts []repo.CreateRecommendationOptions) ([]model.TaskRecommendation, error) {
	return nil, nil
}

func (m *mockRecRepo) GetOne(ctx context.Context, opt repo.GetOneOptions) (model.TaskRecommendation, error) {
	rec, ok := m.recs[opt.ID]
	if !ok || rec.UserID != opt.UserID {
		return model.TaskRecommendation{}, nil
	}
	return rec, nil
}

func (m *mockRecRepo) List(ctx context.Context, opt repo.ListOptions) ([]model.TaskRecommendation, int, error) {
	return nil, 0, nil
}

func (m *mockRecRepo) MarkAccepted(ctx context.Context, id, userID, taskID string) (model.TaskRecommendation, error) {
	rec := m.recs[id]
	rec.IsAccepted = true
	rec.CreatedTaskID = &taskID
	m.recs[id] = rec
	m.accepted[id] = taskID
	return rec, nil
}

func (m *mockRecRepo) MarkDismissed(ctx context.Context, id, userID string) (model.TaskRecommendation, error) {
	rec := m.recs[id]
	rec.IsDismissed = true
	m.recs[id] = rec
	return rec, nil
}

type mockTaskRepo struct {
	taskRepo.Repository // panic on unimplemented methods

	createdTasks []taskRepo.CreateTaskOptions
	categories   []string
}

func (m *mockTaskRepo) CreateTask(ctx context.Context, opt taskRepo.CreateTaskOptions) (model.Task, error) {
	m.createdTasks = append(m.createdTasks, opt)
	return model.Task{ID: "task-99", UserID: opt.UserID, Title: opt.Title, Priority: opt.Priority}, nil
}

func (m *mockTaskRepo) GetOrCreateCategory(ctx context.Context, name string) (model.TaskCategory, error) {
	m.categories = append(m.categories, name)
	return model.TaskCategory{ID: "cat-" + name, Name: name}, nil
}

type mockEnqueuer struct {
	jobs []queue.Job
}

func (m *mockEnqueuer) Enqueue(ctx context.Context, job queue.Job) error {
	m.jobs = append(m.jobs, job)
	return nil
}

func TestAccept(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	pending := model.TaskRecommendation{
		ID:                  "rec-1",
		UserID:              "user-1",
		Title:               "Review quarterly report",
		Description:         "Based on the email thread with finance",
		SuggestedPriority:   model.PriorityHigh,
		Reasoning:           "deadline mentioned in recent context",
		ConfidenceScore:     0.8,
		SuggestedCategories: []string{"Work", "Reports"},
	}

	t.Run("creates task with suggested fields and lazy categories", func(t *testing.T) {
		recRepo := newMockRecRepo(pending)
		tr := &mockTaskRepo{}
		uc := New(&mockLogger{}, recRepo, tr, &mockEnqueuer{})

		out, err := uc.Accept(ctx, sc, "rec-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tr.createdTasks) != 1 {
			t.Fatalf("created %d tasks, want 1", len(tr.createdTasks))
		}
		created := tr.createdTasks[0]
		if created.Title != pending.Title || created.Priority != model.PriorityHigh {
			t.Errorf("task = %+v, want title/priority from recommendation", created)
		}
		if created.AIReasoning != pending.Reasoning {
			t.Errorf("reasoning = %q, want %q", created.AIReasoning, pending.Reasoning)
		}
		if len(tr.categories) != 2 {
			t.Errorf("resolved %d categories, want 2", len(tr.categories))
		}
		if !out.Recommendation.IsAccepted {
			t.Error("recommendation not marked accepted")
		}
		if out.Recommendation.CreatedTaskID == nil || *out.Recommendation.CreatedTaskID != "task-99" {
			t.Errorf("created task id = %v, want task-99", out.Recommendation.CreatedTaskID)
		}
	})

	t.Run("out-of-range suggested priority falls back to medium", func(t *testing.T) {
		rec := pending
		rec.ID = "rec-2"
		rec.SuggestedPriority = 7
		tr := &mockTaskRepo{}
		uc := New(&mockLogger{}, newMockRecRepo(rec), tr, &mockEnqueuer{})

		if _, err := uc.Accept(ctx, sc, "rec-2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tr.createdTasks[0].Priority != model.PriorityMedium {
			t.Errorf("priority = %d, want medium", tr.createdTasks[0].Priority)
		}
	})

	t.Run("already acted is final", func(t *testing.T) {
		rec := pending
		rec.ID = "rec-3"
		rec.IsAccepted = true
		uc := New(&mockLogger{}, newMockRecRepo(rec), &mockTaskRepo{}, &mockEnqueuer{})

		if _, err := uc.Accept(ctx, sc, "rec-3"); !errors.Is(err, recommendation.ErrAlreadyActed) {
			t.Errorf("err = %v, want ErrAlreadyActed", err)
		}
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		uc := New(&mockLogger{}, newMockRecRepo(), &mockTaskRepo{}, &mockEnqueuer{})

		if _, err := uc.Accept(ctx, sc, "nope"); !errors.Is(err, recommendation.ErrRecommendationNotFound) {
			t.Errorf("err = %v, want ErrRecommendationNotFound", err)
		}
	})

	t.Run("other user's recommendation is invisible", func(t *testing.T) {
		uc := New(&mockLogger{}, newMockRecRepo(pending), &mockTaskRepo{}, &mockEnqueuer{})

		_, err := uc.Accept(ctx, model.Scope{UserID: "user-2"}, "rec-1")
		if !errors.Is(err, recommendation.ErrRecommendationNotFound) {
			t.Errorf("err = %v, want ErrRecommendationNotFound", err)
		}
	})
}

func TestDismiss(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	rec := model.TaskRecommendation{ID: "rec-1", UserID: "user-1", Title: "x"}

	t.Run("marks dismissed without creating a task", func(t *testing.T) {
		recRepo := newMockRecRepo(rec)
		tr := &mockTaskRepo{}
		uc := New(&mockLogger{}, recRepo, tr, &mockEnqueuer{})

		if err := uc.Dismiss(ctx, sc, "rec-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !recRepo.recs["rec-1"].IsDismissed {
			t.Error("recommendation not marked dismissed")
		}
		if len(tr.createdTasks) != 0 {
			t.Error("dismiss must not create tasks")
		}
	})

	t.Run("dismissed is final", func(t *testing.T) {
		d := rec
		d.IsDismissed = true
		uc := New(&mockLogger{}, newMockRecRepo(d), &mockTaskRepo{}, &mockEnqueuer{})

		if err := uc.Dismiss(ctx, sc, "rec-1"); !errors.Is(err, recommendation.ErrAlreadyActed) {
			t.Errorf("err = %v, want ErrAlreadyActed", err)
		}
	})
}

func TestTrigger(t *testing.T) {
	ctx := context.Background()
	enq := &mockEnqueuer{}
	uc := New(&mockLogger{}, newMockRecRepo(), &mockTaskRepo{}, enq)

	if err := uc.Trigger(ctx, model.Scope{UserID: "user-1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(enq.jobs) != 1 || enq.jobs[0].Kind != queue.JobGenerateRecommendations {
		t.Fatalf("jobs = %+v, want one generate_recommendations job", enq.jobs)
	}
	if enq.jobs[0].UserID != "user-1" || enq.jobs[0].EntityID != "" {
		t.Errorf("job scope = %+v, want user-scoped", enq.jobs[0])
	}
}
