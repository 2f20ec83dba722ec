package usecase

import (
	"context"
	"errors"
	"testing"

	"smart-todo/internal/enrichment/queue"
	"smart-todo/internal/model"
	"smart-todo/internal/task"
)

func TestCreate(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	t.Run("creates pending task and enqueues enrichment job", func(t *testing.T) {
		repo := &mockRepository{}
		enq := &mockEnqueuer{}
		uc := New(&mockLogger{}, repo, enq)

		out, err := uc.Create(ctx, sc, task.CreateTaskInput{Title: "fix bug", Priority: model.PriorityHigh})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.Status != model.TaskStatusPending {
			t.Errorf("status = %q, want pending", out.Task.Status)
		}
		if len(enq.jobs) != 1 {
			t.Fatalf("enqueued %d jobs, want 1", len(enq.jobs))
		}
		job := enq.jobs[0]
		if job.Kind != queue.JobEnrichTask {
			t.Errorf("job kind = %q, want %q", job.Kind, queue.JobEnrichTask)
		}
		if job.EntityID != out.Task.ID || job.UserID != "user-1" {
			t.Errorf("job scope = (%q, %q), want (%q, user-1)", job.EntityID, job.UserID, out.Task.ID)
		}
	})

	t.Run("defaults priority to medium", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockRepository{}, &mockEnqueuer{})

		out, err := uc.Create(ctx, sc, task.CreateTaskInput{Title: "buy groceries"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.Priority != model.PriorityMedium {
			t.Errorf("priority = %d, want %d", out.Task.Priority, model.PriorityMedium)
		}
	})

	t.Run("rejects empty title", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockRepository{}, &mockEnqueuer{})

		_, err := uc.Create(ctx, sc, task.CreateTaskInput{Title: "   "})
		if !errors.Is(err, task.ErrEmptyTitle) {
			t.Errorf("err = %v, want ErrEmptyTitle", err)
		}
	})

	t.Run("rejects out-of-range priority", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockRepository{}, &mockEnqueuer{})

		_, err := uc.Create(ctx, sc, task.CreateTaskInput{Title: "x", Priority: 9})
		if !errors.Is(err, task.ErrInvalidPriority) {
			t.Errorf("err = %v, want ErrInvalidPriority", err)
		}
	})

	t.Run("enqueue failure does not fail the create", func(t *testing.T) {
		enq := &mockEnqueuer{err: errors.New("broker down")}
		uc := New(&mockLogger{}, &mockRepository{}, enq)

		out, err := uc.Create(ctx, sc, task.CreateTaskInput{Title: "fix bug"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.ID == "" {
			t.Error("expected created task in output")
		}
	})

	t.Run("nil enqueuer skips the job", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockRepository{}, nil)

		if _, err := uc.Create(ctx, sc, task.CreateTaskInput{Title: "fix bug"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
