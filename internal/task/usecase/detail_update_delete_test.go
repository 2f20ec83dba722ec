package usecase

import (
	"context"
	"errors"
	"testing"

	"smart-todo/internal/model"
	"smart-todo/internal/task"
	repo "smart-todo/internal/task/repository"
)

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	existing := func(status model.TaskStatus) func(context.Context, repo.GetOneTaskOptions) (model.Task, error) {
		return func(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
			return model.Task{ID: opt.ID, UserID: sc.UserID, Title: "fix bug", Status: status}, nil
		}
	}

	t.Run("completing a task stamps completed_at", func(t *testing.T) {
		var captured repo.UpdateTaskOptions
		mock := &mockRepository{
			getOneTaskFn: existing(model.TaskStatusInProgress),
			updateTaskFn: func(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
				captured = opt
				return model.Task{ID: opt.ID, Status: *opt.Status}, nil
			},
		}
		uc := New(&mockLogger{}, mock, nil)

		status := model.TaskStatusCompleted
		_, err := uc.Update(ctx, sc, task.UpdateTaskInput{ID: "task-1", Status: &status})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if captured.CompletedAt == nil {
			t.Error("expected CompletedAt to be set on transition to completed")
		}
		if captured.ClearCompletedAt {
			t.Error("ClearCompletedAt should not be set")
		}
	})

	t.Run("reopening a completed task clears completed_at", func(t *testing.T) {
		var captured repo.UpdateTaskOptions
		mock := &mockRepository{
			getOneTaskFn: existing(model.TaskStatusCompleted),
			updateTaskFn: func(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
				captured = opt
				return model.Task{ID: opt.ID, Status: *opt.Status}, nil
			},
		}
		uc := New(&mockLogger{}, mock, nil)

		status := model.TaskStatusPending
		_, err := uc.Update(ctx, sc, task.UpdateTaskInput{ID: "task-1", Status: &status})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !captured.ClearCompletedAt {
			t.Error("expected ClearCompletedAt on transition out of completed")
		}
		if captured.CompletedAt != nil {
			t.Error("CompletedAt should be nil")
		}
	})

	t.Run("completed stays completed without restamping", func(t *testing.T) {
		var captured repo.UpdateTaskOptions
		mock := &mockRepository{
			getOneTaskFn: existing(model.TaskStatusCompleted),
			updateTaskFn: func(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
				captured = opt
				return model.Task{ID: opt.ID, Status: *opt.Status}, nil
			},
		}
		uc := New(&mockLogger{}, mock, nil)

		status := model.TaskStatusCompleted
		if _, err := uc.Update(ctx, sc, task.UpdateTaskInput{ID: "task-1", Status: &status}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if captured.CompletedAt != nil || captured.ClearCompletedAt {
			t.Error("completed-to-completed update must not touch completed_at")
		}
	})

	t.Run("missing task returns not found", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockRepository{}, nil)

		status := model.TaskStatusCompleted
		_, err := uc.Update(ctx, sc, task.UpdateTaskInput{ID: "nope", Status: &status})
		if !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("err = %v, want ErrTaskNotFound", err)
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockRepository{}, nil)

		status := model.TaskStatus("archived")
		_, err := uc.Update(ctx, sc, task.UpdateTaskInput{ID: "task-1", Status: &status})
		if !errors.Is(err, task.ErrInvalidStatus) {
			t.Errorf("err = %v, want ErrInvalidStatus", err)
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	t.Run("deletes owned task", func(t *testing.T) {
		deleted := false
		mock := &mockRepository{
			getOneTaskFn: func(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
				return model.Task{ID: opt.ID, UserID: sc.UserID}, nil
			},
			deleteTaskFn: func(ctx context.Context, id, userID string) error {
				deleted = true
				if userID != sc.UserID {
					t.Errorf("delete scoped to %q, want %q", userID, sc.UserID)
				}
				return nil
			},
		}
		uc := New(&mockLogger{}, mock, nil)

		if err := uc.Delete(ctx, sc, "task-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !deleted {
			t.Error("expected DeleteTask to be called")
		}
	})

	t.Run("missing task returns not found", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockRepository{}, nil)

		if err := uc.Delete(ctx, sc, "nope"); !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("err = %v, want ErrTaskNotFound", err)
		}
	})
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	mock := &mockRepository{
		countStatsFn: func(ctx context.Context, userID string) (repo.TaskStatsCounts, error) {
			return repo.TaskStatsCounts{
				Total: 8, Completed: 4, Pending: 3, InProgress: 1,
				HighPriority: 2, Overdue: 1, AvgCompletionHours: 5.5,
			}, nil
		},
	}
	uc := New(&mockLogger{}, mock, nil)

	out, err := uc.Stats(ctx, sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.CompletionRate != 0.5 {
		t.Errorf("completion rate = %v, want 0.5", out.CompletionRate)
	}
	if out.AvgCompletionTime != 5.5 {
		t.Errorf("avg completion time = %v, want 5.5", out.AvgCompletionTime)
	}
}
