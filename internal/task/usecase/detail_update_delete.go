package usecase

import (
	"context"
	"strings"
	"time"

	"smart-todo/internal/model"
	"smart-todo/internal/task"
	repo "smart-todo/internal/task/repository"
)

// Detail retrieves one of the user's tasks with its categories.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.DetailTaskOutput, error) {
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "task.uc.Detail GetOneTask: %v", err)
		return task.DetailTaskOutput{}, err
	}
	if t.ID == "" {
		return task.DetailTaskOutput{}, task.ErrTaskNotFound
	}

	categories, err := uc.repo.ListTaskCategories(ctx, t.ID)
	if err != nil {
		uc.l.Errorf(ctx, "task.uc.Detail ListTaskCategories: %v", err)
		return task.DetailTaskOutput{}, err
	}

	return task.DetailTaskOutput{Task: t, Categories: categories}, nil
}

// Update applies a user-driven partial update. Transitioning into the
// completed status stamps CompletedAt; transitioning out clears it.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return task.UpdateTaskOutput{}, task.ErrEmptyTitle
	}
	if input.Priority != nil && !model.ValidPriority(*input.Priority) {
		return task.UpdateTaskOutput{}, task.ErrInvalidPriority
	}
	if input.Status != nil && !model.ValidTaskStatus(*input.Status) {
		return task.UpdateTaskOutput{}, task.ErrInvalidStatus
	}

	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: input.ID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "task.uc.Update GetOneTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}
	if existing.ID == "" {
		return task.UpdateTaskOutput{}, task.ErrTaskNotFound
	}

	opt := repo.UpdateTaskOptions{
		ID:                input.ID,
		UserID:            sc.UserID,
		Title:             input.Title,
		Description:       input.Description,
		Priority:          input.Priority,
		Status:            input.Status,
		Deadline:          input.Deadline,
		ClearDeadline:     input.ClearDeadline,
		EstimatedDuration: input.EstimatedDuration,
		ActualDuration:    input.ActualDuration,
	}

	if input.Status != nil {
		switch {
		case *input.Status == model.TaskStatusCompleted && existing.Status != model.TaskStatusCompleted:
			now := time.Now().UTC()
			opt.CompletedAt = &now
		case *input.Status != model.TaskStatusCompleted && existing.Status == model.TaskStatusCompleted:
			opt.ClearCompletedAt = true
		}
	}

	updated, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "task.uc.Update UpdateTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}
	if updated.ID == "" {
		return task.UpdateTaskOutput{}, task.ErrTaskNotFound
	}

	if input.CategoryIDs != nil {
		if err := uc.repo.AttachCategories(ctx, updated.ID, input.CategoryIDs); err != nil {
			uc.l.Errorf(ctx, "task.uc.Update AttachCategories: %v", err)
			return task.UpdateTaskOutput{}, err
		}
	}

	return task.UpdateTaskOutput{Task: updated}, nil
}

// Delete removes one of the user's tasks.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "task.uc.Delete GetOneTask: %v", err)
		return err
	}
	if existing.ID == "" {
		return task.ErrTaskNotFound
	}

	if err := uc.repo.DeleteTask(ctx, id, sc.UserID); err != nil {
		uc.l.Errorf(ctx, "task.uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}
