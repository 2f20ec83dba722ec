package usecase

import (
	"context"
	"strings"
	"time"

	"smart-todo/internal/enrichment/queue"
	"smart-todo/internal/model"
	"smart-todo/internal/task"
	repo "smart-todo/internal/task/repository"
)

// Create persists a new Task and enqueues its enrichment job.
// The task is returned immediately in its pre-enrichment state; the AI
// fields fill in asynchronously.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.CreateTaskOutput{}, task.ErrEmptyTitle
	}

	priority := input.Priority
	if priority == 0 {
		priority = model.PriorityMedium
	}
	if !model.ValidPriority(priority) {
		return task.CreateTaskOutput{}, task.ErrInvalidPriority
	}

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		UserID:            sc.UserID,
		Title:             title,
		Description:       input.Description,
		Priority:          priority,
		Status:            model.TaskStatusPending,
		Deadline:          input.Deadline,
		CategoryIDs:       input.CategoryIDs,
		EstimatedDuration: input.EstimatedDuration,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.uc.Create CreateTask: %v", err)
		return task.CreateTaskOutput{}, err
	}

	// Enqueue after the write commits. A lost job only means the task
	// stays unenriched; never fail the create for it.
	if uc.enqueuer != nil {
		job := queue.Job{
			Kind:       queue.JobEnrichTask,
			EntityID:   created.ID,
			UserID:     sc.UserID,
			EnqueuedAt: time.Now().UTC(),
		}
		if err := uc.enqueuer.Enqueue(ctx, job); err != nil {
			uc.l.Warnf(ctx, "task.uc.Create enqueue enrichment for task %s: %v", created.ID, err)
		}
	}

	return task.CreateTaskOutput{Task: created}, nil
}
