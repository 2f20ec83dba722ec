package usecase

import (
	"context"

	"smart-todo/internal/model"
	"smart-todo/internal/task"
	repo "smart-todo/internal/task/repository"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// List returns a filtered, paginated page of the user's tasks.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListTasksInput) (task.ListTasksOutput, error) {
	for _, s := range input.Statuses {
		if !model.ValidTaskStatus(s) {
			return task.ListTasksOutput{}, task.ErrInvalidStatus
		}
	}
	if input.Priority != 0 && !model.ValidPriority(input.Priority) {
		return task.ListTasksOutput{}, task.ErrInvalidPriority
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	tasks, total, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:       sc.UserID,
		Statuses:     input.Statuses,
		Priority:     input.Priority,
		DeadlineFrom: input.DeadlineFrom,
		DeadlineTo:   input.DeadlineTo,
		Search:       input.Search,
		Limit:        limit,
		Offset:       offset,
		OrderBy:      uc.sanitizeOrderBy(input.OrderBy),
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.uc.List ListTasks: %v", err)
		return task.ListTasksOutput{}, err
	}

	return task.ListTasksOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// sanitizeOrderBy maps the public sort keys to column expressions.
// Unknown keys fall back to newest-first.
func (uc *implUseCase) sanitizeOrderBy(key string) string {
	switch key {
	case "deadline":
		return "deadline ASC NULLS LAST"
	case "-deadline":
		return "deadline DESC NULLS LAST"
	case "priority":
		return "priority ASC"
	case "-priority":
		return "priority DESC"
	case "created_at":
		return "created_at ASC"
	case "", "-created_at":
		return "created_at DESC"
	}
	return "created_at DESC"
}
