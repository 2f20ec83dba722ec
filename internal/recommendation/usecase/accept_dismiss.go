package usecase

import (
	"context"

	"smart-todo/internal/model"
	"smart-todo/internal/recommendation"
	repo "smart-todo/internal/recommendation/repository"
	taskRepo "smart-todo/internal/task/repository"
)

// Accept materializes a recommendation as a real Task. Suggested category
// names are resolved lazily, creating categories that do not exist yet.
func (uc *implUseCase) Accept(ctx context.Context, sc model.Scope, id string) (recommendation.AcceptOutput, error) {
	rec, err := uc.repo.GetOne(ctx, repo.GetOneOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "recommendation.uc.Accept GetOne: %v", err)
		return recommendation.AcceptOutput{}, err
	}
	if rec.ID == "" {
		return recommendation.AcceptOutput{}, recommendation.ErrRecommendationNotFound
	}
	if rec.IsAccepted || rec.IsDismissed {
		return recommendation.AcceptOutput{}, recommendation.ErrAlreadyActed
	}

	var categoryIDs []string
	for _, name := range rec.SuggestedCategories {
		category, err := uc.taskRepo.GetOrCreateCategory(ctx, name)
		if err != nil {
			uc.l.Errorf(ctx, "recommendation.uc.Accept GetOrCreateCategory %q: %v", name, err)
			return recommendation.AcceptOutput{}, err
		}
		categoryIDs = append(categoryIDs, category.ID)
	}

	priority := rec.SuggestedPriority
	if !model.ValidPriority(priority) {
		priority = model.PriorityMedium
	}

	created, err := uc.taskRepo.CreateTask(ctx, taskRepo.CreateTaskOptions{
		UserID:      sc.UserID,
		Title:       rec.Title,
		Description: rec.Description,
		Priority:    priority,
		Status:      model.TaskStatusPending,
		Deadline:    rec.SuggestedDeadline,
		AIReasoning: rec.Reasoning,
		CategoryIDs: categoryIDs,
	})
	if err != nil {
		uc.l.Errorf(ctx, "recommendation.uc.Accept CreateTask: %v", err)
		return recommendation.AcceptOutput{}, err
	}

	accepted, err := uc.repo.MarkAccepted(ctx, rec.ID, sc.UserID, created.ID)
	if err != nil {
		uc.l.Errorf(ctx, "recommendation.uc.Accept MarkAccepted: %v", err)
		return recommendation.AcceptOutput{}, err
	}
	if accepted.ID == "" {
		return recommendation.AcceptOutput{}, recommendation.ErrRecommendationNotFound
	}

	return recommendation.AcceptOutput{Recommendation: accepted, CreatedTask: created}, nil
}

// Dismiss marks a recommendation rejected without creating a task.
func (uc *implUseCase) Dismiss(ctx context.Context, sc model.Scope, id string) error {
	rec, err := uc.repo.GetOne(ctx, repo.GetOneOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "recommendation.uc.Dismiss GetOne: %v", err)
		return err
	}
	if rec.ID == "" {
		return recommendation.ErrRecommendationNotFound
	}
	if rec.IsAccepted || rec.IsDismissed {
		return recommendation.ErrAlreadyActed
	}

	if _, err := uc.repo.MarkDismissed(ctx, id, sc.UserID); err != nil {
		uc.l.Errorf(ctx, "recommendation.uc.Dismiss MarkDismissed: %v", err)
		return err
	}
	return nil
}
