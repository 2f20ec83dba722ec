package usecase

import (
	"context"
	"strings"

	"smart-todo/internal/task"
)

const popularCategoryLimit = 10

// CreateCategory resolves a category by name, creating it when missing.
// Creation is idempotent: posting the same name twice yields the same
// category.
func (uc *implUseCase) CreateCategory(ctx context.Context, input task.CreateCategoryInput) (task.CategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return task.CategoryOutput{}, task.ErrEmptyCategoryName
	}

	category, err := uc.repo.GetOrCreateCategory(ctx, name)
	if err != nil {
		uc.l.Errorf(ctx, "task.uc.CreateCategory: %v", err)
		return task.CategoryOutput{}, err
	}
	return task.CategoryOutput{Category: category}, nil
}

// ListCategories returns all categories with their task counts.
func (uc *implUseCase) ListCategories(ctx context.Context) ([]task.CategoryOutput, error) {
	categories, counts, err := uc.repo.ListCategories(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "task.uc.ListCategories: %v", err)
		return nil, err
	}

	out := make([]task.CategoryOutput, 0, len(categories))
	for _, c := range categories {
		out = append(out, task.CategoryOutput{Category: c, TaskCount: counts[c.ID]})
	}
	return out, nil
}

// PopularCategories returns the most attached categories.
func (uc *implUseCase) PopularCategories(ctx context.Context) ([]task.CategoryOutput, error) {
	categories, counts, err := uc.repo.ListPopularCategories(ctx, popularCategoryLimit)
	if err != nil {
		uc.l.Errorf(ctx, "task.uc.PopularCategories: %v", err)
		return nil, err
	}

	out := make([]task.CategoryOutput, 0, len(categories))
	for _, c := range categories {
		out = append(out, task.CategoryOutput{Category: c, TaskCount: counts[c.ID]})
	}
	return out, nil
}
