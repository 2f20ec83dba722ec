package usecase

import (
	"context"
	"testing"

	"smart-todo/internal/model"
	"smart-todo/internal/task"
)

func TestCreateCategory(t *testing.T) {
	t.Run("trims and resolves by name", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockRepository{}, nil)

		out, err := uc.CreateCategory(context.Background(), task.CreateCategoryInput{Name: "  Deep Work  "})
		if err != nil {
			t.Fatalf("CreateCategory: %v", err)
		}
		if out.Category.Name != "Deep Work" {
			t.Errorf("name = %q, want %q", out.Category.Name, "Deep Work")
		}
		if out.Category.Color != model.DefaultCategoryColor {
			t.Errorf("color = %q", out.Category.Color)
		}
	})

	t.Run("blank name rejected", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockRepository{}, nil)

		_, err := uc.CreateCategory(context.Background(), task.CreateCategoryInput{Name: "   "})
		if err != task.ErrEmptyCategoryName {
			t.Errorf("err = %v, want %v", err, task.ErrEmptyCategoryName)
		}
	})
}

func TestListCategories(t *testing.T) {
	repo := &mockRepository{
		listCatsFn: func(ctx context.Context) ([]model.TaskCategory, map[string]int, error) {
			return []model.TaskCategory{
				{ID: "cat-1", Name: "work"},
				{ID: "cat-2", Name: "errands"},
			}, map[string]int{"cat-1": 3}, nil
		},
	}
	uc := New(&mockLogger{}, repo, nil)

	out, err := uc.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d categories", len(out))
	}
	if out[0].TaskCount != 3 {
		t.Errorf("work count = %d, want 3", out[0].TaskCount)
	}
	if out[1].TaskCount != 0 {
		t.Errorf("errands count = %d, want 0", out[1].TaskCount)
	}
}
