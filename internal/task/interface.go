package task

import (
	"context"

	"smart-todo/internal/model"
)

// UseCase defines the business logic interface for the task domain.
// Creating a task enqueues an enrichment job after the write commits;
// the enriched fields appear asynchronously.
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateTaskInput) (CreateTaskOutput, error)
	List(ctx context.Context, sc model.Scope, input ListTasksInput) (ListTasksOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailTaskOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateTaskInput) (UpdateTaskOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Stats summarizes the user's workload for dashboards.
	Stats(ctx context.Context, sc model.Scope) (StatsOutput, error)

	// ExportCSV renders all of the user's tasks as CSV.
	ExportCSV(ctx context.Context, sc model.Scope) ([]byte, error)

	// Categories. Creation is get-or-create by name.
	CreateCategory(ctx context.Context, input CreateCategoryInput) (CategoryOutput, error)
	ListCategories(ctx context.Context) ([]CategoryOutput, error)
	PopularCategories(ctx context.Context) ([]CategoryOutput, error)
}
