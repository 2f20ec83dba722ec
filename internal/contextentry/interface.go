package contextentry

import (
	"context"

	"smart-todo/internal/model"
)

// UseCase defines the business logic interface for the context-entry
// domain. Creating an entry enqueues an analysis job after the write
// commits; the extracted fields appear asynchronously.
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateEntryInput) (CreateEntryOutput, error)
	List(ctx context.Context, sc model.Scope, input ListEntriesInput) (ListEntriesOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailEntryOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
