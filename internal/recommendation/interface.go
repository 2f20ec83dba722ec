package recommendation

import (
	"context"

	"smart-todo/internal/model"
)

// UseCase defines the business logic interface for the recommendation
// domain. Generation runs in the background; Trigger only enqueues it.
type UseCase interface {
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// Accept turns a recommendation into a real Task, resolving its
	// suggested category names lazily. Acting is final.
	Accept(ctx context.Context, sc model.Scope, id string) (AcceptOutput, error)

	// Dismiss marks a recommendation rejected. Acting is final.
	Dismiss(ctx context.Context, sc model.Scope, id string) error

	// Trigger enqueues a background regeneration for the user.
	Trigger(ctx context.Context, sc model.Scope) error
}
