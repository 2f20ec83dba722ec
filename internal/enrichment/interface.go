package enrichment

import (
	"context"

	"smart-todo/internal/enrichment/reasoner"
	"smart-todo/internal/model"
	"smart-todo/internal/schedule"
)

// Reasoner is the boundary to the external reasoning capability. It
// returns a decoded JSON object or an error; it never guesses a
// fallback on the caller's behalf.
type Reasoner interface {
	Complete(ctx context.Context, call reasoner.Call) (map[string]any, error)
}

// UseCase is the set of background entry points plus the synchronous
// schedule surface. The Process* and GenerateRecommendations methods
// are invoked by the job consumer; they gather inputs fresh at run
// time, never at enqueue time. All of them swallow reasoning failures
// into fallback results; an error return means a storage failure.
type UseCase interface {
	// ProcessTask enriches one task. A missing task is a logged no-op.
	ProcessTask(ctx context.Context, sc model.Scope, taskID string) error

	// ProcessContextEntry analyzes one context entry. A missing entry is
	// a logged no-op.
	ProcessContextEntry(ctx context.Context, sc model.Scope, entryID string) error

	// GenerateRecommendations replaces the user's unacted
	// recommendations with a fresh batch.
	GenerateRecommendations(ctx context.Context, sc model.Scope) error

	// GenerateSchedule replaces the user's time-block suggestions for
	// one day and returns the new set. Runs synchronously.
	GenerateSchedule(ctx context.Context, sc model.Scope, input schedule.GenerateInput) (schedule.GenerateOutput, error)

	// ListSchedule returns the stored suggestions for one day.
	ListSchedule(ctx context.Context, sc model.Scope, input schedule.GenerateInput) (schedule.ListOutput, error)
}
