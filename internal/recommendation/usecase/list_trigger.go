package usecase

import (
	"context"
	"time"

	"smart-todo/internal/enrichment/queue"
	"smart-todo/internal/model"
	"smart-todo/internal/recommendation"
	repo "smart-todo/internal/recommendation/repository"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// List returns the user's recommendations, newest first. Pending only by
// default; IncludeActed also returns the accepted and dismissed history.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input recommendation.ListInput) (recommendation.ListOutput, error) {
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

	recs, total, err := uc.repo.List(ctx, repo.ListOptions{
		UserID:       sc.UserID,
		IncludeActed: input.IncludeActed,
		Limit:        limit,
		Offset:       offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "recommendation.uc.List: %v", err)
		return recommendation.ListOutput{}, err
	}

	return recommendation.ListOutput{
		Recommendations: recs,
		Total:           total,
		Limit:           limit,
		Offset:          offset,
	}, nil
}

// Trigger enqueues a background regeneration for the user.
func (uc *implUseCase) Trigger(ctx context.Context, sc model.Scope) error {
	job := queue.Job{
		Kind:       queue.JobGenerateRecommendations,
		UserID:     sc.UserID,
		EnqueuedAt: time.Now().UTC(),
	}
	if err := uc.enqueuer.Enqueue(ctx, job); err != nil {
		uc.l.Errorf(ctx, "recommendation.uc.Trigger enqueue: %v", err)
		return err
	}
	return nil
}
