package repository

import (
	"context"

	"smart-todo/internal/model"
)

// Repository defines all data access methods for TaskRecommendation.
type Repository interface {
	// ReplaceUnacted removes the user's pending recommendations and
	// inserts the replacement batch in the same transaction. Accepted
	// and dismissed rows are kept. An empty batch clears the pending set.
	ReplaceUnacted(ctx context.Context, userID string, opts []CreateRecommendationOptions) ([]model.TaskRecommendation, error)

	// GetOne returns the zero-value recommendation (ID == "") when not found.
	GetOne(ctx context.Context, opt GetOneOptions) (model.TaskRecommendation, error)

	List(ctx context.Context, opt ListOptions) ([]model.TaskRecommendation, int, error)

	// MarkAccepted records the accept decision and the created task in
	// one statement.
	MarkAccepted(ctx context.Context, id, userID, taskID string) (model.TaskRecommendation, error)

	MarkDismissed(ctx context.Context, id, userID string) (model.TaskRecommendation, error)
}
