package repository

import "time"

// CreateRecommendationOptions holds one recommendation row for batch insert.
type CreateRecommendationOptions struct {
	UserID string

	Title             string
	Description       string
	SuggestedPriority int
	SuggestedDeadline *time.Time

	Reasoning       string
	ConfidenceScore float64

	BasedOnContext      []string
	SuggestedCategories []string
}

// GetOneOptions holds filter parameters for fetching a single recommendation.
type GetOneOptions struct {
	ID     string
	UserID string
}

// ListOptions holds filter and pagination parameters.
type ListOptions struct {
	UserID       string
	IncludeActed bool
	Limit        int
	Offset       int
}
