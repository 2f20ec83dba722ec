package recommendation

import "errors"

// Domain-specific errors for the recommendation package.
var (
	ErrRecommendationNotFound = errors.New("recommendation not found")
	ErrAlreadyActed           = errors.New("recommendation already accepted or dismissed")
)
