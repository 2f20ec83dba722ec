package recommendation

import "smart-todo/internal/model"

// --- UseCase Inputs ---

type ListInput struct {
	// IncludeActed also returns accepted and dismissed recommendations.
	IncludeActed bool
	Limit        int
	Offset       int
}

// --- UseCase Outputs ---

type ListOutput struct {
	Recommendations []model.TaskRecommendation
	Total           int
	Limit           int
	Offset          int
}

type AcceptOutput struct {
	Recommendation model.TaskRecommendation
	CreatedTask    model.Task
}
