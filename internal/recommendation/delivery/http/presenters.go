package http

import (
	"time"

	"smart-todo/internal/model"
	"smart-todo/internal/recommendation"
)

// --- Request DTOs ---

type listReq struct {
	IncludeActed bool `form:"include_acted"`
	Limit        int  `form:"limit"`
	Offset       int  `form:"offset"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() recommendation.ListInput {
	return recommendation.ListInput{
		IncludeActed: r.IncludeActed,
		Limit:        r.Limit,
		Offset:       r.Offset,
	}
}

// --- Response DTOs ---

type recommendationResp struct {
	ID string `json:"id"`

	Title             string     `json:"title"`
	Description       string     `json:"description,omitempty"`
	SuggestedPriority int        `json:"suggested_priority"`
	SuggestedDeadline *time.Time `json:"suggested_deadline,omitempty"`

	Reasoning       string  `json:"reasoning,omitempty"`
	ConfidenceScore float64 `json:"confidence_score"`

	BasedOnContext      []string `json:"based_on_context"`
	SuggestedCategories []string `json:"suggested_categories"`

	IsAccepted    bool    `json:"is_accepted"`
	IsDismissed   bool    `json:"is_dismissed"`
	CreatedTaskID *string `json:"created_task_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func newRecommendationResp(r model.TaskRecommendation) recommendationResp {
	resp := recommendationResp{
		ID:                  r.ID,
		Title:               r.Title,
		Description:         r.Description,
		SuggestedPriority:   r.SuggestedPriority,
		SuggestedDeadline:   r.SuggestedDeadline,
		Reasoning:           r.Reasoning,
		ConfidenceScore:     r.ConfidenceScore,
		BasedOnContext:      r.BasedOnContext,
		SuggestedCategories: r.SuggestedCategories,
		IsAccepted:          r.IsAccepted,
		IsDismissed:         r.IsDismissed,
		CreatedTaskID:       r.CreatedTaskID,
		CreatedAt:           r.CreatedAt,
	}
	if resp.BasedOnContext == nil {
		resp.BasedOnContext = []string{}
	}
	if resp.SuggestedCategories == nil {
		resp.SuggestedCategories = []string{}
	}
	return resp
}

type listResp struct {
	Recommendations []recommendationResp `json:"recommendations"`
	Total           int                  `json:"total"`
	Limit           int                  `json:"limit"`
	Offset          int                  `json:"offset"`
}

func (h *handler) newListResp(out recommendation.ListOutput) listResp {
	recs := make([]recommendationResp, len(out.Recommendations))
	for i, r := range out.Recommendations {
		recs[i] = newRecommendationResp(r)
	}
	return listResp{
		Recommendations: recs,
		Total:           out.Total,
		Limit:           out.Limit,
		Offset:          out.Offset,
	}
}

type acceptResp struct {
	Recommendation recommendationResp `json:"recommendation"`
	CreatedTaskID  string             `json:"created_task_id"`
}

func (h *handler) newAcceptResp(out recommendation.AcceptOutput) acceptResp {
	return acceptResp{
		Recommendation: newRecommendationResp(out.Recommendation),
		CreatedTaskID:  out.CreatedTask.ID,
	}
}
