package usecase

import (
	"context"

	"smart-todo/internal/enrichment/reasoner"
	"smart-todo/internal/model"
	recRepo "smart-todo/internal/recommendation/repository"
	taskRepo "smart-todo/internal/task/repository"
)

const (
	recommendTemperature = 0.5
	recommendMaxTokens   = 1200

	// recommendContextLimit caps the context entries embedded in the
	// recommendation prompt.
	recommendContextLimit = 20

	// activeTaskPageLimit bounds the active-title fetch.
	activeTaskPageLimit = 200
)

// GenerateRecommendations replaces the user's unacted recommendations
// with a fresh batch derived from recent context. A reasoning failure
// yields an empty batch, and the stale unacted recommendations are
// still cleared: suggestions must not outlive their relevance window.
func (uc *implUseCase) GenerateRecommendations(ctx context.Context, sc model.Scope) error {
	entries, err := uc.contextRepo.ListRecentEntries(ctx, sc.UserID, recommendContextLimit)
	if err != nil {
		return err
	}

	activeTasks, _, err := uc.taskRepo.ListTasks(ctx, taskRepo.ListTasksOptions{
		UserID:   sc.UserID,
		Statuses: []model.TaskStatus{model.TaskStatusPending, model.TaskStatusInProgress},
		Limit:    activeTaskPageLimit,
	})
	if err != nil {
		return err
	}
	activeTitles := make([]string, 0, len(activeTasks))
	for _, t := range activeTasks {
		activeTitles = append(activeTitles, t.Title)
	}

	candidates := uc.recommendTasks(ctx, sc, entries, activeTitles)

	// One transaction: stale unacted rows never coexist with the new
	// batch, and a reader never sees the gap between delete and insert.
	if _, err := uc.recRepo.ReplaceUnacted(ctx, sc.UserID, candidates); err != nil {
		return err
	}

	uc.l.Infof(ctx, "enrichment: generated %d recommendations for user %s", len(candidates), sc.UserID)
	return nil
}

// recommendTasks runs the reasoning call and validates each candidate
// field-by-field. Never fails: a reasoning error yields an empty list.
func (uc *implUseCase) recommendTasks(ctx context.Context, sc model.Scope, entries []model.ContextEntry, activeTitles []string) []recRepo.CreateRecommendationOptions {
	obj, err := uc.reasoner.Complete(ctx, reasoner.Call{
		Instruction: recommendInstruction,
		Prompt:      buildRecommendationsPrompt(entries, activeTitles),
		Temperature: recommendTemperature,
		MaxTokens:   recommendMaxTokens,
	})
	if err != nil {
		uc.l.Errorf(ctx, "enrichment: reasoning failed for recommendations (user %s): %v", sc.UserID, err)
		return nil
	}

	contextIDs := make([]string, 0, len(entries))
	for _, e := range entries {
		contextIDs = append(contextIDs, e.ID)
	}

	raw := reasoner.Objects(obj, "recommendations")
	candidates := make([]recRepo.CreateRecommendationOptions, 0, len(raw))
	for _, item := range raw {
		title := reasoner.Str(item, "title", "")
		if title == "" {
			uc.l.Warnf(ctx, "enrichment: recommendation without title for user %s, dropping", sc.UserID)
			continue
		}

		priority := reasoner.Int(item, "priority", model.PriorityLow)
		if !model.ValidPriority(priority) {
			priority = model.PriorityLow
		}
		confidence := reasoner.Float(item, "confidence_score", model.DefaultConfidenceScore)
		if confidence < 0 || confidence > 1 {
			confidence = model.DefaultConfidenceScore
		}

		candidates = append(candidates, recRepo.CreateRecommendationOptions{
			UserID:              sc.UserID,
			Title:               title,
			Description:         reasoner.Str(item, "description", ""),
			SuggestedPriority:   priority,
			Reasoning:           reasoner.Str(item, "reasoning", ""),
			ConfidenceScore:     confidence,
			BasedOnContext:      contextIDs,
			SuggestedCategories: reasoner.Strings(item, "suggested_categories"),
		})
	}
	return candidates
}
