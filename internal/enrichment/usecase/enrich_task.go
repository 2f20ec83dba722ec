package usecase

import (
	"context"
	"strings"
	"time"

	"smart-todo/internal/enrichment/reasoner"
	"smart-todo/internal/model"
	taskRepo "smart-todo/internal/task/repository"
)

const (
	enrichTaskTemperature = 0.3
	enrichTaskMaxTokens   = 1024

	// recentContextLimit caps the context entries embedded in the
	// enrichment prompt.
	recentContextLimit = 10

	// fallbackReasoning is stored when the reasoning call fails.
	fallbackReasoning = "AI processing failed. Using user-provided details."
)

// enrichedTask is the validated result of one enrichment call.
type enrichedTask struct {
	Title               string
	EnhancedDescription string
	Priority            int
	Deadline            *time.Time
	SuggestedCategories []string
	ContextTags         []string
	Reasoning           string
}

// ProcessTask enriches one task from recent context and workload.
// Reasoning failures degrade to a result echoing the user's input; the
// only error returns are storage failures.
func (uc *implUseCase) ProcessTask(ctx context.Context, sc model.Scope, taskID string) error {
	t, err := uc.taskRepo.GetOneTask(ctx, taskRepo.GetOneTaskOptions{ID: taskID, UserID: sc.UserID})
	if err != nil {
		return err
	}
	if t.ID == "" {
		uc.l.Warnf(ctx, "enrichment: task %s not found for user %s, skipping", taskID, sc.UserID)
		return nil
	}

	entries, err := uc.contextRepo.ListRecentEntries(ctx, sc.UserID, recentContextLimit)
	if err != nil {
		return err
	}
	load, err := uc.taskRepo.CountTaskLoad(ctx, sc.UserID)
	if err != nil {
		return err
	}

	enriched := uc.enrichTask(ctx, t, entries, load)

	updated, err := uc.taskRepo.UpdateTaskEnrichment(ctx, taskRepo.UpdateTaskEnrichmentOptions{
		ID:                    t.ID,
		UserID:                sc.UserID,
		Title:                 enriched.Title,
		AIEnhancedDescription: enriched.EnhancedDescription,
		Priority:              enriched.Priority,
		AISuggestedPriority:   enriched.Priority,
		Deadline:              enriched.Deadline,
		AISuggestedDeadline:   enriched.Deadline,
		AIReasoning:           enriched.Reasoning,
		ContextTags:           enriched.ContextTags,
	})
	if err != nil {
		return err
	}
	if updated.ID == "" {
		uc.l.Warnf(ctx, "enrichment: task %s disappeared during enrichment", taskID)
		return nil
	}

	for _, name := range enriched.SuggestedCategories {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		category, err := uc.taskRepo.GetOrCreateCategory(ctx, name)
		if err != nil {
			return err
		}
		if err := uc.taskRepo.AttachCategories(ctx, t.ID, []string{category.ID}); err != nil {
			return err
		}
	}

	uc.l.Infof(ctx, "enrichment: processed task %s for user %s", taskID, sc.UserID)
	return nil
}

// enrichTask runs the reasoning call and validates the result
// field-by-field. Never fails: a reasoning error yields the degraded
// echo of the user's original fields.
func (uc *implUseCase) enrichTask(ctx context.Context, t model.Task, entries []model.ContextEntry, load taskRepo.TaskLoadCounts) enrichedTask {
	obj, err := uc.reasoner.Complete(ctx, reasoner.Call{
		Instruction: enrichTaskInstruction,
		Prompt:      buildEnrichTaskPrompt(t, entries, load, uc.cfg.WorkHours),
		Temperature: enrichTaskTemperature,
		MaxTokens:   enrichTaskMaxTokens,
	})
	if err != nil {
		uc.l.Errorf(ctx, "enrichment: reasoning failed for task %s (user %s): %v", t.ID, t.UserID, err)
		return enrichedTask{
			Title:               t.Title,
			EnhancedDescription: t.Description,
			Priority:            t.Priority,
			Reasoning:           fallbackReasoning,
		}
	}

	result := enrichedTask{
		Title:               reasoner.Str(obj, "title", t.Title),
		EnhancedDescription: reasoner.Str(obj, "enhanced_description", t.Description),
		Priority:            reasoner.Int(obj, "priority", t.Priority),
		SuggestedCategories: reasoner.Strings(obj, "suggested_categories"),
		ContextTags:         reasoner.Strings(obj, "context_tags"),
		Reasoning:           reasoner.Str(obj, "reasoning", ""),
	}
	if result.Title == "" {
		result.Title = t.Title
	}
	if !model.ValidPriority(result.Priority) {
		result.Priority = t.Priority
	}
	if raw := reasoner.Str(obj, "deadline", ""); raw != "" {
		if parsed, ok := parseISOTimestamp(raw); ok {
			result.Deadline = &parsed
		} else {
			uc.l.Warnf(ctx, "enrichment: invalid deadline %q returned for task %s, dropping", raw, t.ID)
		}
	}
	return result
}

// parseISOTimestamp parses an ISO-8601 timestamp, accepting a trailing
// "Z", an explicit offset, or no offset (treated as UTC).
func parseISOTimestamp(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
