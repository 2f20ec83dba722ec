package usecase

import (
	"context"

	contextRepo "smart-todo/internal/contextentry/repository"
	"smart-todo/internal/enrichment/reasoner"
	"smart-todo/internal/model"
)

const (
	analyzeContextTemperature = 0.2
	analyzeContextMaxTokens   = 600

	// fallbackSummary is stored when the reasoning call fails.
	fallbackSummary = "Could not analyze content."
)

// contextAnalysis is the validated result of one analysis call.
type contextAnalysis struct {
	Summary            string
	ImportanceScore    float64
	Sentiment          model.Sentiment
	Keywords           []string
	PotentialTasks     []string
	MentionedDeadlines []string
	MentionedPeople    []string
}

// ProcessContextEntry analyzes one context entry and overwrites its
// extracted fields. Reasoning failures degrade to the neutral fallback;
// the only error returns are storage failures.
func (uc *implUseCase) ProcessContextEntry(ctx context.Context, sc model.Scope, entryID string) error {
	entry, err := uc.contextRepo.GetOneEntry(ctx, contextRepo.GetOneEntryOptions{ID: entryID, UserID: sc.UserID})
	if err != nil {
		return err
	}
	if entry.ID == "" {
		uc.l.Warnf(ctx, "enrichment: context entry %s not found for user %s, skipping", entryID, sc.UserID)
		return nil
	}

	analysis := uc.analyzeEntry(ctx, entry)

	updated, err := uc.contextRepo.UpdateEntryAnalysis(ctx, contextRepo.UpdateEntryAnalysisOptions{
		ID:                 entry.ID,
		UserID:             sc.UserID,
		ImportanceScore:    analysis.ImportanceScore,
		Sentiment:          analysis.Sentiment,
		Summary:            analysis.Summary,
		Keywords:           analysis.Keywords,
		ExtractedTasks:     analysis.PotentialTasks,
		ExtractedDeadlines: analysis.MentionedDeadlines,
		ExtractedPeople:    analysis.MentionedPeople,
	})
	if err != nil {
		return err
	}
	if updated.ID == "" {
		uc.l.Warnf(ctx, "enrichment: context entry %s disappeared during analysis", entryID)
		return nil
	}

	uc.l.Infof(ctx, "enrichment: analyzed context entry %s for user %s", entryID, sc.UserID)
	return nil
}

// analyzeEntry runs the reasoning call and validates the result
// field-by-field. Never fails: a reasoning error yields the neutral
// fallback record.
func (uc *implUseCase) analyzeEntry(ctx context.Context, entry model.ContextEntry) contextAnalysis {
	obj, err := uc.reasoner.Complete(ctx, reasoner.Call{
		Instruction: analyzeContextInstruction,
		Prompt:      buildAnalyzeContextPrompt(entry),
		Temperature: analyzeContextTemperature,
		MaxTokens:   analyzeContextMaxTokens,
	})
	if err != nil {
		uc.l.Errorf(ctx, "enrichment: reasoning failed for context entry %s (user %s): %v", entry.ID, entry.UserID, err)
		return contextAnalysis{
			Summary:         fallbackSummary,
			ImportanceScore: model.DefaultImportanceScore,
			Sentiment:       model.SentimentNeutral,
		}
	}

	result := contextAnalysis{
		Summary:            reasoner.Str(obj, "summary", fallbackSummary),
		ImportanceScore:    reasoner.Float(obj, "importance_score", model.DefaultImportanceScore),
		Sentiment:          model.Sentiment(reasoner.Str(obj, "sentiment", string(model.SentimentNeutral))),
		Keywords:           reasoner.Strings(obj, "keywords"),
		PotentialTasks:     reasoner.Strings(obj, "potential_tasks"),
		MentionedDeadlines: reasoner.Strings(obj, "mentioned_deadlines"),
		MentionedPeople:    reasoner.Strings(obj, "mentioned_people"),
	}
	if !model.ValidSentiment(result.Sentiment) {
		result.Sentiment = model.SentimentNeutral
	}
	if result.ImportanceScore < 0 {
		result.ImportanceScore = 0
	}
	if result.ImportanceScore > 1 {
		result.ImportanceScore = 1
	}
	return result
}
