package usecase

import (
	"context"
	"strings"
	"time"

	"smart-todo/internal/contextentry"
	repo "smart-todo/internal/contextentry/repository"
	"smart-todo/internal/enrichment/queue"
	"smart-todo/internal/model"
)

// Create persists a new ContextEntry and enqueues its analysis job.
// The entry is returned immediately with the neutral importance score;
// the extracted fields fill in asynchronously.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input contextentry.CreateEntryInput) (contextentry.CreateEntryOutput, error) {
	if strings.TrimSpace(input.Content) == "" {
		return contextentry.CreateEntryOutput{}, contextentry.ErrEmptyContent
	}
	if !model.ValidEntryType(input.EntryType) {
		return contextentry.CreateEntryOutput{}, contextentry.ErrInvalidEntryType
	}

	entryDate := time.Now().UTC()
	if input.EntryDate != nil {
		entryDate = *input.EntryDate
	}

	created, err := uc.repo.CreateEntry(ctx, repo.CreateEntryOptions{
		UserID:          sc.UserID,
		Content:         input.Content,
		EntryType:       input.EntryType,
		EntryDate:       entryDate,
		Source:          input.Source,
		ImportanceScore: model.DefaultImportanceScore,
	})
	if err != nil {
		uc.l.Errorf(ctx, "contextentry.uc.Create CreateEntry: %v", err)
		return contextentry.CreateEntryOutput{}, err
	}

	// Enqueue after the write commits. A lost job only means the entry
	// stays unanalyzed; never fail the create for it.
	if uc.enqueuer != nil {
		job := queue.Job{
			Kind:       queue.JobAnalyzeContext,
			EntityID:   created.ID,
			UserID:     sc.UserID,
			EnqueuedAt: time.Now().UTC(),
		}
		if err := uc.enqueuer.Enqueue(ctx, job); err != nil {
			uc.l.Warnf(ctx, "contextentry.uc.Create enqueue analysis for entry %s: %v", created.ID, err)
		}
	}

	return contextentry.CreateEntryOutput{Entry: created}, nil
}
