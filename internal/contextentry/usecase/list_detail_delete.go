package usecase

import (
	"context"

	"smart-todo/internal/contextentry"
	repo "smart-todo/internal/contextentry/repository"
	"smart-todo/internal/model"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// List returns a filtered, paginated page of the user's entries,
// newest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input contextentry.ListEntriesInput) (contextentry.ListEntriesOutput, error) {
	if input.EntryType != "" && !model.ValidEntryType(input.EntryType) {
		return contextentry.ListEntriesOutput{}, contextentry.ErrInvalidEntryType
	}

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

	entries, total, err := uc.repo.ListEntries(ctx, repo.ListEntriesOptions{
		UserID:    sc.UserID,
		EntryType: input.EntryType,
		DateFrom:  input.DateFrom,
		DateTo:    input.DateTo,
		Search:    input.Search,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "contextentry.uc.List ListEntries: %v", err)
		return contextentry.ListEntriesOutput{}, err
	}

	return contextentry.ListEntriesOutput{
		Entries: entries,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}, nil
}

// Detail retrieves one of the user's entries.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (contextentry.DetailEntryOutput, error) {
	entry, err := uc.repo.GetOneEntry(ctx, repo.GetOneEntryOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "contextentry.uc.Detail GetOneEntry: %v", err)
		return contextentry.DetailEntryOutput{}, err
	}
	if entry.ID == "" {
		return contextentry.DetailEntryOutput{}, contextentry.ErrEntryNotFound
	}
	return contextentry.DetailEntryOutput{Entry: entry}, nil
}

// Delete removes one of the user's entries.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetOneEntry(ctx, repo.GetOneEntryOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "contextentry.uc.Delete GetOneEntry: %v", err)
		return err
	}
	if existing.ID == "" {
		return contextentry.ErrEntryNotFound
	}

	if err := uc.repo.DeleteEntry(ctx, id, sc.UserID); err != nil {
		uc.l.Errorf(ctx, "contextentry.uc.Delete DeleteEntry: %v", err)
		return err
	}
	return nil
}
