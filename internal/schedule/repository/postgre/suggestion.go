package postgre

import (
	"context"
	"time"

	"github.com/google/uuid"

	"smart-todo/internal/model"
	repo "smart-todo/internal/schedule/repository"
)

const suggestionColumns = `id, user_id, task_id, suggested_start_time, suggested_end_time, reasoning, created_at`

// ReplaceForDate deletes the user's suggestions for one day and inserts
// the replacement batch in the same transaction. Readers never see a
// half-replaced day. An empty batch still clears the day.
func (r *implRepository) ReplaceForDate(ctx context.Context, userID string, date time.Time, opts []repo.CreateSuggestionOptions) ([]model.TimeBlockSuggestion, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("ReplaceForDate"), err)
		return nil, repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	const deleteQuery = `
		DELETE FROM time_block_suggestions
		WHERE user_id = $1 AND suggested_start_time >= $2 AND suggested_start_time < $3`

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	if _, err := tx.ExecContext(ctx, deleteQuery, userID, dayStart, dayStart.AddDate(0, 0, 1)); err != nil {
		r.l.Errorf(ctx, "%s delete: %v", r.dsn("ReplaceForDate"), err)
		return nil, repo.ErrFailedToDelete
	}

	const insertQuery = `
		INSERT INTO time_block_suggestions (id, user_id, task_id, suggested_start_time, suggested_end_time, reasoning, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING ` + suggestionColumns

	created := make([]model.TimeBlockSuggestion, 0, len(opts))
	for _, opt := range opts {
		var s model.TimeBlockSuggestion
		err := tx.QueryRowContext(ctx, insertQuery,
			uuid.NewString(), opt.UserID, opt.TaskID,
			opt.SuggestedStartTime, opt.SuggestedEndTime, opt.Reasoning,
		).Scan(&s.ID, &s.UserID, &s.TaskID, &s.SuggestedStartTime, &s.SuggestedEndTime, &s.Reasoning, &s.CreatedAt)
		if err != nil {
			r.l.Errorf(ctx, "%s insert: %v", r.dsn("ReplaceForDate"), err)
			return nil, repo.ErrFailedToInsert
		}
		created = append(created, s)
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("ReplaceForDate"), err)
		return nil, repo.ErrFailedToInsert
	}
	return created, nil
}

// ListForDate returns the user's suggestions for one day ordered by start time.
func (r *implRepository) ListForDate(ctx context.Context, userID string, date time.Time) ([]model.TimeBlockSuggestion, error) {
	const query = `
		SELECT ` + suggestionColumns + `
		FROM time_block_suggestions
		WHERE user_id = $1 AND suggested_start_time >= $2 AND suggested_start_time < $3
		ORDER BY suggested_start_time ASC`

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	rows, err := r.db.QueryContext(ctx, query, userID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListForDate"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var suggestions []model.TimeBlockSuggestion
	for rows.Next() {
		var s model.TimeBlockSuggestion
		if err := rows.Scan(&s.ID, &s.UserID, &s.TaskID, &s.SuggestedStartTime, &s.SuggestedEndTime, &s.Reasoning, &s.CreatedAt); err != nil {
			return nil, repo.ErrFailedToList
		}
		suggestions = append(suggestions, s)
	}
	return suggestions, nil
}
