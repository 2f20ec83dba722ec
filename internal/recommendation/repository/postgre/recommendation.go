package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"smart-todo/internal/model"
	repo "smart-todo/internal/recommendation/repository"
)

const recommendationColumns = `id, user_id, title, description, suggested_priority, suggested_deadline,
	reasoning, confidence_score, based_on_context, suggested_categories,
	is_accepted, is_dismissed, created_task_id, created_at`

// recommendationRow mirrors one task_recommendations row.
type recommendationRow struct {
	id                  string
	userID              string
	title               string
	description         string
	suggestedPriority   int
	suggestedDeadline   sql.NullTime
	reasoning           sql.NullString
	confidenceScore     float64
	basedOnContext      pq.StringArray
	suggestedCategories pq.StringArray
	isAccepted          bool
	isDismissed         bool
	createdTaskID       sql.NullString
	createdAt           time.Time
}

func (row *recommendationRow) scanFields() []any {
	return []any{
		&row.id, &row.userID, &row.title, &row.description, &row.suggestedPriority, &row.suggestedDeadline,
		&row.reasoning, &row.confidenceScore, &row.basedOnContext, &row.suggestedCategories,
		&row.isAccepted, &row.isDismissed, &row.createdTaskID, &row.createdAt,
	}
}

func (row *recommendationRow) toModel() model.TaskRecommendation {
	rec := model.TaskRecommendation{
		ID:                  row.id,
		UserID:              row.userID,
		Title:               row.title,
		Description:         row.description,
		SuggestedPriority:   row.suggestedPriority,
		Reasoning:           row.reasoning.String,
		ConfidenceScore:     row.confidenceScore,
		BasedOnContext:      row.basedOnContext,
		SuggestedCategories: row.suggestedCategories,
		IsAccepted:          row.isAccepted,
		IsDismissed:         row.isDismissed,
		CreatedAt:           row.createdAt,
	}
	if row.suggestedDeadline.Valid {
		d := row.suggestedDeadline.Time
		rec.SuggestedDeadline = &d
	}
	if row.createdTaskID.Valid {
		id := row.createdTaskID.String
		rec.CreatedTaskID = &id
	}
	return rec
}

func stringArray(s []string) pq.StringArray {
	if s == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(s)
}

// ReplaceUnacted deletes pending recommendations and inserts the new
// generation's batch in the same transaction so a run lands atomically.
// Accepted and dismissed rows are untouched. An empty batch still
// clears the pending set.
func (r *implRepository) ReplaceUnacted(ctx context.Context, userID string, opts []repo.CreateRecommendationOptions) ([]model.TaskRecommendation, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("ReplaceUnacted"), err)
		return nil, repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	const deleteQuery = `DELETE FROM task_recommendations WHERE user_id = $1 AND is_accepted = FALSE AND is_dismissed = FALSE`
	if _, err := tx.ExecContext(ctx, deleteQuery, userID); err != nil {
		r.l.Errorf(ctx, "%s delete: %v", r.dsn("ReplaceUnacted"), err)
		return nil, repo.ErrFailedToDelete
	}

	insertQuery := fmt.Sprintf(`
		INSERT INTO task_recommendations (id, user_id, title, description, suggested_priority,
			suggested_deadline, reasoning, confidence_score, based_on_context, suggested_categories,
			is_accepted, is_dismissed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, FALSE, FALSE, NOW())
		RETURNING %s`, recommendationColumns)

	created := make([]model.TaskRecommendation, 0, len(opts))
	for _, opt := range opts {
		var row recommendationRow
		err := tx.QueryRowContext(ctx, insertQuery,
			uuid.NewString(), opt.UserID, opt.Title, opt.Description, opt.SuggestedPriority,
			opt.SuggestedDeadline, opt.Reasoning, opt.ConfidenceScore,
			stringArray(opt.BasedOnContext), stringArray(opt.SuggestedCategories),
		).Scan(row.scanFields()...)
		if err != nil {
			r.l.Errorf(ctx, "%s insert: %v", r.dsn("ReplaceUnacted"), err)
			return nil, repo.ErrFailedToInsert
		}
		created = append(created, row.toModel())
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("ReplaceUnacted"), err)
		return nil, repo.ErrFailedToInsert
	}
	return created, nil
}

// GetOne retrieves a single recommendation by ID + owner.
// Returns zero-value recommendation (ID == "") when not found.
func (r *implRepository) GetOne(ctx context.Context, opt repo.GetOneOptions) (model.TaskRecommendation, error) {
	query := fmt.Sprintf(`SELECT %s FROM task_recommendations WHERE id = $1 AND user_id = $2 LIMIT 1`, recommendationColumns)

	var row recommendationRow
	err := r.db.QueryRowContext(ctx, query, opt.ID, opt.UserID).Scan(row.scanFields()...)
	if err == sql.ErrNoRows {
		return model.TaskRecommendation{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOne"), err)
		return model.TaskRecommendation{}, repo.ErrFailedToGet
	}
	return row.toModel(), nil
}

// List returns the user's recommendations, newest first.
func (r *implRepository) List(ctx context.Context, opt repo.ListOptions) ([]model.TaskRecommendation, int, error) {
	where := "user_id = $1"
	if !opt.IncludeActed {
		where += " AND is_accepted = FALSE AND is_dismissed = FALSE"
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM task_recommendations WHERE %s", where)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, opt.UserID).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("List"), err)
		return nil, 0, repo.ErrFailedToList
	}

	limit := opt.Limit
	if limit <= 0 {
		limit = 20
	}
	query := fmt.Sprintf(`
		SELECT %s FROM task_recommendations
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, recommendationColumns, where)

	rows, err := r.db.QueryContext(ctx, query, opt.UserID, limit, opt.Offset)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("List"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var recs []model.TaskRecommendation
	for rows.Next() {
		var row recommendationRow
		if err := rows.Scan(row.scanFields()...); err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		recs = append(recs, row.toModel())
	}
	return recs, total, nil
}

// MarkAccepted records the accept decision and the created task together.
func (r *implRepository) MarkAccepted(ctx context.Context, id, userID, taskID string) (model.TaskRecommendation, error) {
	query := fmt.Sprintf(`
		UPDATE task_recommendations
		SET is_accepted = TRUE, created_task_id = $1
		WHERE id = $2 AND user_id = $3
		RETURNING %s`, recommendationColumns)

	var row recommendationRow
	err := r.db.QueryRowContext(ctx, query, taskID, id, userID).Scan(row.scanFields()...)
	if err == sql.ErrNoRows {
		return model.TaskRecommendation{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkAccepted"), err)
		return model.TaskRecommendation{}, repo.ErrFailedToUpdate
	}
	return row.toModel(), nil
}

// MarkDismissed records the dismiss decision.
func (r *implRepository) MarkDismissed(ctx context.Context, id, userID string) (model.TaskRecommendation, error) {
	query := fmt.Sprintf(`
		UPDATE task_recommendations
		SET is_dismissed = TRUE
		WHERE id = $1 AND user_id = $2
		RETURNING %s`, recommendationColumns)

	var row recommendationRow
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(row.scanFields()...)
	if err == sql.ErrNoRows {
		return model.TaskRecommendation{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkDismissed"), err)
		return model.TaskRecommendation{}, repo.ErrFailedToUpdate
	}
	return row.toModel(), nil
}
