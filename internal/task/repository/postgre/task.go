package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"smart-todo/internal/model"
	repo "smart-todo/internal/task/repository"
)

const taskColumns = `id, user_id, title, description, priority, status, deadline,
	created_at, updated_at, completed_at,
	ai_suggested_priority, ai_suggested_deadline, ai_reasoning, ai_enhanced_description,
	context_tags, estimated_duration_minutes, actual_duration_minutes`

// taskRow mirrors one tasks row with nullable columns.
type taskRow struct {
	id                    string
	userID                string
	title                 string
	description           string
	priority              int
	status                string
	deadline              sql.NullTime
	createdAt             time.Time
	updatedAt             time.Time
	completedAt           sql.NullTime
	aiSuggestedPriority   sql.NullInt64
	aiSuggestedDeadline   sql.NullTime
	aiReasoning           sql.NullString
	aiEnhancedDescription sql.NullString
	contextTags           pq.StringArray
	estimatedMinutes      sql.NullInt64
	actualMinutes         sql.NullInt64
}

func (row *taskRow) scanFields() []any {
	return []any{
		&row.id, &row.userID, &row.title, &row.description, &row.priority, &row.status, &row.deadline,
		&row.createdAt, &row.updatedAt, &row.completedAt,
		&row.aiSuggestedPriority, &row.aiSuggestedDeadline, &row.aiReasoning, &row.aiEnhancedDescription,
		&row.contextTags, &row.estimatedMinutes, &row.actualMinutes,
	}
}

func (row *taskRow) toModel() model.Task {
	t := model.Task{
		ID:          row.id,
		UserID:      row.userID,
		Title:       row.title,
		Description: row.description,
		Priority:    row.priority,
		Status:      model.TaskStatus(row.status),
		CreatedAt:   row.createdAt,
		UpdatedAt:   row.updatedAt,
		ContextTags: row.contextTags,
	}
	if row.deadline.Valid {
		d := row.deadline.Time
		t.Deadline = &d
	}
	if row.completedAt.Valid {
		c := row.completedAt.Time
		t.CompletedAt = &c
	}
	if row.aiSuggestedPriority.Valid {
		p := int(row.aiSuggestedPriority.Int64)
		t.AISuggestedPriority = &p
	}
	if row.aiSuggestedDeadline.Valid {
		d := row.aiSuggestedDeadline.Time
		t.AISuggestedDeadline = &d
	}
	t.AIReasoning = row.aiReasoning.String
	t.AIEnhancedDescription = row.aiEnhancedDescription.String
	if row.estimatedMinutes.Valid {
		d := time.Duration(row.estimatedMinutes.Int64) * time.Minute
		t.EstimatedDuration = &d
	}
	if row.actualMinutes.Valid {
		d := time.Duration(row.actualMinutes.Int64) * time.Minute
		t.ActualDuration = &d
	}
	return t
}

func minutesOrNull(d *time.Duration) any {
	if d == nil {
		return nil
	}
	return int64(*d / time.Minute)
}

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`
		INSERT INTO tasks (id, user_id, title, description, priority, status, deadline, ai_reasoning,
			context_tags, estimated_duration_minutes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING %s`, taskColumns)

	status := opt.Status
	if status == "" {
		status = model.TaskStatusPending
	}

	var row taskRow
	err := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.UserID, opt.Title, opt.Description, opt.Priority, string(status),
		opt.Deadline, opt.AIReasoning, pq.StringArray{}, minutesOrNull(opt.EstimatedDuration),
	).Scan(row.scanFields()...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}

	task := row.toModel()

	if len(opt.CategoryIDs) > 0 {
		if err := r.AttachCategories(ctx, task.ID, opt.CategoryIDs); err != nil {
			return model.Task{}, err
		}
		task.CategoryIDs = opt.CategoryIDs
	}

	return task, nil
}

// GetOneTask retrieves a single Task by the provided filters (AND condition).
// Returns zero-value Task (ID == "") when not found; not-found is not an error.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE %s LIMIT 1", taskColumns, mods)

	var row taskRow
	err := r.db.QueryRowContext(ctx, query, args...).Scan(row.scanFields()...)
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}

	task := row.toModel()
	if task.CategoryIDs, err = r.listCategoryIDs(ctx, task.ID); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

// ListTasks returns a filtered, paginated list of Tasks and the total count.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	countMods, countArgs := r.buildCountQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM tasks WHERE %s", countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks %s", taskColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var row taskRow
		if err := rows.Scan(row.scanFields()...); err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		tasks = append(tasks, row.toModel())
	}
	return tasks, total, nil
}

// UpdateTask applies a user-driven partial update by ID + owner.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	sets, args := r.buildUpdateQuery(opt)
	if len(sets) == 0 {
		return r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: opt.ID, UserID: opt.UserID})
	}

	query := fmt.Sprintf(
		"UPDATE tasks SET %s WHERE id = $%d AND user_id = $%d RETURNING %s",
		sets, len(args)+1, len(args)+2, taskColumns,
	)
	args = append(args, opt.ID, opt.UserID)

	var row taskRow
	err := r.db.QueryRowContext(ctx, query, args...).Scan(row.scanFields()...)
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}

	task := row.toModel()
	if task.CategoryIDs, err = r.listCategoryIDs(ctx, task.ID); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

// UpdateTaskEnrichment overwrites the AI-owned fields in one statement.
func (r *implRepository) UpdateTaskEnrichment(ctx context.Context, opt repo.UpdateTaskEnrichmentOptions) (model.Task, error) {
	query := fmt.Sprintf(`
		UPDATE tasks
		SET title = $1,
			ai_enhanced_description = $2,
			priority = $3,
			ai_suggested_priority = $4,
			deadline = $5,
			ai_suggested_deadline = $6,
			ai_reasoning = $7,
			context_tags = $8,
			updated_at = NOW()
		WHERE id = $9 AND user_id = $10
		RETURNING %s`, taskColumns)

	tags := opt.ContextTags
	if tags == nil {
		tags = []string{}
	}

	var row taskRow
	err := r.db.QueryRowContext(ctx, query,
		opt.Title, opt.AIEnhancedDescription, opt.Priority, opt.AISuggestedPriority,
		opt.Deadline, opt.AISuggestedDeadline, opt.AIReasoning, pq.StringArray(tags),
		opt.ID, opt.UserID,
	).Scan(row.scanFields()...)
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTaskEnrichment"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return row.toModel(), nil
}

// DeleteTask removes a Task by ID + owner.
func (r *implRepository) DeleteTask(ctx context.Context, id, userID string) error {
	const query = `DELETE FROM tasks WHERE id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, id, userID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// CountTaskLoad returns workload counters over the user's active tasks.
func (r *implRepository) CountTaskLoad(ctx context.Context, userID string) (repo.TaskLoadCounts, error) {
	const query = `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE priority = 1),
			COUNT(*) FILTER (WHERE deadline >= NOW() AND deadline <= NOW() + INTERVAL '7 days')
		FROM tasks
		WHERE user_id = $1 AND status IN ('pending', 'in_progress')`

	var counts repo.TaskLoadCounts
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&counts.Total, &counts.HighPriority, &counts.Upcoming)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountTaskLoad"), err)
		return repo.TaskLoadCounts{}, repo.ErrFailedToCount
	}
	return counts, nil
}

// CountTaskStats returns aggregate counters over all of the user's tasks.
func (r *implRepository) CountTaskStats(ctx context.Context, userID string) (repo.TaskStatsCounts, error) {
	const query = `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'completed'),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'in_progress'),
			COUNT(*) FILTER (WHERE priority = 1 AND status IN ('pending', 'in_progress')),
			COUNT(*) FILTER (WHERE deadline < NOW() AND status NOT IN ('completed', 'cancelled')),
			COALESCE(AVG(EXTRACT(EPOCH FROM (completed_at - created_at)) / 3600)
				FILTER (WHERE status = 'completed' AND completed_at IS NOT NULL), 0)
		FROM tasks
		WHERE user_id = $1`

	var counts repo.TaskStatsCounts
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&counts.Total, &counts.Completed, &counts.Pending, &counts.InProgress,
		&counts.HighPriority, &counts.Overdue, &counts.AvgCompletionHours,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountTaskStats"), err)
		return repo.TaskStatsCounts{}, repo.ErrFailedToCount
	}
	return counts, nil
}
