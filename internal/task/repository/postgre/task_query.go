package postgre

import (
	"fmt"
	"strings"
	"time"

	repo "smart-todo/internal/task/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneTask.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneTaskOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

func (r *implRepository) buildFilterConditions(opt repo.ListTasksOptions, idx int) ([]string, []any, int) {
	var conditions []string
	var args []any

	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}
	if len(opt.Statuses) > 0 {
		placeholders := make([]string, 0, len(opt.Statuses))
		for _, s := range opt.Statuses {
			placeholders = append(placeholders, fmt.Sprintf("$%d", idx))
			args = append(args, string(s))
			idx++
		}
		conditions = append(conditions, fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ", ")))
	}
	if opt.Priority > 0 {
		conditions = append(conditions, fmt.Sprintf("priority = $%d", idx))
		args = append(args, opt.Priority)
		idx++
	}
	if opt.DeadlineFrom != nil {
		conditions = append(conditions, fmt.Sprintf("deadline >= $%d", idx))
		args = append(args, *opt.DeadlineFrom)
		idx++
	}
	if opt.DeadlineTo != nil {
		conditions = append(conditions, fmt.Sprintf("deadline <= $%d", idx))
		args = append(args, *opt.DeadlineTo)
		idx++
	}
	if opt.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", idx, idx+1))
		pattern := "%" + opt.Search + "%"
		args = append(args, pattern, pattern)
		idx += 2
	}

	return conditions, args, idx
}

// buildCountQuery builds WHERE clause + args for counting Tasks (no pagination).
func (r *implRepository) buildCountQuery(opt repo.ListTasksOptions) (string, []any) {
	conditions, args, _ := r.buildFilterConditions(opt, 1)
	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	var parts []string

	conditions, args, idx := r.buildFilterConditions(opt, 1)
	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "created_at DESC"
	}
	parts = append(parts, fmt.Sprintf("ORDER BY %s", orderBy))

	limit := opt.Limit
	if limit <= 0 {
		limit = 20
	}
	parts = append(parts, fmt.Sprintf("LIMIT $%d OFFSET $%d", idx, idx+1))
	args = append(args, limit, opt.Offset)

	return strings.Join(parts, " "), args
}

// buildUpdateQuery builds the SET clause + args for UpdateTask.
// Only non-nil fields are written; clear flags reset nullable columns.
func (r *implRepository) buildUpdateQuery(opt repo.UpdateTaskOptions) (string, []any) {
	var sets []string
	var args []any
	idx := 1

	set := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if opt.Title != nil {
		set("title", *opt.Title)
	}
	if opt.Description != nil {
		set("description", *opt.Description)
	}
	if opt.Priority != nil {
		set("priority", *opt.Priority)
	}
	if opt.Status != nil {
		set("status", string(*opt.Status))
	}
	if opt.ClearDeadline {
		sets = append(sets, "deadline = NULL")
	} else if opt.Deadline != nil {
		set("deadline", *opt.Deadline)
	}
	if opt.ClearCompletedAt {
		sets = append(sets, "completed_at = NULL")
	} else if opt.CompletedAt != nil {
		set("completed_at", *opt.CompletedAt)
	}
	if opt.EstimatedDuration != nil {
		set("estimated_duration_minutes", int64(*opt.EstimatedDuration/time.Minute))
	}
	if opt.ActualDuration != nil {
		set("actual_duration_minutes", int64(*opt.ActualDuration/time.Minute))
	}

	if len(sets) == 0 {
		return "", nil
	}

	sets = append(sets, "updated_at = NOW()")
	return strings.Join(sets, ", "), args
}
