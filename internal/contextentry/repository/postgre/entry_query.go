package postgre

import (
	"fmt"
	"strings"

	repo "smart-todo/internal/contextentry/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneEntry.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneEntryOptions) (string, []any) {
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

func (r *implRepository) buildFilterConditions(opt repo.ListEntriesOptions, idx int) ([]string, []any, int) {
	var conditions []string
	var args []any

	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}
	if opt.EntryType != "" {
		conditions = append(conditions, fmt.Sprintf("entry_type = $%d", idx))
		args = append(args, string(opt.EntryType))
		idx++
	}
	if opt.DateFrom != nil {
		conditions = append(conditions, fmt.Sprintf("entry_date >= $%d", idx))
		args = append(args, *opt.DateFrom)
		idx++
	}
	if opt.DateTo != nil {
		conditions = append(conditions, fmt.Sprintf("entry_date <= $%d", idx))
		args = append(args, *opt.DateTo)
		idx++
	}
	if opt.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(content ILIKE $%d OR summary ILIKE $%d)", idx, idx+1))
		pattern := "%" + opt.Search + "%"
		args = append(args, pattern, pattern)
		idx += 2
	}

	return conditions, args, idx
}

// buildCountQuery builds WHERE clause + args for counting entries.
func (r *implRepository) buildCountQuery(opt repo.ListEntriesOptions) (string, []any) {
	conditions, args, _ := r.buildFilterConditions(opt, 1)
	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause.
func (r *implRepository) buildListQuery(opt repo.ListEntriesOptions) (string, []any) {
	var parts []string

	conditions, args, idx := r.buildFilterConditions(opt, 1)
	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	parts = append(parts, "ORDER BY entry_date DESC, created_at DESC")

	limit := opt.Limit
	if limit <= 0 {
		limit = 20
	}
	parts = append(parts, fmt.Sprintf("LIMIT $%d OFFSET $%d", idx, idx+1))
	args = append(args, limit, opt.Offset)

	return strings.Join(parts, " "), args
}
