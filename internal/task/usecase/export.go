package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"time"

	"smart-todo/internal/model"
	repo "smart-todo/internal/task/repository"
)

const exportPageSize = 500

var exportHeader = []string{
	"id", "title", "description", "priority", "status",
	"deadline", "created_at", "completed_at",
	"ai_suggested_priority", "ai_suggested_deadline", "context_tags",
}

// ExportCSV renders all of the user's tasks as CSV, newest first.
func (uc *implUseCase) ExportCSV(ctx context.Context, sc model.Scope) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}

	offset := 0
	for {
		tasks, total, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
			UserID: sc.UserID,
			Limit:  exportPageSize,
			Offset: offset,
		})
		if err != nil {
			uc.l.Errorf(ctx, "task.uc.ExportCSV ListTasks: %v", err)
			return nil, err
		}

		for _, t := range tasks {
			if err := w.Write(exportRecord(t)); err != nil {
				return nil, err
			}
		}

		offset += len(tasks)
		if len(tasks) == 0 || offset >= total {
			break
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exportRecord(t model.Task) []string {
	formatTime := func(ts *time.Time) string {
		if ts == nil {
			return ""
		}
		return ts.Format(time.RFC3339)
	}

	suggestedPriority := ""
	if t.AISuggestedPriority != nil {
		suggestedPriority = strconv.Itoa(*t.AISuggestedPriority)
	}

	tags := ""
	for i, tag := range t.ContextTags {
		if i > 0 {
			tags += ";"
		}
		tags += tag
	}

	return []string{
		t.ID, t.Title, t.Description,
		strconv.Itoa(t.Priority), string(t.Status),
		formatTime(t.Deadline),
		t.CreatedAt.Format(time.RFC3339),
		formatTime(t.CompletedAt),
		suggestedPriority,
		formatTime(t.AISuggestedDeadline),
		tags,
	}
}
