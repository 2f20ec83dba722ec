package usecase

import (
	"context"

	"smart-todo/internal/model"
	"smart-todo/internal/task"
)

// Stats summarizes the user's workload for dashboards.
func (uc *implUseCase) Stats(ctx context.Context, sc model.Scope) (task.StatsOutput, error) {
	counts, err := uc.repo.CountTaskStats(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "task.uc.Stats CountTaskStats: %v", err)
		return task.StatsOutput{}, err
	}

	out := task.StatsOutput{
		TotalTasks:        counts.Total,
		CompletedTasks:    counts.Completed,
		PendingTasks:      counts.Pending,
		InProgressTasks:   counts.InProgress,
		HighPriorityTasks: counts.HighPriority,
		OverdueTasks:      counts.Overdue,
		AvgCompletionTime: counts.AvgCompletionHours,
	}
	if counts.Total > 0 {
		out.CompletionRate = float64(counts.Completed) / float64(counts.Total)
	}
	return out, nil
}
