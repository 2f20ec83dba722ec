package usecase

import (
	"smart-todo/internal/enrichment/queue"
	"smart-todo/internal/task"
	"smart-todo/internal/task/repository"
	"smart-todo/pkg/log"
)

type implUseCase struct {
	l        log.Logger
	repo     repository.Repository
	enqueuer queue.Enqueuer
}

var _ task.UseCase = (*implUseCase)(nil)

// New creates a new task UseCase instance.
// The enqueuer may be nil; task creation then skips the enrichment job.
func New(l log.Logger, repo repository.Repository, enqueuer queue.Enqueuer) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		enqueuer: enqueuer,
	}
}
