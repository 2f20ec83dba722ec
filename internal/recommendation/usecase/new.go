package usecase

import (
	"smart-todo/internal/enrichment/queue"
	"smart-todo/internal/recommendation"
	"smart-todo/internal/recommendation/repository"
	taskRepo "smart-todo/internal/task/repository"
	"smart-todo/pkg/log"
)

type implUseCase struct {
	l        log.Logger
	repo     repository.Repository
	taskRepo taskRepo.Repository
	enqueuer queue.Enqueuer
}

var _ recommendation.UseCase = (*implUseCase)(nil)

// New creates a new recommendation UseCase instance. The task repository
// is required for Accept, which materializes a recommendation as a Task.
func New(l log.Logger, repo repository.Repository, tr taskRepo.Repository, enqueuer queue.Enqueuer) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		taskRepo: tr,
		enqueuer: enqueuer,
	}
}
