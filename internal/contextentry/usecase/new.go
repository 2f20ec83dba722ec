package usecase

import (
	"smart-todo/internal/contextentry"
	"smart-todo/internal/contextentry/repository"
	"smart-todo/internal/enrichment/queue"
	"smart-todo/pkg/log"
)

type implUseCase struct {
	l        log.Logger
	repo     repository.Repository
	enqueuer queue.Enqueuer
}

var _ contextentry.UseCase = (*implUseCase)(nil)

// New creates a new context-entry UseCase instance.
// The enqueuer may be nil; entry creation then skips the analysis job.
func New(l log.Logger, repo repository.Repository, enqueuer queue.Enqueuer) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		enqueuer: enqueuer,
	}
}
