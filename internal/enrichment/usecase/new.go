package usecase

import (
	contextRepo "smart-todo/internal/contextentry/repository"
	"smart-todo/internal/enrichment"
	recRepo "smart-todo/internal/recommendation/repository"
	schedRepo "smart-todo/internal/schedule/repository"
	taskRepo "smart-todo/internal/task/repository"
	"smart-todo/pkg/gcalendar"
	"smart-todo/pkg/log"
)

// Config holds the preference hints fed into the prompts.
type Config struct {
	// WorkHours is a free-form working-hours hint, e.g. "9am-6pm".
	WorkHours string

	// CalendarID selects the integrated calendar used when a schedule
	// request does not supply its own events. Ignored when no calendar
	// client is wired.
	CalendarID string
}

type implUseCase struct {
	l   log.Logger
	cfg Config

	reasoner    enrichment.Reasoner
	taskRepo    taskRepo.Repository
	contextRepo contextRepo.Repository
	recRepo     recRepo.Repository
	schedRepo   schedRepo.Repository

	// calendar is optional. When nil, schedule runs use only the
	// caller-supplied events.
	calendar gcalendar.IGCalendar
}

var _ enrichment.UseCase = (*implUseCase)(nil)

// New creates the enrichment UseCase wiring all four domains together.
func New(
	l log.Logger,
	cfg Config,
	r enrichment.Reasoner,
	tr taskRepo.Repository,
	cr contextRepo.Repository,
	rr recRepo.Repository,
	sr schedRepo.Repository,
	calendar gcalendar.IGCalendar,
) *implUseCase {
	return &implUseCase{
		l:           l,
		cfg:         cfg,
		reasoner:    r,
		taskRepo:    tr,
		contextRepo: cr,
		recRepo:     rr,
		schedRepo:   sr,
		calendar:    calendar,
	}
}
