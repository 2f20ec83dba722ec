package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	contextHTTP "smart-todo/internal/contextentry/delivery/http"
	contextRepoPg "smart-todo/internal/contextentry/repository/postgre"
	contextUC "smart-todo/internal/contextentry/usecase"
	enrichmentUC "smart-todo/internal/enrichment/usecase"
	"smart-todo/internal/middleware"
	recHTTP "smart-todo/internal/recommendation/delivery/http"
	recRepoPg "smart-todo/internal/recommendation/repository/postgre"
	recUC "smart-todo/internal/recommendation/usecase"
	schedHTTP "smart-todo/internal/schedule/delivery/http"
	schedRepoPg "smart-todo/internal/schedule/repository/postgre"
	taskHTTP "smart-todo/internal/task/delivery/http"
	taskRepoPg "smart-todo/internal/task/repository/postgre"
	taskUC "smart-todo/internal/task/usecase"
)

// registerDomainRoutes wires each domain bottom-up: repository, use
// case, HTTP handler, routes. The enrichment use case is shared by the
// schedule delivery since schedule generation runs synchronously.
func (srv *HTTPServer) registerDomainRoutes(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// Repositories
	taskRepo := taskRepoPg.New(srv.postgresDB, srv.l)
	contextRepo := contextRepoPg.New(srv.postgresDB, srv.l)
	recRepo := recRepoPg.New(srv.postgresDB, srv.l)
	schedRepo := schedRepoPg.New(srv.postgresDB, srv.l)

	// Use cases
	taskUseCase := taskUC.New(srv.l, taskRepo, srv.enqueuer)
	contextUseCase := contextUC.New(srv.l, contextRepo, srv.enqueuer)
	recUseCase := recUC.New(srv.l, recRepo, taskRepo, srv.enqueuer)
	enrichUseCase := enrichmentUC.New(
		srv.l,
		enrichmentUC.Config{
			WorkHours:  srv.cfg.Enrichment.WorkHours,
			CalendarID: srv.cfg.GoogleCalendar.CalendarID,
		},
		srv.reasoner,
		taskRepo,
		contextRepo,
		recRepo,
		schedRepo,
		srv.calendar,
	)

	triggerPerMin := srv.cfg.Enrichment.TriggerRateLimitPerMin

	// Deliveries
	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, taskUseCase), mw)
	contextHTTP.RegisterRoutes(api, contextHTTP.New(srv.l, contextUseCase), mw)
	recHTTP.RegisterRoutes(api, recHTTP.New(srv.l, recUseCase), mw, triggerPerMin)
	schedHTTP.RegisterRoutes(api, schedHTTP.New(srv.l, enrichUseCase), mw, triggerPerMin)

	srv.l.Infof(ctx, "domain routes registered under /api/v1")
	return nil
}
