package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"smart-todo/config"
	"smart-todo/internal/enrichment"
	"smart-todo/internal/enrichment/queue"
	"smart-todo/pkg/gcalendar"
	"smart-todo/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server. Domain repos,
// use cases and deliveries are built in mapHandlers from these.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	cfg        *config.Config
	postgresDB *sql.DB
	enqueuer   queue.Enqueuer
	reasoner   enrichment.Reasoner

	// calendar is optional; nil disables integrated-calendar lookups.
	calendar gcalendar.IGCalendar
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	AppConfig  *config.Config
	PostgresDB *sql.DB
	Enqueuer   queue.Enqueuer
	Reasoner   enrichment.Reasoner
	Calendar   gcalendar.IGCalendar
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		cfg:         cfg.AppConfig,
		postgresDB:  cfg.PostgresDB,
		enqueuer:    cfg.Enqueuer,
		reasoner:    cfg.Reasoner,
		calendar:    cfg.Calendar,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.cfg == nil {
		return errors.New("app config is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.reasoner == nil {
		return errors.New("reasoner is required")
	}
	return nil
}
