package postgre

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"smart-todo/internal/model"
	"smart-todo/internal/task/repository"
	"smart-todo/pkg/log"
)

const (
	categoryCacheSize = 256
	categoryCacheTTL  = 10 * time.Minute
)

type implRepository struct {
	db *sql.DB
	l  log.Logger

	// get-or-create-by-name is the hottest category path; cache resolved
	// names so repeated enrichment runs skip the round trip.
	categoryCache *expirable.LRU[string, model.TaskCategory]
}

// New creates a new PostgreSQL-backed Repository for the task domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("task/repository/postgre: db is required")
	}
	return &implRepository{
		db:            db,
		l:             l,
		categoryCache: expirable.NewLRU[string, model.TaskCategory](categoryCacheSize, nil, categoryCacheTTL),
	}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/postgre.%s", method)
}
