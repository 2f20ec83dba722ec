package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo/internal/enrichment"
	"smart-todo/pkg/log"
)

// Handler is the public interface for the schedule HTTP delivery layer.
// Generation is the one enrichment workflow that runs synchronously, so
// this delivery sits on the enrichment use case directly.
type Handler interface {
	Generate(c *gin.Context)
	List(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc enrichment.UseCase
}

// New creates a new HTTP handler for the schedule domain.
func New(l log.Logger, uc enrichment.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
