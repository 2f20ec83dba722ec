package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo/internal/contextentry"
	"smart-todo/pkg/log"
)

// Handler is the public interface for the context-entry HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc contextentry.UseCase
}

// New creates a new HTTP handler for the context-entry domain.
func New(l log.Logger, uc contextentry.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
