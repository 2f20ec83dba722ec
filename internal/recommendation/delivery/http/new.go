package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo/internal/recommendation"
	"smart-todo/pkg/log"
)

// Handler is the public interface for the recommendation HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Accept(c *gin.Context)
	Dismiss(c *gin.Context)
	Trigger(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc recommendation.UseCase
}

// New creates a new HTTP handler for the recommendation domain.
func New(l log.Logger, uc recommendation.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
