package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	entries := rg.Group("/context")
	{
		entries.POST("", mw.Auth(), h.Create)
		entries.GET("", mw.Auth(), h.List)
		entries.GET("/:id", mw.Auth(), h.Detail)
		entries.DELETE("/:id", mw.Auth(), h.Delete)
	}
}
