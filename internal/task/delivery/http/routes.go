package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes require a resolved caller identity.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", mw.Auth(), h.Create)
		tasks.GET("", mw.Auth(), h.List)
		tasks.GET("/stats", mw.Auth(), h.Stats)
		tasks.GET("/export", mw.Auth(), h.Export)
		tasks.GET("/:id", mw.Auth(), h.Detail)
		tasks.PUT("/:id", mw.Auth(), h.Update)
		tasks.DELETE("/:id", mw.Auth(), h.Delete)
	}

	categories := rg.Group("/categories")
	{
		categories.POST("", mw.Auth(), h.CreateCategory)
		categories.GET("", mw.Auth(), h.ListCategories)
		categories.GET("/popular", mw.Auth(), h.PopularCategories)
	}
}
