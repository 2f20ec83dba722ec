package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Generate
// costs an external reasoning call, so it is rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware, triggerPerMin int) {
	sched := rg.Group("/schedule")
	{
		sched.POST("/suggestions", mw.Auth(), mw.RateLimit(triggerPerMin), h.Generate)
		sched.GET("/suggestions", mw.Auth(), h.List)
	}
}
