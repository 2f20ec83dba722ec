package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Trigger
// costs an external reasoning call downstream, so it is rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware, triggerPerMin int) {
	recs := rg.Group("/recommendations")
	{
		recs.GET("", mw.Auth(), h.List)
		recs.POST("/trigger", mw.Auth(), mw.RateLimit(triggerPerMin), h.Trigger)
		recs.POST("/:id/accept", mw.Auth(), h.Accept)
		recs.POST("/:id/dismiss", mw.Auth(), h.Dismiss)
	}
}
