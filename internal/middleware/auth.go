package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"smart-todo/internal/model"
	"smart-todo/pkg/response"
)

const (
	userIDHeader = "X-User-ID"
	scopeKey     = "scope"
)

// Auth resolves the caller identity from the X-User-ID header and stores
// a model.Scope in the gin context. Identity is trusted from the edge
// proxy; requests without it are rejected.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(userIDHeader))
		if userID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{UserID: userID})
		c.Next()
	}
}

// GetScope returns the scope stored by Auth. The second return is false
// when the route was not behind Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
