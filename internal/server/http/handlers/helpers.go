package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/restomart/restomart/internal/server/http/middleware"
)

// CurrentActorID extracts the authenticated account identifier from context.
func CurrentActorID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.ActorContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}
