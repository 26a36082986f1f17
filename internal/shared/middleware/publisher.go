package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spycraft69/GAMA-Product-Request/internal/shared"
)

// PublisherMiddleware gates catalog and profile mutation routes.
// Requires AuthMiddleware to have run first: the caller must carry the
// PUBLISHER role and a publisher profile id.
func PublisherMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		roleInterface, exists := c.Get(shared.ContextUserRole)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Access denied: publisher role required",
			})
			c.Abort()
			return
		}

		role, ok := roleInterface.(string)
		if !ok || role != "PUBLISHER" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Access denied: publisher role required",
			})
			c.Abort()
			return
		}

		publisherID := c.GetString(shared.ContextPublisherID)
		if publisherID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Access denied: publisher profile missing",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
