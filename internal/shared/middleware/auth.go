package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/spycraft69/GAMA-Product-Request/internal/shared"
	"github.com/spycraft69/GAMA-Product-Request/pkg/jwt"
)

// AuthMiddleware validates the Bearer token and loads the session
// identity into the gin context.
func AuthMiddleware(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Read token from Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(401, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		// 2. Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(401, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		// 3. Verify and parse JWT
		claims, err := jwtManager.ValidateToken(parts[1])
		if err != nil {
			c.JSON(401, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		// 4. userID must be a UUID
		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.JSON(401, gin.H{"error": "invalid user ID in token"})
			c.Abort()
			return
		}

		// 5. Expose identity to downstream handlers.
		// Stored as strings: handlers read them with c.GetString.
		c.Set(shared.ContextUserID, userID.String())
		c.Set(shared.ContextUserEmail, claims.Email)
		c.Set(shared.ContextUserRole, claims.Role)
		c.Set(shared.ContextPublisherID, claims.PublisherID)

		c.Next()
	}
}
