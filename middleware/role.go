package middleware

import (
	"net/http"

	userRepo "github.com/Vic-Sports/Vic-Sports-BE-sub001/database/repository/user"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// RequireRole gates a route group to users whose role is in the allowed set.
// It must run after JWTAuthUserMiddleware, which sets "userID" (and usually
// "userRole") on the context.
func RequireRole(repo userRepo.UserRepository, roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		role, ok := c.Get("userRole")
		if !ok {
			// Auth cache hits skip the DB read; resolve the role here.
			userID := c.GetString("userID")
			if userID == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
				return
			}
			usr, err := repo.GetByIDWithProjection(userID, bson.M{"id": 1, "role": 1})
			if err != nil || usr == nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
				return
			}
			role = usr.Role
			c.Set("userRole", usr.Role)
		}

		if roleStr, _ := role.(string); !allowed[roleStr] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}
