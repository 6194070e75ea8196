package middleware

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-factory/internal/models"
	"github.com/gin-gonic/gin"
)

// RequireRole is a middleware that checks if the caller has the required role.
// It must run after JWTAuth.
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		subject := c.GetString(ContextSubject)
		if subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.NewAPIError(models.ErrUnauthorized, "Caller not authenticated"))
			return
		}

		role := c.GetString(ContextRole)
		if role != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, models.NewAPIError(models.ErrForbidden, "Insufficient permissions",
				map[string]interface{}{
					"required_role": requiredRole,
					"user_role":     role,
					"subject":       subject,
				}))
			return
		}

		c.Next()
	}
}
