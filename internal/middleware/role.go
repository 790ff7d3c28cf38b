package middleware

import (
	"net/http"
	"restaurant-platform/pkg/utils"

	"github.com/gin-gonic/gin"
)

func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			utils.ErrorResponse(c, http.StatusForbidden, "Role not found in context")
			c.Abort()
			return
		}

		userRole := role.(string)

		for _, allowedRole := range allowedRoles {
			if userRole == allowedRole {
				c.Next()
				return
			}
		}

		utils.ErrorResponse(c, http.StatusForbidden, "Insufficient permissions")
		c.Abort()
	}
}

func OwnerOnly() gin.HandlerFunc {
	return RoleMiddleware("owner")
}

func ClientOnly() gin.HandlerFunc {
	return RoleMiddleware("client")
}

func DeliveryOnly() gin.HandlerFunc {
	return RoleMiddleware("delivery")
}

func AdminOnly() gin.HandlerFunc {
	return RoleMiddleware("admin")
}
