package middleware

import (
	"net/http"
	"restaurant-platform/internal/config"
	domainUser "restaurant-platform/internal/domain/user"
	"restaurant-platform/pkg/utils"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid authorization header format")
			c.Abort()
			return
		}

		token := parts[1]

		claims, err := utils.ValidateToken(token, cfg.JWT.Secret)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// CurrentUser rebuilds the authenticated-user value the auth middleware
// resolved from the token; it is passed explicitly to manager methods that
// require an owner.
func CurrentUser(c *gin.Context) (*domainUser.User, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		return nil, false
	}

	id, ok := userID.(uuid.UUID)
	if !ok {
		return nil, false
	}

	u := &domainUser.User{ID: id}
	if email, exists := c.Get("email"); exists {
		if e, ok := email.(string); ok {
			u.Email = e
		}
	}
	if role, exists := c.Get("role"); exists {
		if r, ok := role.(string); ok {
			u.Role = domainUser.Role(r)
		}
	}

	return u, true
}
