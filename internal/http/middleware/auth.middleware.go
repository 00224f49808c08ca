package middleware

import (
	"net/http"
	"strings"

	"github.com/Konaisya/construction-company/internal/entity"
	"github.com/Konaisya/construction-company/internal/utils"
	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware resolves the caller from a bearer token (or the token
// cookie) and stores the claims on the request context.
func JWTAuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		} else if cookie, err := c.Cookie("token"); err == nil {
			tokenString = cookie
		}

		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := utils.ValidateJWT(secret, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}

// AdminOnly rejects callers without the ADMIN role. Must run after
// JWTAuthMiddleware.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := utils.CallerFromClaims(c)
		if err != nil || claims.Role != entity.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"status": "FORBIDDEN"})
			return
		}
		c.Next()
	}
}
