package utils

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// BasicVerifyFunc checks a username/password pair against the stored
// admin credential and returns the admin id on success.
type BasicVerifyFunc func(username, password string) (uint64, bool)

// AuthMiddleware verifies the Authorization header before any handler runs.
// Bearer tokens are checked as JWTs; Basic credentials are checked against
// the admin credential via verify.
func AuthMiddleware(verify BasicVerifyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
			c.Abort()
			return
		}

		if username, password, ok := c.Request.BasicAuth(); ok {
			if verify == nil {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
				c.Abort()
				return
			}
			adminID, ok := verify(username, password)
			if !ok {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
				c.Abort()
				return
			}
			c.Set("admin_id", adminID)
			c.Set("username", username)
			c.Next()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
			c.Abort()
			return
		}
		claims, err := VerifyToken(tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			c.Abort()
			return
		}
		c.Set("admin_id", claims.AdminID)
		c.Set("username", claims.Username)
		c.Next()
	}
}
