package middleware

import (
	"net/http"
	"strings"

	"github.com/docqa/pdfchat-be/types"
	"github.com/docqa/pdfchat-be/utils"
	"github.com/gin-gonic/gin"
)

const UserContextKey = "user"

// AuthMiddleware validates Bearer tokens issued by the identity provider.
// The secret comes from config; an empty secret means the deployment runs
// open and the caller should not install this middleware at all.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, types.ErrorResponse{
				Error: "Authorization header is required",
			})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, types.ErrorResponse{
				Error: "Authorization header format must be Bearer {token}",
			})
			return
		}

		claims, err := utils.ParseUserToken(secret, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, types.ErrorResponse{
				Error: "Invalid token",
			})
			return
		}

		c.Set(UserContextKey, claims)
		c.Next()
	}
}
