package middleware

import (
	"net/http"
	"strings"

	"CollabHub/internal/pkg"
	"CollabHub/internal/repository/redis"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey   = "user_id"
	ContextUserRoleKey = "user_role"
)

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"status":  false,
		"message": msg,
		"code":    "UNAUTHENTICATED",
	})
}

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "invalid authorization format")
			return
		}

		tokenStr := parts[1]
		sessionRepo := &redis.SessionRepository{}

		claims, err := pkg.ParseAccess(tokenStr)
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		// redis 校验是否是最新一次登录的 token
		originToken, err := sessionRepo.GetUserToken(claims.UserID)
		if err != nil || originToken != tokenStr {
			abortUnauthorized(c, "account has been logged in elsewhere")
			return
		}

		// 校验通过后滑动续期
		if err = sessionRepo.ExtendUserToken(claims.UserID); err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"status":  false,
				"message": "internal error",
				"code":    "INTERNAL",
			})
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUserRoleKey, claims.Role)
		c.Next()
	}
}
