package middleware

import (
	"net/http"
	"strings"

	"jobhub_backend/internal/auth"
	"jobhub_backend/internal/logger"
	"jobhub_backend/internal/models"
	"jobhub_backend/internal/repositories"
	"jobhub_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware - проверка Bearer-токена и привязка пользователя к запросу.
// Claims токена не считаются истиной: пользователь перечитывается из базы на
// каждом запросе, поэтому блокировка действует сразу, без отзыва токенов.
func AuthMiddleware(tokenManager *auth.TokenManager, userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokenManager.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		user, err := userRepo.FindByEmail(c.Request.Context(), claims.Email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}

		if !user.CanAuthenticate() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Account is blocked or deactivated"})
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Set(contextkeys.CurrentUserKey, user)
		c.Next()
	}
}

// AdminMiddleware - пускает дальше только администратора
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetCurrentUser(c)
		if !auth.IsAdmin(user) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient permissions"})
			return
		}
		c.Next()
	}
}

// GetCurrentUser извлекает привязанного пользователя из контекста
func GetCurrentUser(c *gin.Context) *models.User {
	val, exists := c.Get(contextkeys.CurrentUserKey)
	if !exists {
		return nil
	}

	user, ok := val.(*models.User)
	if !ok {
		return nil
	}
	return user
}
