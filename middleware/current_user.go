package middleware

import (
	"github.com/gin-gonic/gin"
)

// CurrentUserMiddleware кладёт в контекст user_id текущего пользователя.
// Аутентификации нет: id один на весь сервер и берётся из конфига (CURRENT_USER_ID).
func CurrentUserMiddleware(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", int(userID))
		c.Next()
	}
}
