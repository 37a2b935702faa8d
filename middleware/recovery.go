package middleware

import (
	"net/http"

	"starblog/utils"

	"github.com/gin-gonic/gin"
)

// RecoveryMiddleware отвечает 500 на панику в обработчике.
// id запроса берется из RequestLogger, поэтому его нужно подключать раньше.
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		utils.LogPanic(recovered, c.Request.Method+" "+c.Request.URL.Path, c.GetString(requestIDKey))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	})
}
