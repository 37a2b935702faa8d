package middleware

import (
	"errors"

	"starblog/utils"

	"github.com/gin-gonic/gin"
)

// APIErrors отдаёт *utils.APIError, добавленную обработчиком через c.Error,
// как {"message": ...}. Если ответ уже записан, ничего не делает.
func APIErrors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for _, ginErr := range c.Errors {
			var apiErr *utils.APIError
			if errors.As(ginErr.Err, &apiErr) {
				c.JSON(apiErr.StatusCode, apiErr.ToMap())
				return
			}
		}
	}
}
