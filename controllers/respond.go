package controllers

import (
	"net/http"

	"starblog/services"
	"starblog/utils"

	"github.com/gin-gonic/gin"
)

// respondError переводит ошибку сервиса в HTTP ответ {"error": ...}
func respondError(c *gin.Context, err error, context string) {
	switch {
	case services.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case services.IsConflict(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		utils.LogError(err, context)
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// pathID читает :id; нечисловой id ведёт себя как несуществующая запись
func pathID(c *gin.Context, notFound string) (uint, bool) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
		return 0, false
	}
	return id, true
}

type serializable interface {
	Serialize() map[string]interface{}
}

func serializeAll[T serializable](items []T) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		out = append(out, item.Serialize())
	}
	return out
}
