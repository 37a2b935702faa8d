package routes

import (
	"starblog/controllers"

	"github.com/gin-gonic/gin"
)

func SetupSitemapRoutes(r *gin.Engine) {
	sitemapController := controllers.NewSitemapController(r.Routes)
	r.GET("/", sitemapController.Index)
}
