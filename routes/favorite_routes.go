package routes

import (
	"starblog/controllers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupFavoriteRoutes(r *gin.Engine, db *gorm.DB) {
	favoriteController := controllers.NewFavoriteController(db)

	r.GET("/users/favorites", favoriteController.List)

	grp := r.Group("/favorite")
	{
		grp.POST("/planet/:id", favoriteController.AddPlanet)
		grp.DELETE("/planet/:id", favoriteController.RemovePlanet)
		grp.POST("/people/:id", favoriteController.AddPerson)
		grp.DELETE("/people/:id", favoriteController.RemovePerson)
	}
}
