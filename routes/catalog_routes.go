package routes

import (
	"starblog/controllers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	catalogController := controllers.NewCatalogController(db)

	people := r.Group("/people")
	{
		people.GET("", catalogController.ListPeople)
		people.GET("/:id", catalogController.GetPerson)
	}

	planets := r.Group("/planets")
	{
		planets.GET("", catalogController.ListPlanets)
		planets.GET("/:id", catalogController.GetPlanet)
		planets.GET("/:id/residents", catalogController.ListResidents)
	}

	r.GET("/users", catalogController.ListUsers)
}
