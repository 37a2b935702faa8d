package controllers

import (
	"net/http"

	"starblog/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CatalogController struct {
	svc *services.CatalogService
}

func NewCatalogController(db *gorm.DB) *CatalogController {
	return &CatalogController{svc: services.NewCatalogService(db)}
}

// GET /people
func (cc *CatalogController) ListPeople(c *gin.Context) {
	people, err := cc.svc.ListPeople(c.Request.Context())
	if err != nil {
		respondError(c, err, "list people")
		return
	}
	c.JSON(http.StatusOK, serializeAll(people))
}

// GET /people/:id
func (cc *CatalogController) GetPerson(c *gin.Context) {
	id, ok := pathID(c, services.ErrPersonNotFound.Message)
	if !ok {
		return
	}
	person, err := cc.svc.GetPerson(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "get person")
		return
	}
	c.JSON(http.StatusOK, person.Serialize())
}

// GET /planets
func (cc *CatalogController) ListPlanets(c *gin.Context) {
	planets, err := cc.svc.ListPlanets(c.Request.Context())
	if err != nil {
		respondError(c, err, "list planets")
		return
	}
	c.JSON(http.StatusOK, serializeAll(planets))
}

// GET /planets/:id
func (cc *CatalogController) GetPlanet(c *gin.Context) {
	id, ok := pathID(c, services.ErrPlanetNotFound.Message)
	if !ok {
		return
	}
	planet, err := cc.svc.GetPlanet(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "get planet")
		return
	}
	c.JSON(http.StatusOK, planet.Serialize())
}

// GET /planets/:id/residents
func (cc *CatalogController) ListResidents(c *gin.Context) {
	id, ok := pathID(c, services.ErrPlanetNotFound.Message)
	if !ok {
		return
	}
	residents, err := cc.svc.ListResidents(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "list residents")
		return
	}
	c.JSON(http.StatusOK, serializeAll(residents))
}

// GET /users
func (cc *CatalogController) ListUsers(c *gin.Context) {
	users, err := cc.svc.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err, "list users")
		return
	}
	c.JSON(http.StatusOK, serializeAll(users))
}
