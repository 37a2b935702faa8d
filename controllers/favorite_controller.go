package controllers

import (
	"net/http"

	"starblog/models"
	"starblog/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FavoriteController struct {
	svc *services.FavoriteService
}

func NewFavoriteController(db *gorm.DB) *FavoriteController {
	return &FavoriteController{svc: services.NewFavoriteService(db)}
}

// user_id выставляет CurrentUserMiddleware
func currentUserID(c *gin.Context) uint {
	return uint(c.GetInt("user_id"))
}

// GET /users/favorites
func (fc *FavoriteController) List(c *gin.Context) {
	favorites, err := fc.svc.ListFavorites(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err, "list favorites")
		return
	}
	c.JSON(http.StatusOK, serializeAll(favorites))
}

// POST /favorite/planet/:id
func (fc *FavoriteController) AddPlanet(c *gin.Context) {
	id, ok := pathID(c, services.ErrPlanetNotFound.Message)
	if !ok {
		return
	}
	fav, err := fc.svc.AddPlanetFavorite(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		respondError(c, err, "add favorite planet")
		return
	}
	created(c, "Planet added to favorites", fav)
}

// POST /favorite/people/:id
func (fc *FavoriteController) AddPerson(c *gin.Context) {
	id, ok := pathID(c, services.ErrPersonNotFound.Message)
	if !ok {
		return
	}
	fav, err := fc.svc.AddPersonFavorite(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		respondError(c, err, "add favorite person")
		return
	}
	created(c, "Person added to favorites", fav)
}

// DELETE /favorite/planet/:id
func (fc *FavoriteController) RemovePlanet(c *gin.Context) {
	id, ok := pathID(c, services.ErrFavoritePlanetNotFound.Message)
	if !ok {
		return
	}
	if err := fc.svc.RemovePlanetFavorite(c.Request.Context(), currentUserID(c), id); err != nil {
		respondError(c, err, "delete favorite planet")
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Favorite planet deleted successfully"})
}

// DELETE /favorite/people/:id
func (fc *FavoriteController) RemovePerson(c *gin.Context) {
	id, ok := pathID(c, services.ErrFavoritePersonNotFound.Message)
	if !ok {
		return
	}
	if err := fc.svc.RemovePersonFavorite(c.Request.Context(), currentUserID(c), id); err != nil {
		respondError(c, err, "delete favorite person")
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Favorite person deleted successfully"})
}

func created(c *gin.Context, msg string, fav *models.Favorite) {
	c.JSON(http.StatusCreated, gin.H{
		"msg":      msg,
		"favorite": fav.Serialize(),
	})
}
