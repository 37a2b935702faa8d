package routes

import (
	"net/http"
	"time"

	"starblog/config"
	"starblog/middleware"
	"starblog/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter создаёт gin.Engine, регистрирует все маршруты и возвращает роутер
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.New()
	// /people/ и /people - один маршрут, без редиректа (см. NewHandler)
	r.RedirectTrailingSlash = false
	r.HandleMethodNotAllowed = true

	r.Use(
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.APIErrors(),
		cors.New(corsConfig(cfg.CORSOrigins)),
		middleware.CurrentUserMiddleware(uint(cfg.CurrentUserID)),
	)

	r.NoRoute(func(c *gin.Context) {
		_ = c.Error(utils.NewAPIError("Not found", http.StatusNotFound, nil))
	})
	r.NoMethod(func(c *gin.Context) {
		_ = c.Error(utils.NewAPIError("Method not allowed", http.StatusMethodNotAllowed, nil))
	})

	SetupSitemapRoutes(r)
	SetupCatalogRoutes(r, db)
	SetupFavoriteRoutes(r, db)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	return cfg
}
