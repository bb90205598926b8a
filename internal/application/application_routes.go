package application

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/keita-f/scrimmage/config"
	"github.com/keita-f/scrimmage/internal/game"
	mw "github.com/keita-f/scrimmage/internal/middleware"
	"github.com/keita-f/scrimmage/pkg/cache"
)

func RegisterApplicationRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, tags *cache.Registry) {
	appRepo := NewApplicationRepository(db)
	gameRepo := game.NewGameRepository(db)
	appController := NewApplicationController(appRepo, gameRepo, appConfig, tags)

	applications := router.Group("/applications")
	applications.Use(mw.AuthMiddleware(appConfig.JWT.Secret))
	{
		applications.GET("", appController.ListApplications)
		applications.GET("/:application_id", appController.GetApplication)
		applications.POST("", appController.CreateApplication)
		applications.DELETE("/:application_id", appController.DeleteApplication)
	}
}
