package game

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/keita-f/scrimmage/config"
	mw "github.com/keita-f/scrimmage/internal/middleware"
	"github.com/keita-f/scrimmage/pkg/cache"
)

func RegisterGameRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, tags *cache.Registry) {
	gameRepo := NewGameRepository(db)
	gameController := NewGameController(gameRepo, appConfig, tags)

	publicGames := router.Group("/games")
	publicGames.Use(mw.OptionalAuth(appConfig.JWT.Secret))
	{
		publicGames.GET("", gameController.ListGames)
		publicGames.GET("/search", gameController.SearchGames)
		publicGames.GET("/:game_id", gameController.GetGame)
	}

	authGames := router.Group("/games")
	authGames.Use(mw.AuthMiddleware(appConfig.JWT.Secret))
	{
		authGames.POST("", gameController.CreateGame)
		authGames.PUT("/:game_id", gameController.UpdateGame)
		authGames.DELETE("/:game_id", gameController.DeleteGame)
	}
}
