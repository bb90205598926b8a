package match

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/keita-f/scrimmage/config"
	mw "github.com/keita-f/scrimmage/internal/middleware"
	"github.com/keita-f/scrimmage/pkg/cache"
)

func RegisterMatchRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, tags *cache.Registry) {
	matchRepo := NewMatchRepository(db)
	matchController := NewMatchController(matchRepo, appConfig, tags)

	matches := router.Group("/matches")
	matches.Use(mw.AuthMiddleware(appConfig.JWT.Secret))
	{
		matches.GET("", matchController.ListMatches)
		matches.GET("/:match_id", matchController.GetMatch)
		matches.DELETE("/:match_id", matchController.CancelMatch)
	}

	// Owner decisions live on the application resource but drive the match
	// state machine, so they are wired here.
	decisions := router.Group("/applications")
	decisions.Use(mw.AuthMiddleware(appConfig.JWT.Secret))
	{
		decisions.PUT("/:application_id", matchController.DecideApplication)
	}
}
