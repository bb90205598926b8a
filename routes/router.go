package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/keita-f/scrimmage/config"
	"github.com/keita-f/scrimmage/internal/application"
	"github.com/keita-f/scrimmage/internal/auth"
	"github.com/keita-f/scrimmage/internal/game"
	"github.com/keita-f/scrimmage/internal/match"
	"github.com/keita-f/scrimmage/pkg/cache"
)

// SetupRoutes wires every feature package onto one engine. The DB handle and
// config are injected here and flow down to the repositories; nothing reads
// package-level state.
func SetupRoutes(db *gorm.DB, appConfig *config.Config, tags *cache.Registry) *gin.Engine {
	if appConfig.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{appConfig.App.FrontendURL}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	r.Use(cors.New(corsConfig))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, db, appConfig)
	game.RegisterGameRoutes(api, db, appConfig, tags)
	application.RegisterApplicationRoutes(api, db, appConfig, tags)
	match.RegisterMatchRoutes(api, db, appConfig, tags)

	return r
}
