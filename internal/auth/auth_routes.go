package auth

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/keita-f/scrimmage/config"
	"github.com/keita-f/scrimmage/internal/middleware"
)

func RegisterAuthRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	authRepo := NewAuthRepository(db)
	authController := NewAuthController(authRepo, appConfig)

	authPublic := router.Group("/auth")
	{
		authPublic.POST("/register", authController.Register)
		authPublic.POST("/login", authController.Login)
		authPublic.POST("/logout", authController.Logout)
	}

	authProtected := router.Group("/auth")
	authProtected.Use(middleware.AuthMiddleware(appConfig.JWT.Secret))
	{
		authProtected.GET("/me", authController.Me)
	}
}
