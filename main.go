package main

import (
	"log"

	"github.com/keita-f/scrimmage/config"
	_ "github.com/keita-f/scrimmage/docs"
	"github.com/keita-f/scrimmage/internal/application"
	"github.com/keita-f/scrimmage/internal/game"
	"github.com/keita-f/scrimmage/internal/match"
	"github.com/keita-f/scrimmage/internal/scheduler"
	"github.com/keita-f/scrimmage/internal/user"
	"github.com/keita-f/scrimmage/pkg/cache"
	"github.com/keita-f/scrimmage/routes"
)

// @title Scrimmage REST API
// @version 1.0
// @description Practice-game matching for university club sports teams: post open game slots, apply to them, and confirm matches.
// @host localhost:8080
// @BasePath /api
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&user.User{},
		&game.Game{},
		&application.Application{},
		&match.Match{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	sweeper, err := scheduler.StartApplicationSweeper(db)
	if err != nil {
		log.Fatalf("Failed to start application sweeper: %v", err)
	}
	defer func() { _ = sweeper.Shutdown() }()

	tags := cache.New()
	r := routes.SetupRoutes(db, cfg, tags)

	log.Printf("Starting server on port %s in %s mode", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
