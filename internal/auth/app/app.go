package app

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/sreekarnv/mint/config"
	"github.com/sreekarnv/mint/internal/auth"
	"github.com/sreekarnv/mint/internal/auth/handlers"
	"github.com/sreekarnv/mint/internal/auth/models"
	"github.com/sreekarnv/mint/internal/auth/service"
	"github.com/sreekarnv/mint/internal/fabric"
	"github.com/sreekarnv/mint/internal/repository/posgrest"
)

type App struct {
	config *config.Config
	Router *gin.Engine
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg

	db, err := cfg.DB.GormConnect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}

	broker, err := fabric.NewAMQP(cfg.Rabbit)
	if err != nil {
		log.Fatalf("failed to connect to broker: %v", err)
	}
	if err := broker.DeclareTopology(); err != nil {
		log.Fatalf("failed to declare topology: %v", err)
	}

	userRepo := posgrest.New[models.User](db)
	tokens := auth.NewTokenManager(cfg.JWT.SECRET, cfg.JWT.TTL)
	authService := service.NewAuthService(userRepo, broker, tokens)
	authHandler := handlers.NewAuthHandler(authService)

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(authHandler, tokens)
}

func (a *App) Run() {
	err := a.Router.Run(fmt.Sprintf(":%s", a.config.APP.PORT))
	if err != nil {
		panic(err)
	}
}
