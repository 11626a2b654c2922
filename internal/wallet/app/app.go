package app

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sreekarnv/mint/config"
	"github.com/sreekarnv/mint/internal/auth"
	"github.com/sreekarnv/mint/internal/database"
	"github.com/sreekarnv/mint/internal/fabric"
	"github.com/sreekarnv/mint/internal/metrics"
	"github.com/sreekarnv/mint/internal/wallet/handler"
	"github.com/sreekarnv/mint/internal/wallet/models"
	walletrepo "github.com/sreekarnv/mint/internal/wallet/repository/posgrest"
	"github.com/sreekarnv/mint/internal/wallet/service"
)

type App struct {
	config *config.Config
	Router *gin.Engine
	broker fabric.Broker
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg

	db, err := cfg.DB.GormConnect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.Wallet{}); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}

	if os.Getenv("GO_ENV") == "local" {
		if err := database.SeedWallets(db); err != nil {
			log.Printf("Warning: failed to seed wallets: %v", err)
		}
	}

	broker, err := fabric.NewAMQP(cfg.Rabbit)
	if err != nil {
		log.Fatalf("failed to connect to broker: %v", err)
	}
	if err := broker.DeclareTopology(); err != nil {
		log.Fatalf("failed to declare topology: %v", err)
	}
	a.broker = broker

	metrics.Register()

	walletRepo := walletrepo.New(db)
	walletService := service.NewWalletService(broker, walletRepo)
	walletHandler := handler.Wallet(walletService)
	tokens := auth.NewTokenManager(cfg.JWT.SECRET, cfg.JWT.TTL)

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(walletHandler, tokens)

	a.initConsumers(walletHandler)
}

func (a *App) Run() {
	err := a.Router.Run(fmt.Sprintf(":%s", a.config.APP.PORT))
	if err != nil {
		panic(err)
	}
}

func (a *App) initConsumers(walletHandler *handler.WalletHandler) {
	ctx := context.Background()

	queues := []string{
		fabric.QueueWalletUpdate,
		fabric.QueueWalletRevert,
		fabric.QueueWalletUserCreated,
	}
	for _, queue := range queues {
		if err := a.broker.Consume(ctx, queue, func(ctx context.Context, queue string, raw []byte) error {
			logrus.Infof("Received event on %s: %s", queue, string(raw))
			return walletHandler.HandleEvents(ctx, queue, raw)
		}); err != nil {
			log.Fatalf("failed to consume %s: %v", queue, err)
		}
	}
}
