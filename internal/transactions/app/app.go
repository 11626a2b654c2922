package app

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sreekarnv/mint/config"
	"github.com/sreekarnv/mint/internal/auth"
	"github.com/sreekarnv/mint/internal/cache"
	"github.com/sreekarnv/mint/internal/fabric"
	"github.com/sreekarnv/mint/internal/metrics"
	"github.com/sreekarnv/mint/internal/repository/posgrest"
	"github.com/sreekarnv/mint/internal/transactions/handlers"
	"github.com/sreekarnv/mint/internal/transactions/models"
	"github.com/sreekarnv/mint/internal/transactions/service"
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
	if err := db.AutoMigrate(&models.Transaction{}); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
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

	txnRepo := posgrest.New[models.Transaction](db)
	txnCache := cache.New(cfg.Redis)
	txnService := service.NewTransactionService(txnRepo, broker, txnCache)
	txnHandler := handlers.NewTransactionHandler(txnService)
	tokens := auth.NewTokenManager(cfg.JWT.SECRET, cfg.JWT.TTL)

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(txnHandler, tokens)

	a.initConsumers(txnHandler)

	reconciler := service.NewReconciler(txnService, cfg.Reconcile.StuckAfter, cfg.Reconcile.SweepInterval)
	go reconciler.Run(context.Background())
}

func (a *App) Run() {
	err := a.Router.Run(fmt.Sprintf(":%s", a.config.APP.PORT))
	if err != nil {
		panic(err)
	}
}

func (a *App) initConsumers(txnHandler *handlers.TransactionHandler) {
	ctx := context.Background()

	for _, queue := range []string{fabric.QueueTransactionCreated, fabric.QueueTransactionFinalized} {
		if err := a.broker.Consume(ctx, queue, func(ctx context.Context, queue string, raw []byte) error {
			logrus.Infof("Received event on %s: %s", queue, string(raw))
			return txnHandler.HandleEvents(ctx, queue, raw)
		}); err != nil {
			log.Fatalf("failed to consume %s: %v", queue, err)
		}
	}
}
