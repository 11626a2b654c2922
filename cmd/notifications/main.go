package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/sreekarnv/mint/config"
	"github.com/sreekarnv/mint/internal/fabric"
	"github.com/sreekarnv/mint/internal/notifications/email"
	"github.com/sreekarnv/mint/internal/notifications/handler"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.New()
	if err != nil {
		fmt.Println("Error reading config file", err)
		os.Exit(1)
	}

	broker, err := fabric.NewAMQP(cfg.Rabbit)
	if err != nil {
		log.Fatalf("failed to connect to broker: %v", err)
	}
	if err := broker.DeclareTopology(); err != nil {
		log.Fatalf("failed to declare topology: %v", err)
	}

	emailService := email.NewEmailService(email.LogMailer{})
	notificationsHandler := handler.Notifications(emailService)

	queues := []string{
		fabric.QueueEmailSignup,
		fabric.QueueEmailTxCompleted,
		fabric.QueueEmailTxFailed,
	}
	for _, queue := range queues {
		if err := broker.Consume(ctx, queue, func(ctx context.Context, queue string, raw []byte) error {
			logrus.Infof("Received event on %s: %s", queue, string(raw))
			return notificationsHandler.HandleEvents(ctx, queue, raw)
		}); err != nil {
			log.Fatalf("failed to consume %s: %v", queue, err)
		}
	}

	<-ctx.Done()

	if err := broker.Close(); err != nil {
		log.Println("Error closing broker:", err)
	}

	log.Println("Notifications service stopped")
}
