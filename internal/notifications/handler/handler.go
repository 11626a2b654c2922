package handler

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/sreekarnv/mint/internal/events"
	"github.com/sreekarnv/mint/internal/fabric"
)

// EmailServiceIn defines the interface for outbound notifications.
type EmailServiceIn interface {
	SendSignupEmail(ctx context.Context, user events.UserRegisteredEvent) error
	SendTransactionEmail(ctx context.Context, event events.TransactionCreatedEvent, completed bool) error
}

type NotificationsHandler struct {
	EmailService EmailServiceIn
}

func Notifications(s EmailServiceIn) *NotificationsHandler {
	return &NotificationsHandler{
		EmailService: s,
	}
}

func (h *NotificationsHandler) HandleEvents(ctx context.Context, queue string, raw []byte) error {
	switch queue {
	case fabric.QueueEmailSignup:
		var event events.UserRegisteredEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			logrus.Errorf("Error unmarshalling UserRegisteredEvent: %s", err.Error())
			return err
		}
		if err := event.Validate(); err != nil {
			logrus.Errorf("Invalid UserRegisteredEvent: %s", err.Error())
			return err
		}
		return h.EmailService.SendSignupEmail(ctx, event)

	case fabric.QueueEmailTxCompleted, fabric.QueueEmailTxFailed:
		var event events.TransactionCreatedEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			logrus.Errorf("Error unmarshalling TransactionCreatedEvent: %s", err.Error())
			return err
		}
		return h.EmailService.SendTransactionEmail(ctx, event, queue == fabric.QueueEmailTxCompleted)

	default:
		logrus.Errorf("queue not allowed %s", queue)
		return nil
	}
}
