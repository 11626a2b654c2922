package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sreekarnv/mint/internal/events"
	"github.com/sreekarnv/mint/internal/fabric"
	"github.com/sreekarnv/mint/internal/middleware"
	"github.com/sreekarnv/mint/internal/wallet/models"
	"github.com/sreekarnv/mint/internal/wallet/service"
)

// WalletServiceIn defines the interface for wallet business logic
// operations.
type WalletServiceIn interface {
	GetWalletByUser(ctx context.Context, userID string) (*models.Wallet, error)
	EnsureWalletExists(ctx context.Context, userID string) (*models.Wallet, error)
	FinalizeTransaction(ctx context.Context, event events.TransactionCreatedEvent) error
}

type WalletHandler struct {
	WalletService WalletServiceIn
}

func Wallet(s WalletServiceIn) *WalletHandler {
	return &WalletHandler{
		WalletService: s,
	}
}

// GET /wallets/me
func (h *WalletHandler) Get(c *gin.Context) {
	wallet, err := h.WalletService.GetWalletByUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, service.ErrWalletNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, wallet)
}

// HandleEvents dispatches fabric deliveries by source queue:
//   - wallet.update.q: settle the transaction against balances
//   - wallet.revert.q: a transaction failed before reaching the wallet;
//     nothing to undo, observed for the log only
//   - wallet.user.q: provision a wallet for a new user
func (h *WalletHandler) HandleEvents(ctx context.Context, queue string, raw []byte) error {
	switch queue {
	case fabric.QueueWalletUpdate:
		var event events.TransactionCreatedEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			logrus.Errorf("Error unmarshalling TransactionCreatedEvent: %s", err.Error())
			return err
		}
		if err := event.Validate(); err != nil {
			logrus.Errorf("Invalid TransactionCreatedEvent: %s", err.Error())
			return err
		}
		return h.WalletService.FinalizeTransaction(ctx, event)

	case fabric.QueueWalletRevert:
		var event events.TransactionCreatedEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			logrus.Errorf("Error unmarshalling TransactionCreatedEvent: %s", err.Error())
			return err
		}
		logrus.Infof("Transaction %s failed upstream: %s", event.TransactionID, event.Reason)
		return nil

	case fabric.QueueWalletUserCreated:
		var event events.UserRegisteredEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			logrus.Errorf("Error unmarshalling UserRegisteredEvent: %s", err.Error())
			return err
		}
		if err := event.Validate(); err != nil {
			logrus.Errorf("Invalid UserRegisteredEvent: %s", err.Error())
			return err
		}
		_, err := h.WalletService.EnsureWalletExists(ctx, event.ID)
		return err

	default:
		logrus.Errorf("queue not allowed %s", queue)
		return nil
	}
}
