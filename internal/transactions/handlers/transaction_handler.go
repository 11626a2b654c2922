package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sreekarnv/mint/internal/events"
	"github.com/sreekarnv/mint/internal/fabric"
	"github.com/sreekarnv/mint/internal/middleware"
	"github.com/sreekarnv/mint/internal/transactions/models"
	"github.com/sreekarnv/mint/internal/transactions/models/dto"
	"github.com/sreekarnv/mint/internal/transactions/service"
)

type TransactionService interface {
	CreateTopUp(ctx context.Context, userID string, req *dto.TopUp) (*models.Transaction, error)
	CreateTransfer(ctx context.Context, fromUserID string, req *dto.Transfer) (*models.Transaction, error)
	ProcessTransaction(ctx context.Context, event events.TransactionCreatedEvent) error
	ApplyFinalStatus(ctx context.Context, event events.WalletFinalizedEvent) error
	GetUserTransactions(ctx context.Context, userID string, limit, offset int) (*[]models.Transaction, int64, error)
	GetTransaction(ctx context.Context, id, userID string) (*models.Transaction, error)
}

type TransactionHandler struct {
	Service TransactionService
}

func NewTransactionHandler(s TransactionService) *TransactionHandler {
	return &TransactionHandler{Service: s}
}

// POST /transactions/topup
func (h *TransactionHandler) TopUp(c *gin.Context) {
	var req dto.TopUp
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	txn, err := h.Service.CreateTopUp(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, models.ErrInvalid) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, txn)
}

// POST /transactions/transfer
func (h *TransactionHandler) Transfer(c *gin.Context) {
	var req dto.Transfer
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	txn, err := h.Service.CreateTransfer(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, models.ErrInvalid) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, txn)
}

// GET /transactions
func (h *TransactionHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	txns, total, err := h.Service.GetUserTransactions(c.Request.Context(), middleware.UserID(c), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transactions": txns,
		"pagination": gin.H{
			"total":  total,
			"limit":  limit,
			"offset": offset,
		},
	})
}

// GET /transactions/:id
func (h *TransactionHandler) Get(c *gin.Context) {
	txn, err := h.Service.GetTransaction(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, txn)
}

// HandleEvents dispatches fabric deliveries by source queue:
//   - transaction.created.q: advance the saga (ProcessTransaction)
//   - transaction.finalized.q: write the terminal status (ApplyFinalStatus)
func (h *TransactionHandler) HandleEvents(ctx context.Context, queue string, raw []byte) error {
	switch queue {
	case fabric.QueueTransactionCreated:
		var event events.TransactionCreatedEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			logrus.Errorf("Error unmarshalling TransactionCreatedEvent: %s", err.Error())
			return err
		}
		if err := event.Validate(); err != nil {
			logrus.Errorf("Invalid TransactionCreatedEvent: %s", err.Error())
			return err
		}
		return h.Service.ProcessTransaction(ctx, event)

	case fabric.QueueTransactionFinalized:
		var event events.WalletFinalizedEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			logrus.Errorf("Error unmarshalling WalletFinalizedEvent: %s", err.Error())
			return err
		}
		if err := event.Validate(); err != nil {
			logrus.Errorf("Invalid WalletFinalizedEvent: %s", err.Error())
			return err
		}
		return h.Service.ApplyFinalStatus(ctx, event)

	default:
		return fmt.Errorf("queue not allowed %s", queue)
	}
}
