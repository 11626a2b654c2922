package dto

import (
	"strings"

	"github.com/sreekarnv/mint/internal/events"
	"github.com/sreekarnv/mint/internal/transactions/models"
)

type TopUp struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

func (t *TopUp) ToEntity(userID string) *models.Transaction {
	return &models.Transaction{
		Type:   events.TypeTopUp,
		UserID: userID,
		Amount: t.Amount,
		Status: models.StatusPending,
	}
}

type Transfer struct {
	Amount   int64  `json:"amount" binding:"required,gt=0"`
	ToUserID string `json:"toUserId" binding:"required"`
}

func (t *Transfer) Sanitize() {
	t.ToUserID = strings.TrimSpace(t.ToUserID)
}

func (t *Transfer) ToEntity(fromUserID string) *models.Transaction {
	return &models.Transaction{
		Type:       events.TypeTransfer,
		FromUserID: fromUserID,
		ToUserID:   t.ToUserID,
		Amount:     t.Amount,
		Status:     models.StatusPending,
	}
}
