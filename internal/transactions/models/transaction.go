package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sreekarnv/mint/internal/events"
)

type TransactionStatus string

const (
	StatusPending    TransactionStatus = "Pending"
	StatusProcessing TransactionStatus = "Processing"
	StatusCompleted  TransactionStatus = "Completed"
	StatusFailed     TransactionStatus = "Failed"
)

// IsTerminal reports whether no further transitions are permitted.
func (s TransactionStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// ErrInvalid is the base of every validation failure; handlers map it to a
// 400 instead of retrying or surfacing a 500.
var ErrInvalid = errors.New("invalid transaction")

var ErrSelfTransfer = fmt.Errorf("%w: cannot transfer money to yourself", ErrInvalid)

// Transaction is the ledger record of one money movement. Amount is an
// integer in the smallest currency unit. Status only ever moves forward:
// Pending → Processing → Completed | Failed.
type Transaction struct {
	ID         string                 `json:"id" gorm:"primaryKey"`
	Type       events.TransactionType `json:"type" gorm:"not null"`
	Status     TransactionStatus      `json:"status" gorm:"index;not null"`
	Amount     int64                  `json:"amount" gorm:"not null"`
	UserID     string                 `json:"userId,omitempty" gorm:"index"`
	FromUserID string                 `json:"fromUserId,omitempty" gorm:"index"`
	ToUserID   string                 `json:"toUserId,omitempty" gorm:"index"`
	Reason     string                 `json:"reason,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}

	return
}

func (t *Transaction) Validate() error {
	if t.Amount <= 0 {
		return fmt.Errorf("%w: amount must be greater than zero", ErrInvalid)
	}

	switch t.Type {
	case events.TypeTopUp:
		if t.UserID == "" {
			return fmt.Errorf("%w: top-up requires a user", ErrInvalid)
		}
	case events.TypeTransfer:
		if t.FromUserID == "" || t.ToUserID == "" {
			return fmt.Errorf("%w: transfer requires both participants", ErrInvalid)
		}
		if t.FromUserID == t.ToUserID {
			return ErrSelfTransfer
		}
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalid, t.Type)
	}

	return nil
}

// Participant reports whether userID is involved in the transaction.
func (t *Transaction) Participant(userID string) bool {
	return t.UserID == userID || t.FromUserID == userID || t.ToUserID == userID
}
