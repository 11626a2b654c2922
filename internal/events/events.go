// Package events holds the wire payloads exchanged between services.
// Consumers validate the shape they expect; a malformed payload is a
// validation error, never a panic.
package events

import (
	"errors"
	"fmt"
)

type TransactionType string

const (
	TypeTopUp    TransactionType = "TopUp"
	TypeTransfer TransactionType = "Transfer"
)

func (t TransactionType) IsValid() bool {
	switch t {
	case TypeTopUp, TypeTransfer:
		return true
	default:
		return false
	}
}

// TransactionCreatedEvent carries everything the wallet side needs; no
// downstream lookup is assumed. The same shape rides transaction.created,
// transaction.completed and transaction.failed.
type TransactionCreatedEvent struct {
	TransactionID string          `json:"transactionId"`
	Type          TransactionType `json:"type"`
	Amount        int64           `json:"amount"`
	UserID        string          `json:"userId,omitempty"`
	FromUserID    string          `json:"fromUserId,omitempty"`
	ToUserID      string          `json:"toUserId,omitempty"`
	Reason        string          `json:"reason,omitempty"`
}

func (e TransactionCreatedEvent) Validate() error {
	if e.TransactionID == "" {
		return errors.New("event missing transactionId")
	}
	if !e.Type.IsValid() {
		return fmt.Errorf("unknown transaction type %q", e.Type)
	}
	if e.Amount <= 0 {
		return fmt.Errorf("invalid amount %d", e.Amount)
	}
	return nil
}

type FinalStatus string

const (
	StatusCompleted FinalStatus = "Completed"
	StatusFailed    FinalStatus = "Failed"
)

// WalletFinalizedEvent closes the saga: the wallet service reports the
// terminal outcome back to the transactions service.
type WalletFinalizedEvent struct {
	TransactionID string      `json:"transactionId"`
	Status        FinalStatus `json:"status"`
	Reason        string      `json:"reason,omitempty"`
}

func (e WalletFinalizedEvent) Validate() error {
	if e.TransactionID == "" {
		return errors.New("event missing transactionId")
	}
	if e.Status != StatusCompleted && e.Status != StatusFailed {
		return fmt.Errorf("unknown final status %q", e.Status)
	}
	return nil
}

// UserRegisteredEvent is published by the auth service on signup. The
// wallet service provisions a zero-balance wallet from it and the
// notifications service sends the welcome email.
type UserRegisteredEvent struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

func (e UserRegisteredEvent) Validate() error {
	if e.ID == "" {
		return errors.New("event missing user id")
	}
	return nil
}
