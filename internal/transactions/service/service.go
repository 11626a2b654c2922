package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/sreekarnv/mint/internal/events"
	"github.com/sreekarnv/mint/internal/fabric"
	"github.com/sreekarnv/mint/internal/metrics"
	"github.com/sreekarnv/mint/internal/transactions/models"
	"github.com/sreekarnv/mint/internal/transactions/models/dto"
)

// ErrNotFound covers both a missing record and a caller who is not a
// participant; the two are indistinguishable on purpose.
var ErrNotFound = errors.New("transaction not found")

// TransactionRepo defines the persistence operations the ledger needs.
type TransactionRepo interface {
	Create(ctx context.Context, txn *models.Transaction) error
	GetByID(ctx context.Context, id string) (*models.Transaction, error)
	Where(ctx context.Context, query string, args ...interface{}) (*[]models.Transaction, error)
	Page(ctx context.Context, order string, limit, offset int, query string, args ...interface{}) (*[]models.Transaction, int64, error)
	UpdateMap(ctx context.Context, values map[string]interface{}, id string) error
}

// Publisher defines the interface for publishing events to the fabric.
type Publisher interface {
	Publish(ctx context.Context, exchange, key string, message interface{}) error
}

// Cache is the optional read-through cache on single-record lookups.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) bool
	Set(ctx context.Context, key string, value interface{})
	Delete(ctx context.Context, key string)
}

// TransactionService owns transaction records and their lifecycle. It is
// the sole writer of status and reason; balances belong to the wallet
// service and are only ever reconciled through the event fabric.
type TransactionService struct {
	Repo      TransactionRepo
	Publisher Publisher
	Cache     Cache
}

func NewTransactionService(repo TransactionRepo, publisher Publisher, cache Cache) *TransactionService {
	return &TransactionService{
		Repo:      repo,
		Publisher: publisher,
		Cache:     cache,
	}
}

// CreateTopUp persists a Pending top-up and publishes transaction.created.
// Settlement is asynchronous; the caller always gets the record back in
// Pending.
func (s *TransactionService) CreateTopUp(ctx context.Context, userID string, req *dto.TopUp) (*models.Transaction, error) {
	txn := req.ToEntity(userID)
	if err := txn.Validate(); err != nil {
		return nil, err
	}

	if err := s.Repo.Create(ctx, txn); err != nil {
		return nil, err
	}

	event := events.TransactionCreatedEvent{
		TransactionID: txn.ID,
		Type:          txn.Type,
		Amount:        txn.Amount,
		UserID:        txn.UserID,
	}

	if err := s.Publisher.Publish(ctx, fabric.ExchangeTransactionEvents, fabric.KeyTransactionCreated, event); err != nil {
		return nil, err
	}

	metrics.TransactionsCreated.WithLabelValues(string(txn.Type)).Inc()
	return txn, nil
}

// CreateTransfer persists a Pending transfer and publishes
// transaction.created. Self-transfers are rejected before anything is
// persisted or published.
func (s *TransactionService) CreateTransfer(ctx context.Context, fromUserID string, req *dto.Transfer) (*models.Transaction, error) {
	req.Sanitize()
	txn := req.ToEntity(fromUserID)
	if err := txn.Validate(); err != nil {
		return nil, err
	}

	if err := s.Repo.Create(ctx, txn); err != nil {
		return nil, err
	}

	event := events.TransactionCreatedEvent{
		TransactionID: txn.ID,
		Type:          txn.Type,
		Amount:        txn.Amount,
		FromUserID:    txn.FromUserID,
		ToUserID:      txn.ToUserID,
	}

	if err := s.Publisher.Publish(ctx, fabric.ExchangeTransactionEvents, fabric.KeyTransactionCreated, event); err != nil {
		return nil, err
	}

	metrics.TransactionsCreated.WithLabelValues(string(txn.Type)).Inc()
	return txn, nil
}

// ProcessTransaction advances a created transaction toward settlement.
// Redelivery of an already-terminal transaction is a no-op: that status
// guard is the only idempotency mechanism the saga has, so terminal
// records must never transition again. Any locally observable error ends
// as a Failed record plus a transaction.failed event; the consumer itself
// never crashes on a bad transaction.
func (s *TransactionService) ProcessTransaction(ctx context.Context, event events.TransactionCreatedEvent) error {
	if err := s.process(ctx, event); err != nil {
		return s.failTransaction(ctx, event, err.Error())
	}
	return nil
}

func (s *TransactionService) process(ctx context.Context, event events.TransactionCreatedEvent) error {
	txn, err := s.Repo.GetByID(ctx, event.TransactionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("Transaction not found")
		}
		return err
	}

	if txn.Status.IsTerminal() {
		logrus.Infof("Transaction %s already %s, skipping redelivery", txn.ID, txn.Status)
		return nil
	}

	if err := s.Repo.UpdateMap(ctx, map[string]interface{}{"status": models.StatusProcessing}, txn.ID); err != nil {
		return err
	}

	switch event.Type {
	case events.TypeTopUp:
		if event.UserID == "" {
			return errors.New("TopUp missing required fields")
		}
		return s.Publisher.Publish(ctx, fabric.ExchangeTransactionEvents, fabric.KeyTransactionCompleted, events.TransactionCreatedEvent{
			TransactionID: txn.ID,
			Type:          events.TypeTopUp,
			Amount:        txn.Amount,
			UserID:        event.UserID,
		})
	case events.TypeTransfer:
		if event.FromUserID == "" || event.ToUserID == "" {
			return errors.New("Transfer missing required fields")
		}
		return s.Publisher.Publish(ctx, fabric.ExchangeTransactionEvents, fabric.KeyTransactionCompleted, events.TransactionCreatedEvent{
			TransactionID: txn.ID,
			Type:          events.TypeTransfer,
			Amount:        txn.Amount,
			FromUserID:    event.FromUserID,
			ToUserID:      event.ToUserID,
		})
	default:
		return fmt.Errorf("unknown transaction type %q", event.Type)
	}
}

// failTransaction is the ledger-side terminal failure path: the record must
// never stay stuck in Processing when the error was observed locally.
func (s *TransactionService) failTransaction(ctx context.Context, event events.TransactionCreatedEvent, reason string) error {
	if err := s.Repo.UpdateMap(ctx, map[string]interface{}{
		"status": models.StatusFailed,
		"reason": reason,
	}, event.TransactionID); err != nil {
		logrus.Errorf("Error marking transaction %s failed: %s", event.TransactionID, err.Error())
		return err
	}

	s.invalidate(ctx, event.TransactionID)
	metrics.TransactionsFinalized.WithLabelValues(string(models.StatusFailed)).Inc()

	return s.Publisher.Publish(ctx, fabric.ExchangeTransactionEvents, fabric.KeyTransactionFailed, events.TransactionCreatedEvent{
		TransactionID: event.TransactionID,
		Type:          event.Type,
		Amount:        event.Amount,
		Reason:        reason,
	})
}

// ApplyFinalStatus is the idempotent terminal write closing the saga. It is
// safe under redelivery: rewriting the same terminal status changes
// nothing.
func (s *TransactionService) ApplyFinalStatus(ctx context.Context, event events.WalletFinalizedEvent) error {
	values := map[string]interface{}{
		"status": models.TransactionStatus(event.Status),
	}
	if event.Status == events.StatusFailed && event.Reason != "" {
		values["reason"] = event.Reason
	}

	if err := s.Repo.UpdateMap(ctx, values, event.TransactionID); err != nil {
		return err
	}

	s.invalidate(ctx, event.TransactionID)
	metrics.TransactionsFinalized.WithLabelValues(string(event.Status)).Inc()

	if event.Status == events.StatusFailed {
		logrus.Errorf("Transaction %s FAILED: %s", event.TransactionID, event.Reason)
	} else {
		logrus.Infof("Transaction %s finalized: %s", event.TransactionID, event.Status)
	}
	return nil
}

// GetUserTransactions lists the caller's transactions, newest first.
func (s *TransactionService) GetUserTransactions(ctx context.Context, userID string, limit, offset int) (*[]models.Transaction, int64, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.Repo.Page(ctx, "created_at DESC", limit, offset,
		"user_id = ? OR from_user_id = ? OR to_user_id = ?", userID, userID, userID)
}

// GetTransaction returns one transaction the caller participates in,
// through the cache when one is configured.
func (s *TransactionService) GetTransaction(ctx context.Context, id, userID string) (*models.Transaction, error) {
	if s.Cache != nil {
		var cached models.Transaction
		if s.Cache.Get(ctx, cacheKey(id), &cached) {
			if !cached.Participant(userID) {
				return nil, ErrNotFound
			}
			return &cached, nil
		}
	}

	txn, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !txn.Participant(userID) {
		return nil, ErrNotFound
	}

	if s.Cache != nil {
		s.Cache.Set(ctx, cacheKey(id), txn)
	}
	return txn, nil
}

func (s *TransactionService) invalidate(ctx context.Context, id string) {
	if s.Cache != nil {
		s.Cache.Delete(ctx, cacheKey(id))
	}
}

func cacheKey(id string) string {
	return "transactions:" + id
}
