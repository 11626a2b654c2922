package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/sreekarnv/mint/internal/events"
	"github.com/sreekarnv/mint/internal/fabric"
	"github.com/sreekarnv/mint/internal/metrics"
	"github.com/sreekarnv/mint/internal/wallet/models"
)

var (
	ErrWalletNotFound    = errors.New("wallet not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// WalletRepo defines the atomic balance operations the service relies on.
// Credit and Debit return (nil, nil) when the mutation did not apply.
type WalletRepo interface {
	GetByUserID(ctx context.Context, userID string) (*models.Wallet, error)
	Credit(ctx context.Context, userID string, amount int64) (*models.Wallet, error)
	Debit(ctx context.Context, userID string, amount int64) (*models.Wallet, error)
	EnsureExists(ctx context.Context, userID string) (*models.Wallet, error)
}

// Publisher defines the interface for publishing events to the fabric.
type Publisher interface {
	Publish(ctx context.Context, exchange, key string, message interface{}) error
}

// WalletService owns per-user balances and applies the wallet half of the
// settlement saga: the balance mutation with its compensating rollback,
// always terminating in one published outcome event.
type WalletService struct {
	Publisher  Publisher
	WalletRepo WalletRepo
}

func NewWalletService(p Publisher, w WalletRepo) *WalletService {
	return &WalletService{
		Publisher:  p,
		WalletRepo: w,
	}
}

func (s *WalletService) GetWalletByUser(ctx context.Context, userID string) (*models.Wallet, error) {
	wallet, err := s.WalletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}
	return wallet, nil
}

// CreditWallet adds amount to the user's balance. A missing wallet is an
// error, never a silent success.
func (s *WalletService) CreditWallet(ctx context.Context, userID string, amount int64) (*models.Wallet, error) {
	wallet, err := s.WalletRepo.Credit(ctx, userID, amount)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}

	metrics.WalletMutations.WithLabelValues("credit").Inc()
	return wallet, nil
}

// DebitWallet subtracts amount when the balance covers it. Both a missing
// wallet and an insufficient balance surface as ErrInsufficientFunds; the
// repository cannot tell them apart and neither outcome is retryable.
func (s *WalletService) DebitWallet(ctx context.Context, userID string, amount int64) (*models.Wallet, error) {
	wallet, err := s.WalletRepo.Debit(ctx, userID, amount)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, ErrInsufficientFunds
	}

	metrics.WalletMutations.WithLabelValues("debit").Inc()
	return wallet, nil
}

// EnsureWalletExists provisions a zero-balance wallet on first reference.
func (s *WalletService) EnsureWalletExists(ctx context.Context, userID string) (*models.Wallet, error) {
	return s.WalletRepo.EnsureExists(ctx, userID)
}

// FinalizeTransaction applies the balance mutation for a settling
// transaction and reports the terminal outcome. Every path ends with one
// wallet.transactionFinalized publish; no business error crosses this
// boundary, so the broker only redelivers when the outcome could not be
// published at all.
func (s *WalletService) FinalizeTransaction(ctx context.Context, event events.TransactionCreatedEvent) error {
	logrus.Infof("Processing wallet update for transaction %s, type: %s", event.TransactionID, event.Type)

	if err := s.applyMutation(ctx, event); err != nil {
		logrus.Errorf("Transaction %s failed in wallet service: %s", event.TransactionID, err.Error())
		return s.Publisher.Publish(ctx, fabric.ExchangeTransactionEvents, fabric.KeyWalletTxnFinalized, events.WalletFinalizedEvent{
			TransactionID: event.TransactionID,
			Status:        events.StatusFailed,
			Reason:        err.Error(),
		})
	}

	logrus.Infof("Transaction %s completed successfully in wallet service", event.TransactionID)
	return s.Publisher.Publish(ctx, fabric.ExchangeTransactionEvents, fabric.KeyWalletTxnFinalized, events.WalletFinalizedEvent{
		TransactionID: event.TransactionID,
		Status:        events.StatusCompleted,
	})
}

func (s *WalletService) applyMutation(ctx context.Context, event events.TransactionCreatedEvent) error {
	switch event.Type {
	case events.TypeTopUp:
		if event.UserID == "" {
			return errors.New("TopUp missing required fields")
		}
		if _, err := s.CreditWallet(ctx, event.UserID, event.Amount); err != nil {
			return fmt.Errorf("failed to credit wallet for user %s", event.UserID)
		}
		logrus.Infof("TopUp successful: credited %d to user %s", event.Amount, event.UserID)
		return nil

	case events.TypeTransfer:
		if event.FromUserID == "" || event.ToUserID == "" {
			return errors.New("Transfer missing required fields")
		}

		if _, err := s.DebitWallet(ctx, event.FromUserID, event.Amount); err != nil {
			return fmt.Errorf("Insufficient balance for user %s", event.FromUserID)
		}
		logrus.Infof("Debited %d from user %s", event.Amount, event.FromUserID)

		if _, err := s.CreditWallet(ctx, event.ToUserID, event.Amount); err != nil {
			// Compensate: the sender was already debited, so the debit is
			// rolled back before the failure is reported.
			logrus.Errorf("Failed to credit user %s, rolling back debit", event.ToUserID)
			if _, rbErr := s.CreditWallet(ctx, event.FromUserID, event.Amount); rbErr != nil {
				logrus.Errorf("Rollback credit for user %s failed: %s", event.FromUserID, rbErr.Error())
			}
			return fmt.Errorf("failed to credit wallet for user %s", event.ToUserID)
		}

		logrus.Infof("Transfer successful: %d from %s to %s", event.Amount, event.FromUserID, event.ToUserID)
		return nil

	default:
		return fmt.Errorf("unknown transaction type %q", event.Type)
	}
}
