package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sreekarnv/mint/internal/events"
	"github.com/sreekarnv/mint/internal/fabric"
	"github.com/sreekarnv/mint/internal/wallet/models"
	"github.com/sreekarnv/mint/internal/wallet/service"
	"github.com/sreekarnv/mint/internal/wallet/service/mocks"
)

func TestFinalizeTransaction_TransferSufficientBalance(t *testing.T) {
	mockPublisher := mocks.NewMockPublisher(t)
	mockRepo := mocks.NewMockWalletRepo(t)
	walletService := service.NewWalletService(mockPublisher, mockRepo)

	ctx := context.Background()
	event := events.TransactionCreatedEvent{
		TransactionID: "txn-123",
		Type:          events.TypeTransfer,
		Amount:        300,
		FromUserID:    "user-a",
		ToUserID:      "user-b",
	}

	mockRepo.EXPECT().
		Debit(ctx, "user-a", int64(300)).
		Return(&models.Wallet{ID: "wallet-a", UserID: "user-a", Balance: 700}, nil).
		Once()

	mockRepo.EXPECT().
		Credit(ctx, "user-b", int64(300)).
		Return(&models.Wallet{ID: "wallet-b", UserID: "user-b", Balance: 800}, nil).
		Once()

	mockPublisher.EXPECT().
		Publish(ctx, fabric.ExchangeTransactionEvents, fabric.KeyWalletTxnFinalized, mock.MatchedBy(func(evt events.WalletFinalizedEvent) bool {
			return evt.TransactionID == event.TransactionID &&
				evt.Status == events.StatusCompleted &&
				evt.Reason == ""
		})).
		Return(nil).
		Once()

	err := walletService.FinalizeTransaction(ctx, event)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestFinalizeTransaction_TransferInsufficientBalance(t *testing.T) {
	mockPublisher := mocks.NewMockPublisher(t)
	mockRepo := mocks.NewMockWalletRepo(t)
	walletService := service.NewWalletService(mockPublisher, mockRepo)

	ctx := context.Background()
	event := events.TransactionCreatedEvent{
		TransactionID: "txn-456",
		Type:          events.TypeTransfer,
		Amount:        500,
		FromUserID:    "user-poor",
		ToUserID:      "user-b",
	}

	mockRepo.EXPECT().
		Debit(ctx, "user-poor", int64(500)).
		Return(nil, nil).
		Once()

	mockPublisher.EXPECT().
		Publish(ctx, fabric.ExchangeTransactionEvents, fabric.KeyWalletTxnFinalized, mock.MatchedBy(func(evt events.WalletFinalizedEvent) bool {
			return evt.TransactionID == event.TransactionID &&
				evt.Status == events.StatusFailed &&
				evt.Reason == "Insufficient balance for user user-poor"
		})).
		Return(nil).
		Once()

	err := walletService.FinalizeTransaction(ctx, event)

	assert.NoError(t, err)
	mockRepo.AssertNotCalled(t, "Credit", mock.Anything, mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestFinalizeTransaction_TopUp(t *testing.T) {
	mockPublisher := mocks.NewMockPublisher(t)
	mockRepo := mocks.NewMockWalletRepo(t)
	walletService := service.NewWalletService(mockPublisher, mockRepo)

	ctx := context.Background()
	event := events.TransactionCreatedEvent{
		TransactionID: "txn-topup",
		Type:          events.TypeTopUp,
		Amount:        500,
		UserID:        "user-a",
	}

	mockRepo.EXPECT().
		Credit(ctx, "user-a", int64(500)).
		Return(&models.Wallet{ID: "wallet-a", UserID: "user-a", Balance: 1500}, nil).
		Once()

	mockPublisher.EXPECT().
		Publish(ctx, fabric.ExchangeTransactionEvents, fabric.KeyWalletTxnFinalized, mock.MatchedBy(func(evt events.WalletFinalizedEvent) bool {
			return evt.TransactionID == event.TransactionID &&
				evt.Status == events.StatusCompleted
		})).
		Return(nil).
		Once()

	err := walletService.FinalizeTransaction(ctx, event)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestFinalizeTransaction_TopUpWalletMissing(t *testing.T) {
	mockPublisher := mocks.NewMockPublisher(t)
	mockRepo := mocks.NewMockWalletRepo(t)
	walletService := service.NewWalletService(mockPublisher, mockRepo)

	ctx := context.Background()
	event := events.TransactionCreatedEvent{
		TransactionID: "txn-orphan",
		Type:          events.TypeTopUp,
		Amount:        100,
		UserID:        "user-nonexistent",
	}

	mockRepo.EXPECT().
		Credit(ctx, "user-nonexistent", int64(100)).
		Return(nil, nil).
		Once()

	mockPublisher.EXPECT().
		Publish(ctx, fabric.ExchangeTransactionEvents, fabric.KeyWalletTxnFinalized, mock.MatchedBy(func(evt events.WalletFinalizedEvent) bool {
			return evt.TransactionID == event.TransactionID &&
				evt.Status == events.StatusFailed &&
				evt.Reason == "failed to credit wallet for user user-nonexistent"
		})).
		Return(nil).
		Once()

	err := walletService.FinalizeTransaction(ctx, event)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestFinalizeTransaction_CreditFailureRollsBackDebit(t *testing.T) {
	mockPublisher := mocks.NewMockPublisher(t)
	mockRepo := mocks.NewMockWalletRepo(t)
	walletService := service.NewWalletService(mockPublisher, mockRepo)

	ctx := context.Background()
	event := events.TransactionCreatedEvent{
		TransactionID: "txn-rollback",
		Type:          events.TypeTransfer,
		Amount:        300,
		FromUserID:    "user-a",
		ToUserID:      "user-gone",
	}

	mockRepo.EXPECT().
		Debit(ctx, "user-a", int64(300)).
		Return(&models.Wallet{ID: "wallet-a", UserID: "user-a", Balance: 700}, nil).
		Once()

	// Recipient wallet does not exist, so the credit fails.
	mockRepo.EXPECT().
		Credit(ctx, "user-gone", int64(300)).
		Return(nil, nil).
		Once()

	// The sender's debit is compensated before the failure is reported.
	mockRepo.EXPECT().
		Credit(ctx, "user-a", int64(300)).
		Return(&models.Wallet{ID: "wallet-a", UserID: "user-a", Balance: 1000}, nil).
		Once()

	mockPublisher.EXPECT().
		Publish(ctx, fabric.ExchangeTransactionEvents, fabric.KeyWalletTxnFinalized, mock.MatchedBy(func(evt events.WalletFinalizedEvent) bool {
			return evt.TransactionID == event.TransactionID &&
				evt.Status == events.StatusFailed &&
				evt.Reason == "failed to credit wallet for user user-gone"
		})).
		Return(nil).
		Once()

	err := walletService.FinalizeTransaction(ctx, event)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestFinalizeTransaction_MissingTransferFields(t *testing.T) {
	mockPublisher := mocks.NewMockPublisher(t)
	mockRepo := mocks.NewMockWalletRepo(t)
	walletService := service.NewWalletService(mockPublisher, mockRepo)

	ctx := context.Background()
	event := events.TransactionCreatedEvent{
		TransactionID: "txn-bad",
		Type:          events.TypeTransfer,
		Amount:        300,
		FromUserID:    "user-a",
	}

	mockPublisher.EXPECT().
		Publish(ctx, fabric.ExchangeTransactionEvents, fabric.KeyWalletTxnFinalized, mock.MatchedBy(func(evt events.WalletFinalizedEvent) bool {
			return evt.TransactionID == event.TransactionID &&
				evt.Status == events.StatusFailed &&
				evt.Reason == "Transfer missing required fields"
		})).
		Return(nil).
		Once()

	err := walletService.FinalizeTransaction(ctx, event)

	assert.NoError(t, err)
	mockRepo.AssertNotCalled(t, "Debit", mock.Anything, mock.Anything, mock.Anything)
	mockPublisher.AssertExpectations(t)
}

func TestFinalizeTransaction_PublishErrorPropagates(t *testing.T) {
	mockPublisher := mocks.NewMockPublisher(t)
	mockRepo := mocks.NewMockWalletRepo(t)
	walletService := service.NewWalletService(mockPublisher, mockRepo)

	ctx := context.Background()
	event := events.TransactionCreatedEvent{
		TransactionID: "txn-broker-down",
		Type:          events.TypeTopUp,
		Amount:        100,
		UserID:        "user-a",
	}

	mockRepo.EXPECT().
		Credit(ctx, "user-a", int64(100)).
		Return(&models.Wallet{ID: "wallet-a", UserID: "user-a", Balance: 1100}, nil).
		Once()

	mockPublisher.EXPECT().
		Publish(ctx, fabric.ExchangeTransactionEvents, fabric.KeyWalletTxnFinalized, mock.Anything).
		Return(errors.New("connection refused")).
		Once()

	err := walletService.FinalizeTransaction(ctx, event)

	// The publish error bubbles up so the broker redelivers the message.
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestGetWalletByUser_NotFound(t *testing.T) {
	mockPublisher := mocks.NewMockPublisher(t)
	mockRepo := mocks.NewMockWalletRepo(t)
	walletService := service.NewWalletService(mockPublisher, mockRepo)

	ctx := context.Background()

	mockRepo.EXPECT().
		GetByUserID(ctx, "user-nonexistent").
		Return(nil, nil).
		Once()

	wallet, err := walletService.GetWalletByUser(ctx, "user-nonexistent")

	assert.Nil(t, wallet)
	assert.ErrorIs(t, err, service.ErrWalletNotFound)
	mockRepo.AssertExpectations(t)
}

func TestDebitWallet_RepoError(t *testing.T) {
	mockPublisher := mocks.NewMockPublisher(t)
	mockRepo := mocks.NewMockWalletRepo(t)
	walletService := service.NewWalletService(mockPublisher, mockRepo)

	ctx := context.Background()

	mockRepo.EXPECT().
		Debit(ctx, "user-a", int64(50)).
		Return(nil, errors.New("database unavailable")).
		Once()

	wallet, err := walletService.DebitWallet(ctx, "user-a", 50)

	assert.Nil(t, wallet)
	assert.EqualError(t, err, "database unavailable")
	mockRepo.AssertExpectations(t)
}

func TestEnsureWalletExists(t *testing.T) {
	mockPublisher := mocks.NewMockPublisher(t)
	mockRepo := mocks.NewMockWalletRepo(t)
	walletService := service.NewWalletService(mockPublisher, mockRepo)

	ctx := context.Background()

	mockRepo.EXPECT().
		EnsureExists(ctx, "user-new").
		Return(&models.Wallet{ID: "wallet-new", UserID: "user-new", Balance: 0}, nil).
		Once()

	wallet, err := walletService.EnsureWalletExists(ctx, "user-new")

	assert.NoError(t, err)
	assert.Equal(t, int64(0), wallet.Balance)
	assert.Equal(t, "user-new", wallet.UserID)
	mockRepo.AssertExpectations(t)
}
