package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/sreekarnv/mint/internal/events"
	"github.com/sreekarnv/mint/internal/fabric"
	"github.com/sreekarnv/mint/internal/transactions/models"
	"github.com/sreekarnv/mint/internal/transactions/service"
	"github.com/sreekarnv/mint/internal/transactions/service/mocks"
)

func TestSweep_FailsStuckTransactions(t *testing.T) {
	mockRepo := mocks.NewMockTransactionRepo(t)
	mockPublisher := mocks.NewMockPublisher(t)
	txnService := service.NewTransactionService(mockRepo, mockPublisher, nil)
	reconciler := service.NewReconciler(txnService, 10*time.Minute, time.Minute)

	ctx := context.Background()
	stuck := &[]models.Transaction{
		{ID: "txn-stuck", Type: events.TypeTransfer, Status: models.StatusProcessing, Amount: 300},
	}

	mockRepo.EXPECT().
		Where(ctx, "status IN ? AND updated_at < ?",
			[]models.TransactionStatus{models.StatusPending, models.StatusProcessing},
			mock.AnythingOfType("time.Time")).
		Return(stuck, nil).
		Once()

	mockRepo.EXPECT().
		UpdateMap(ctx, map[string]interface{}{
			"status": models.StatusFailed,
			"reason": "settlement timed out",
		}, "txn-stuck").
		Return(nil).
		Once()

	mockPublisher.EXPECT().
		Publish(ctx, fabric.ExchangeTransactionEvents, fabric.KeyTransactionFailed, mock.MatchedBy(func(evt events.TransactionCreatedEvent) bool {
			return evt.TransactionID == "txn-stuck" &&
				evt.Reason == "settlement timed out"
		})).
		Return(nil).
		Once()

	reconciler.Sweep(ctx)

	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestSweep_NothingStuck(t *testing.T) {
	mockRepo := mocks.NewMockTransactionRepo(t)
	mockPublisher := mocks.NewMockPublisher(t)
	txnService := service.NewTransactionService(mockRepo, mockPublisher, nil)
	reconciler := service.NewReconciler(txnService, 10*time.Minute, time.Minute)

	ctx := context.Background()

	mockRepo.EXPECT().
		Where(ctx, "status IN ? AND updated_at < ?",
			[]models.TransactionStatus{models.StatusPending, models.StatusProcessing},
			mock.AnythingOfType("time.Time")).
		Return(&[]models.Transaction{}, nil).
		Once()

	reconciler.Sweep(ctx)

	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReconciler_DisabledRunReturns(t *testing.T) {
	mockRepo := mocks.NewMockTransactionRepo(t)
	mockPublisher := mocks.NewMockPublisher(t)
	txnService := service.NewTransactionService(mockRepo, mockPublisher, nil)
	reconciler := service.NewReconciler(txnService, 0, time.Minute)

	// Returns immediately without ticking when disabled.
	reconciler.Run(context.Background())

	mockRepo.AssertNotCalled(t, "Where", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
