package handler_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sreekarnv/mint/internal/events"
	"github.com/sreekarnv/mint/internal/fabric"
	"github.com/sreekarnv/mint/internal/notifications/handler"
	"github.com/sreekarnv/mint/internal/notifications/handler/mocks"
)

func TestHandleEvents_Signup(t *testing.T) {
	mockService := mocks.NewMockEmailServiceIn(t)
	h := handler.Notifications(mockService)

	event := events.UserRegisteredEvent{
		ID:        "user-123",
		Email:     "a@mint.dev",
		FirstName: "Ada",
	}
	body, err := json.Marshal(event)
	assert.NoError(t, err)

	ctx := context.Background()

	mockService.EXPECT().
		SendSignupEmail(ctx, event).
		Return(nil).
		Once()

	err = h.HandleEvents(ctx, fabric.QueueEmailSignup, body)

	assert.NoError(t, err)
	mockService.AssertExpectations(t)
}

func TestHandleEvents_TransactionCompleted(t *testing.T) {
	mockService := mocks.NewMockEmailServiceIn(t)
	h := handler.Notifications(mockService)

	event := events.TransactionCreatedEvent{
		TransactionID: "txn-123",
		Type:          events.TypeTransfer,
		Amount:        300,
		FromUserID:    "user-a",
		ToUserID:      "user-b",
	}
	body, err := json.Marshal(event)
	assert.NoError(t, err)

	ctx := context.Background()

	mockService.EXPECT().
		SendTransactionEmail(ctx, event, true).
		Return(nil).
		Once()

	err = h.HandleEvents(ctx, fabric.QueueEmailTxCompleted, body)

	assert.NoError(t, err)
	mockService.AssertExpectations(t)
}

func TestHandleEvents_TransactionFailed(t *testing.T) {
	mockService := mocks.NewMockEmailServiceIn(t)
	h := handler.Notifications(mockService)

	event := events.TransactionCreatedEvent{
		TransactionID: "txn-456",
		Type:          events.TypeTopUp,
		Amount:        100,
		UserID:        "user-a",
		Reason:        "Transaction not found",
	}
	body, err := json.Marshal(event)
	assert.NoError(t, err)

	ctx := context.Background()

	mockService.EXPECT().
		SendTransactionEmail(ctx, event, false).
		Return(nil).
		Once()

	err = h.HandleEvents(ctx, fabric.QueueEmailTxFailed, body)

	assert.NoError(t, err)
	mockService.AssertExpectations(t)
}

func TestHandleEvents_InvalidSignupEvent(t *testing.T) {
	mockService := mocks.NewMockEmailServiceIn(t)
	h := handler.Notifications(mockService)

	body, err := json.Marshal(events.UserRegisteredEvent{Email: "no-id@mint.dev"})
	assert.NoError(t, err)

	err = h.HandleEvents(context.Background(), fabric.QueueEmailSignup, body)

	assert.Error(t, err)
	mockService.AssertNotCalled(t, "SendSignupEmail", mock.Anything, mock.Anything)
}

func TestHandleEvents_UnknownQueueIgnored(t *testing.T) {
	mockService := mocks.NewMockEmailServiceIn(t)
	h := handler.Notifications(mockService)

	err := h.HandleEvents(context.Background(), "some.other.q", []byte(`{}`))

	assert.NoError(t, err)
}
