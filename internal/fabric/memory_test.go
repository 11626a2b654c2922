package fabric_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sreekarnv/mint/internal/events"
	"github.com/sreekarnv/mint/internal/fabric"
)

func TestMemory_RoutesByExchangeAndKey(t *testing.T) {
	broker := fabric.NewMemory()
	ctx := context.Background()

	var got events.TransactionCreatedEvent
	err := broker.Consume(ctx, fabric.QueueTransactionCreated, func(_ context.Context, _ string, body []byte) error {
		return json.Unmarshal(body, &got)
	})
	require.NoError(t, err)

	err = broker.Publish(ctx, fabric.ExchangeTransactionEvents, fabric.KeyTransactionCreated, events.TransactionCreatedEvent{
		TransactionID: "txn-123",
		Type:          events.TypeTopUp,
		Amount:        500,
		UserID:        "user-a",
	})
	require.NoError(t, err)

	assert.Equal(t, "txn-123", got.TransactionID)
	assert.Equal(t, events.TypeTopUp, got.Type)
	assert.Equal(t, int64(500), got.Amount)
}

func TestMemory_UnboundKeyIsDropped(t *testing.T) {
	broker := fabric.NewMemory()
	ctx := context.Background()

	err := broker.Publish(ctx, fabric.ExchangeTransactionEvents, "no.such.key", events.TransactionCreatedEvent{
		TransactionID: "txn-lost",
	})
	require.NoError(t, err)

	for _, q := range fabric.Queues {
		assert.Empty(t, broker.Deliveries(q), "queue %s should not receive an unbound key", q)
	}
}

func TestMemory_FanoutToAllBoundQueues(t *testing.T) {
	broker := fabric.NewMemory()
	ctx := context.Background()

	// transaction.completed is bound to both the wallet update queue and
	// the notifications queue.
	err := broker.Publish(ctx, fabric.ExchangeTransactionEvents, fabric.KeyTransactionCompleted, events.TransactionCreatedEvent{
		TransactionID: "txn-123",
		Type:          events.TypeTransfer,
		Amount:        300,
		FromUserID:    "user-a",
		ToUserID:      "user-b",
	})
	require.NoError(t, err)

	assert.Len(t, broker.Deliveries(fabric.QueueWalletUpdate), 1)
	assert.Len(t, broker.Deliveries(fabric.QueueEmailTxCompleted), 1)
}

func TestMemory_BuffersUntilConsumerAttaches(t *testing.T) {
	broker := fabric.NewMemory()
	ctx := context.Background()

	err := broker.Publish(ctx, fabric.ExchangeAuthEvents, fabric.KeyUserRegistered, events.UserRegisteredEvent{
		ID:    "user-new",
		Email: "new@mint.dev",
	})
	require.NoError(t, err)

	var got events.UserRegisteredEvent
	err = broker.Consume(ctx, fabric.QueueWalletUserCreated, func(_ context.Context, _ string, body []byte) error {
		return json.Unmarshal(body, &got)
	})
	require.NoError(t, err)

	assert.Equal(t, "user-new", got.ID)
}

func TestMemory_PoisonMessageDeadLetters(t *testing.T) {
	broker := fabric.NewMemory()
	ctx := context.Background()

	var attempts atomic.Int32
	err := broker.Consume(ctx, fabric.QueueTransactionCreated, func(_ context.Context, _ string, _ []byte) error {
		attempts.Add(1)
		return errors.New("cannot process")
	})
	require.NoError(t, err)

	err = broker.Publish(ctx, fabric.ExchangeTransactionEvents, fabric.KeyTransactionCreated, events.TransactionCreatedEvent{
		TransactionID: "txn-poison",
	})
	require.NoError(t, err)

	assert.Equal(t, int32(3), attempts.Load())

	dead := broker.Deliveries(fabric.QueueDeadLetter)
	require.Len(t, dead, 1)

	var dl fabric.DeadLetter
	require.NoError(t, json.Unmarshal(dead[0], &dl))
	assert.Equal(t, fabric.QueueTransactionCreated, dl.OriginalQueue)
	assert.Equal(t, 3, dl.Attempts)
	assert.Contains(t, dl.Body, "txn-poison")
}

func TestMemory_TransientErrorRetriesThenSucceeds(t *testing.T) {
	broker := fabric.NewMemory()
	ctx := context.Background()

	var attempts atomic.Int32
	err := broker.Consume(ctx, fabric.QueueWalletUpdate, func(_ context.Context, _ string, _ []byte) error {
		if attempts.Add(1) < 3 {
			return errors.New("transient")
		}
		return nil
	})
	require.NoError(t, err)

	err = broker.Publish(ctx, fabric.ExchangeTransactionEvents, fabric.KeyTransactionCompleted, events.TransactionCreatedEvent{
		TransactionID: "txn-flaky",
	})
	require.NoError(t, err)

	assert.Equal(t, int32(3), attempts.Load())
	assert.Empty(t, broker.Deliveries(fabric.QueueDeadLetter))
}
