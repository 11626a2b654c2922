package fabric_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sreekarnv/mint/internal/events"
	"github.com/sreekarnv/mint/internal/fabric"
	txhandlers "github.com/sreekarnv/mint/internal/transactions/handlers"
	txmodels "github.com/sreekarnv/mint/internal/transactions/models"
	"github.com/sreekarnv/mint/internal/transactions/models/dto"
	txservice "github.com/sreekarnv/mint/internal/transactions/service"
	whandler "github.com/sreekarnv/mint/internal/wallet/handler"
	wmodels "github.com/sreekarnv/mint/internal/wallet/models"
	wservice "github.com/sreekarnv/mint/internal/wallet/service"
)

// memTxnRepo is a map-backed TransactionRepo so the saga can run without a
// database.
type memTxnRepo struct {
	mu   sync.Mutex
	seq  int
	txns map[string]*txmodels.Transaction
}

func newMemTxnRepo() *memTxnRepo {
	return &memTxnRepo{txns: map[string]*txmodels.Transaction{}}
}

func (r *memTxnRepo) Create(_ context.Context, txn *txmodels.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	txn.ID = fmt.Sprintf("txn-%d", r.seq)
	cp := *txn
	r.txns[txn.ID] = &cp
	return nil
}

func (r *memTxnRepo) GetByID(_ context.Context, id string) (*txmodels.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	txn, ok := r.txns[id]
	if !ok {
		return nil, fmt.Errorf("record not found")
	}
	cp := *txn
	return &cp, nil
}

func (r *memTxnRepo) Where(_ context.Context, _ string, _ ...interface{}) (*[]txmodels.Transaction, error) {
	return &[]txmodels.Transaction{}, nil
}

func (r *memTxnRepo) Page(_ context.Context, _ string, _, _ int, _ string, _ ...interface{}) (*[]txmodels.Transaction, int64, error) {
	return &[]txmodels.Transaction{}, 0, nil
}

func (r *memTxnRepo) UpdateMap(_ context.Context, values map[string]interface{}, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	txn, ok := r.txns[id]
	if !ok {
		return fmt.Errorf("record not found")
	}
	if status, ok := values["status"]; ok {
		txn.Status = status.(txmodels.TransactionStatus)
	}
	if reason, ok := values["reason"]; ok {
		txn.Reason = reason.(string)
	}
	return nil
}

// memWalletRepo mirrors the conditional-debit contract: a mutation that does
// not apply returns (nil, nil).
type memWalletRepo struct {
	mu       sync.Mutex
	balances map[string]int64
}

func newMemWalletRepo(balances map[string]int64) *memWalletRepo {
	return &memWalletRepo{balances: balances}
}

func (r *memWalletRepo) wallet(userID string) *wmodels.Wallet {
	return &wmodels.Wallet{ID: "wallet-" + userID, UserID: userID, Balance: r.balances[userID]}
}

func (r *memWalletRepo) GetByUserID(_ context.Context, userID string) (*wmodels.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.balances[userID]; !ok {
		return nil, nil
	}
	return r.wallet(userID), nil
}

func (r *memWalletRepo) Credit(_ context.Context, userID string, amount int64) (*wmodels.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.balances[userID]; !ok {
		return nil, nil
	}
	r.balances[userID] += amount
	return r.wallet(userID), nil
}

func (r *memWalletRepo) Debit(_ context.Context, userID string, amount int64) (*wmodels.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	balance, ok := r.balances[userID]
	if !ok || balance < amount {
		return nil, nil
	}
	r.balances[userID] -= amount
	return r.wallet(userID), nil
}

func (r *memWalletRepo) EnsureExists(_ context.Context, userID string) (*wmodels.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.balances[userID]; !ok {
		r.balances[userID] = 0
	}
	return r.wallet(userID), nil
}

// settlement wires both services onto one in-memory fabric. Memory delivery
// is synchronous, so a settled saga is observable as soon as the entry call
// returns.
type settlement struct {
	broker  *fabric.Memory
	txns    *memTxnRepo
	wallets *memWalletRepo
	service *txservice.TransactionService
}

func newSettlement(t *testing.T, balances map[string]int64) *settlement {
	t.Helper()

	broker := fabric.NewMemory()
	txnRepo := newMemTxnRepo()
	walletRepo := newMemWalletRepo(balances)

	txnService := txservice.NewTransactionService(txnRepo, broker, nil)
	walletService := wservice.NewWalletService(broker, walletRepo)

	txnHandler := txhandlers.NewTransactionHandler(txnService)
	walletHandler := whandler.Wallet(walletService)

	ctx := context.Background()
	for _, queue := range []string{fabric.QueueTransactionCreated, fabric.QueueTransactionFinalized} {
		require.NoError(t, broker.Consume(ctx, queue, txnHandler.HandleEvents))
	}
	for _, queue := range []string{fabric.QueueWalletUpdate, fabric.QueueWalletRevert, fabric.QueueWalletUserCreated} {
		require.NoError(t, broker.Consume(ctx, queue, walletHandler.HandleEvents))
	}

	return &settlement{broker: broker, txns: txnRepo, wallets: walletRepo, service: txnService}
}

func TestSettlement_TransferCompletes(t *testing.T) {
	s := newSettlement(t, map[string]int64{"user-a": 1000, "user-b": 500})
	ctx := context.Background()

	txn, err := s.service.CreateTransfer(ctx, "user-a", &dto.Transfer{Amount: 300, ToUserID: "user-b"})
	require.NoError(t, err)

	settled, err := s.txns.GetByID(ctx, txn.ID)
	require.NoError(t, err)
	assert.Equal(t, txmodels.StatusCompleted, settled.Status)
	assert.Empty(t, settled.Reason)

	assert.Equal(t, int64(700), s.wallets.balances["user-a"])
	assert.Equal(t, int64(800), s.wallets.balances["user-b"])

	// Exactly one finalized event closed the saga.
	assert.Len(t, s.broker.Deliveries(fabric.QueueTransactionFinalized), 1)

	// Redelivering the creation event hits the terminal-status guard:
	// balances hold and no second finalized event appears.
	err = s.broker.Publish(ctx, fabric.ExchangeTransactionEvents, fabric.KeyTransactionCreated, events.TransactionCreatedEvent{
		TransactionID: txn.ID,
		Type:          events.TypeTransfer,
		Amount:        300,
		FromUserID:    "user-a",
		ToUserID:      "user-b",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(700), s.wallets.balances["user-a"])
	assert.Equal(t, int64(800), s.wallets.balances["user-b"])
	assert.Len(t, s.broker.Deliveries(fabric.QueueTransactionFinalized), 1)
}

func TestSettlement_TransferInsufficientFunds(t *testing.T) {
	s := newSettlement(t, map[string]int64{"user-a": 100, "user-b": 500})
	ctx := context.Background()

	txn, err := s.service.CreateTransfer(ctx, "user-a", &dto.Transfer{Amount: 500, ToUserID: "user-b"})
	require.NoError(t, err)

	settled, err := s.txns.GetByID(ctx, txn.ID)
	require.NoError(t, err)
	assert.Equal(t, txmodels.StatusFailed, settled.Status)
	assert.Equal(t, "Insufficient balance for user user-a", settled.Reason)

	// Neither balance moved.
	assert.Equal(t, int64(100), s.wallets.balances["user-a"])
	assert.Equal(t, int64(500), s.wallets.balances["user-b"])
}

func TestSettlement_TransferToMissingWalletRollsBack(t *testing.T) {
	s := newSettlement(t, map[string]int64{"user-a": 1000})
	ctx := context.Background()

	txn, err := s.service.CreateTransfer(ctx, "user-a", &dto.Transfer{Amount: 300, ToUserID: "user-gone"})
	require.NoError(t, err)

	settled, err := s.txns.GetByID(ctx, txn.ID)
	require.NoError(t, err)
	assert.Equal(t, txmodels.StatusFailed, settled.Status)

	// The debit was compensated.
	assert.Equal(t, int64(1000), s.wallets.balances["user-a"])
}

func TestSettlement_TopUpCompletes(t *testing.T) {
	s := newSettlement(t, map[string]int64{"user-a": 1000})
	ctx := context.Background()

	txn, err := s.service.CreateTopUp(ctx, "user-a", &dto.TopUp{Amount: 500})
	require.NoError(t, err)

	settled, err := s.txns.GetByID(ctx, txn.ID)
	require.NoError(t, err)
	assert.Equal(t, txmodels.StatusCompleted, settled.Status)
	assert.Equal(t, int64(1500), s.wallets.balances["user-a"])
}

func TestSettlement_SignupProvisionsWallet(t *testing.T) {
	s := newSettlement(t, map[string]int64{})
	ctx := context.Background()

	err := s.broker.Publish(ctx, fabric.ExchangeAuthEvents, fabric.KeyUserRegistered, events.UserRegisteredEvent{
		ID:    "user-new",
		Email: "new@mint.dev",
	})
	require.NoError(t, err)

	balance, ok := s.wallets.balances["user-new"]
	assert.True(t, ok)
	assert.Equal(t, int64(0), balance)
}
