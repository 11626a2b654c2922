package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sreekarnv/mint/internal/events"
	"github.com/sreekarnv/mint/internal/transactions/models"
)

const reconcileReason = "settlement timed out"

// Reconciler periodically fails transactions stuck in a non-terminal state,
// e.g. because the wallet service never saw the creation event. It is an
// optional hardening: with StuckAfter zero it does nothing, which matches
// the platform's historical behavior of leaving such records Pending
// forever.
type Reconciler struct {
	Service    *TransactionService
	StuckAfter time.Duration
	Interval   time.Duration
}

func NewReconciler(s *TransactionService, stuckAfter, interval time.Duration) *Reconciler {
	return &Reconciler{Service: s, StuckAfter: stuckAfter, Interval: interval}
}

// Run blocks until ctx is done. Call it in its own goroutine.
func (r *Reconciler) Run(ctx context.Context) {
	if r.StuckAfter <= 0 {
		return
	}

	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	logrus.Infof("Reconciler sweeping every %v for transactions stuck longer than %v", r.Interval, r.StuckAfter)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep(ctx)
		}
	}
}

// Sweep fails every stuck transaction and publishes the failure so the
// wallet side observes it too.
func (r *Reconciler) Sweep(ctx context.Context) {
	cutoff := time.Now().Add(-r.StuckAfter)

	stuck, err := r.Service.Repo.Where(ctx, "status IN ? AND updated_at < ?",
		[]models.TransactionStatus{models.StatusPending, models.StatusProcessing}, cutoff)
	if err != nil {
		logrus.Errorf("Reconciler query failed: %s", err.Error())
		return
	}

	for i := range *stuck {
		txn := (*stuck)[i]
		logrus.Warnf("Reconciling stuck transaction %s (status %s, updated %s)", txn.ID, txn.Status, txn.UpdatedAt)

		event := events.TransactionCreatedEvent{
			TransactionID: txn.ID,
			Type:          txn.Type,
			Amount:        txn.Amount,
		}
		if err := r.Service.failTransaction(ctx, event, reconcileReason); err != nil {
			logrus.Errorf("Reconciler failed to finalize %s: %s", txn.ID, err.Error())
		}
	}
}
