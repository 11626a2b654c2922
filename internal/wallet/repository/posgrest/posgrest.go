package posgrest

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sreekarnv/mint/internal/wallet/models"
)

// repository is the wallet store. Credit and Debit are single conditional
// statements so concurrent mutations on the same wallet cannot interleave
// a read with a write.
type repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *repository {
	return &repository{
		db,
	}
}

// GetByUserID returns (nil, nil) when no wallet exists for the user.
func (r *repository) GetByUserID(ctx context.Context, userID string) (*models.Wallet, error) {
	var wallet models.Wallet
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&wallet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &wallet, nil
}

// Credit atomically adds amount. Returns (nil, nil) when the wallet does
// not exist; callers must not treat that as success.
func (r *repository) Credit(ctx context.Context, userID string, amount int64) (*models.Wallet, error) {
	res := r.db.WithContext(ctx).Model(&models.Wallet{}).
		Where("user_id = ?", userID).
		Update("balance", gorm.Expr("balance + ?", amount))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByUserID(ctx, userID)
}

// Debit atomically subtracts amount, but only when the current balance
// covers it: the sufficiency check lives in the WHERE clause of the same
// statement. Returns (nil, nil) on insufficient funds or a missing wallet.
func (r *repository) Debit(ctx context.Context, userID string, amount int64) (*models.Wallet, error) {
	res := r.db.WithContext(ctx).Model(&models.Wallet{}).
		Where("user_id = ? AND balance >= ?", userID, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByUserID(ctx, userID)
}

// EnsureExists creates a zero-balance wallet when absent and never touches
// an existing balance.
func (r *repository) EnsureExists(ctx context.Context, userID string) (*models.Wallet, error) {
	wallet := models.Wallet{UserID: userID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(&wallet).Error
	if err != nil {
		return nil, err
	}
	return r.GetByUserID(ctx, userID)
}
