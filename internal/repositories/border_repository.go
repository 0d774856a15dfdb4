package repositories

import (
	"github.com/matchahub/matcha_hub/internal/models"
	"github.com/matchahub/matcha_hub/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BorderRepository struct {
	db *gorm.DB
}

func NewBorderRepository(db *gorm.DB) *BorderRepository {
	return &BorderRepository{db: db}
}

// unlockBorderTx inserts an unlock row inside the caller's transaction.
// A duplicate (user, border) pair is swallowed by ON CONFLICT DO NOTHING;
// the returned bool reports whether a new row was actually created.
func unlockBorderTx(tx *gorm.DB, userID uint, borderID, unlockType string, pricePaid *int64) (bool, error) {
	unlock := &models.BorderUnlock{
		UserID:     userID,
		BorderID:   borderID,
		UnlockType: unlockType,
		PricePaid:  pricePaid,
	}
	res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(unlock)
	if res.Error != nil {
		return false, errors.Wrap(res.Error, errors.ErrCodeInternalError, "failed to create border unlock")
	}
	return res.RowsAffected > 0, nil
}

// GetBorder retrieves a catalog entry.
func (r *BorderRepository) GetBorder(borderID string) (*models.Border, error) {
	var border models.Border
	err := r.db.First(&border, "id = ?", borderID).Error
	if err == gorm.ErrRecordNotFound {
		return nil, errors.New(errors.ErrCodeNotFound, "border not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to get border")
	}
	return &border, nil
}

// ListBorders retrieves the full catalog.
func (r *BorderRepository) ListBorders() ([]models.Border, error) {
	var borders []models.Border
	if err := r.db.Order("price_points ASC, id ASC").Find(&borders).Error; err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to list borders")
	}
	return borders, nil
}

// ListUnlocks retrieves a user's unlocked borders.
func (r *BorderRepository) ListUnlocks(userID uint) ([]models.BorderUnlock, error) {
	var unlocks []models.BorderUnlock
	err := r.db.Where("user_id = ?", userID).
		Preload("Border").
		Order("created_at ASC").
		Find(&unlocks).Error
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to list border unlocks")
	}
	return unlocks, nil
}

// HasUnlock checks whether the user owns a border.
func (r *BorderRepository) HasUnlock(userID uint, borderID string) (bool, error) {
	var cnt int64
	err := r.db.Model(&models.BorderUnlock{}).
		Where("user_id = ? AND border_id = ?", userID, borderID).
		Count(&cnt).Error
	if err != nil {
		return false, errors.Wrap(err, errors.ErrCodeInternalError, "failed to check border unlock")
	}
	return cnt > 0, nil
}

// Unlock grants a border outside of a purchase (achievement or admin grant).
// Duplicate grants are benign no-ops.
func (r *BorderRepository) Unlock(userID uint, borderID, unlockType string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		_, err := unlockBorderTx(tx, userID, borderID, unlockType, nil)
		return err
	})
}

// Purchase spends points for a border in one atomic unit: the unlock insert
// and the ledger debit either both apply or neither does. Buying a border
// the user already owns charges nothing and succeeds.
func (r *BorderRepository) Purchase(userID uint, border *models.Border, reference string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		price := border.PricePoints
		created, err := unlockBorderTx(tx, userID, border.ID, models.UnlockTypePurchase, &price)
		if err != nil {
			return err
		}
		if !created {
			// Already owned; idempotent no-op, nothing to charge.
			return nil
		}
		return debitPointsTx(tx, userID, price, models.TxTypeBorderPurchase,
			"Border purchase: "+border.Name, reference)
	})
}
