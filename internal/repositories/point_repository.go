package repositories

import (
	"fmt"

	"github.com/matchahub/matcha_hub/internal/models"
	"github.com/matchahub/matcha_hub/pkg/errors"
	"gorm.io/gorm"
)

type PointRepository struct {
	db *gorm.DB
}

func NewPointRepository(db *gorm.DB) *PointRepository {
	return &PointRepository{db: db}
}

// creditPointsTx appends a ledger entry and applies the same delta to the
// denormalized balance inside the caller's transaction. The balance update
// is a relative SQL increment, never a read-modify-write. UpdateColumn keeps
// the User.BeforeSave hook out of this column-level write.
func creditPointsTx(tx *gorm.DB, userID uint, amount int64, txType, description, reference string) error {
	res := tx.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("points", gorm.Expr("points + ?", amount))
	if res.Error != nil {
		return errors.Wrap(res.Error, errors.ErrCodeInternalError, "failed to update point balance")
	}
	if res.RowsAffected == 0 {
		return errors.New(errors.ErrCodeNotFound, "user not found")
	}

	entry := &models.PointTransaction{
		UserID:          userID,
		Amount:          amount,
		TransactionType: txType,
		Description:     description,
		Reference:       reference,
	}
	if err := tx.Create(entry).Error; err != nil {
		return errors.Wrap(err, errors.ErrCodeInternalError, "failed to create ledger entry")
	}
	return nil
}

// debitPointsTx spends points inside the caller's transaction. The balance
// guard (points >= amount) is part of the UPDATE itself, so concurrent spends
// cannot overdraw.
func debitPointsTx(tx *gorm.DB, userID uint, amount int64, txType, description, reference string) error {
	res := tx.Model(&models.User{}).
		Where("id = ? AND points >= ?", userID, amount).
		UpdateColumn("points", gorm.Expr("points - ?", amount))
	if res.Error != nil {
		return errors.Wrap(res.Error, errors.ErrCodeInternalError, "failed to update point balance")
	}
	if res.RowsAffected == 0 {
		var user models.User
		if err := tx.Select("points").First(&user, userID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.New(errors.ErrCodeNotFound, "user not found")
			}
			return errors.Wrap(err, errors.ErrCodeInternalError, "failed to get user")
		}
		return errors.New(errors.ErrCodeInsufficientFunds,
			fmt.Sprintf("insufficient points: have %d, need %d", user.Points, amount))
	}

	entry := &models.PointTransaction{
		UserID:          userID,
		Amount:          -amount,
		TransactionType: txType,
		Description:     description,
		Reference:       reference,
	}
	if err := tx.Create(entry).Error; err != nil {
		return errors.Wrap(err, errors.ErrCodeInternalError, "failed to create ledger entry")
	}
	return nil
}

// AddPoints credits points with a ledger entry in one transaction.
func (r *PointRepository) AddPoints(userID uint, amount int64, txType, description, reference string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return creditPointsTx(tx, userID, amount, txType, description, reference)
	})
}

// DeductPoints spends points with a ledger entry in one transaction.
func (r *PointRepository) DeductPoints(userID uint, amount int64, txType, description, reference string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return debitPointsTx(tx, userID, amount, txType, description, reference)
	})
}

// GetBalance retrieves the user's denormalized point balance.
func (r *PointRepository) GetBalance(userID uint) (int64, error) {
	var user models.User
	result := r.db.Select("points").First(&user, userID)

	if result.Error == gorm.ErrRecordNotFound {
		return 0, errors.New(errors.ErrCodeNotFound, "user not found")
	}
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get balance")
	}

	return user.Points, nil
}

// GetTransactionHistory retrieves the user's ledger entries, newest first.
func (r *PointRepository) GetTransactionHistory(userID uint, limit int) ([]models.PointTransaction, error) {
	var transactions []models.PointTransaction
	result := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&transactions)

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get transaction history")
	}

	return transactions, nil
}

// GetLedgerSum sums all ledger deltas for a user. Audit helper: the result
// must always equal the denormalized balance.
func (r *PointRepository) GetLedgerSum(userID uint) (int64, error) {
	var sum int64
	err := r.db.Model(&models.PointTransaction{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrCodeInternalError, "failed to sum ledger")
	}
	return sum, nil
}

// GetTopUsers returns the highest point balances for the leaderboard.
func (r *PointRepository) GetTopUsers(limit int) ([]models.User, error) {
	var users []models.User
	err := r.db.Select("id", "username", "display_name", "avatar_url", "points", "selected_border_id").
		Order("points DESC").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to get top users")
	}
	return users, nil
}
