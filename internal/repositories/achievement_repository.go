package repositories

import (
	"time"

	"github.com/matchahub/matcha_hub/internal/models"
	"github.com/matchahub/matcha_hub/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AchievementRepository struct {
	db *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{db: db}
}

// EnsureInitialized creates missing progress rows for every catalog entry.
// Existing rows are left untouched, so this is safe to call on every request.
func (r *AchievementRepository) EnsureInitialized(userID uint) error {
	catalog := models.AchievementCatalog()
	rows := make([]models.UserAchievement, 0, len(catalog))
	for _, def := range catalog {
		rows = append(rows, models.UserAchievement{
			UserID:          userID,
			AchievementType: def.Type,
		})
	}

	err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternalError, "failed to initialize achievements")
	}
	return nil
}

// AdvanceProgress applies a relative increment to one achievement and, when
// the post-increment progress reaches the target, marks it completed and
// applies the reward (point credit + optional border unlock) in the same
// database transaction. Returns whether this call completed the achievement.
//
// The increment is a single guarded UPDATE (progress = progress + n WHERE
// completed = false) and completion is a second guarded UPDATE, so two
// concurrent events for the same achievement both count but at most one of
// them wins the completion and applies the reward.
func (r *AchievementRepository) AdvanceProgress(userID uint, def models.AchievementDefinition, amount int64) (completedNow bool, err error) {
	err = r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.UserAchievement{}).
			Where("user_id = ? AND achievement_type = ? AND completed = ?", userID, def.Type, false).
			Update("progress", gorm.Expr("progress + ?", amount))
		if res.Error != nil {
			return errors.Wrap(res.Error, errors.ErrCodeInternalError, "failed to increment progress")
		}
		if res.RowsAffected == 0 {
			// Row is missing or the achievement is already completed. A
			// completed achievement is a benign no-op; a missing row means
			// the caller skipped initialization.
			var cnt int64
			if err := tx.Model(&models.UserAchievement{}).
				Where("user_id = ? AND achievement_type = ?", userID, def.Type).
				Count(&cnt).Error; err != nil {
				return errors.Wrap(err, errors.ErrCodeInternalError, "failed to check achievement row")
			}
			if cnt == 0 {
				return errors.New(errors.ErrCodeNotFound, "achievement not initialized for user")
			}
			return nil
		}

		// Re-check the post-increment value, not a value captured before
		// the increment.
		var row models.UserAchievement
		if err := tx.Where("user_id = ? AND achievement_type = ?", userID, def.Type).
			First(&row).Error; err != nil {
			return errors.Wrap(err, errors.ErrCodeInternalError, "failed to reload progress")
		}
		if row.Progress < def.Target {
			return nil
		}

		now := time.Now().UTC()
		res = tx.Model(&models.UserAchievement{}).
			Where("user_id = ? AND achievement_type = ? AND completed = ?", userID, def.Type, false).
			Updates(map[string]interface{}{
				"progress":     def.Target, // clamp at completion
				"completed":    true,
				"completed_at": now,
			})
		if res.Error != nil {
			return errors.Wrap(res.Error, errors.ErrCodeInternalError, "failed to complete achievement")
		}
		if res.RowsAffected == 0 {
			// Another transaction completed it first; it owns the reward.
			return nil
		}

		if def.RewardPoints > 0 {
			desc := "Achievement unlocked: " + def.Title
			if err := creditPointsTx(tx, userID, def.RewardPoints, models.TxTypeAchievementReward, desc, def.Type); err != nil {
				return err
			}
		}
		if def.RewardBorderID != "" {
			if _, err := unlockBorderTx(tx, userID, def.RewardBorderID, models.UnlockTypeAchievement, nil); err != nil {
				return err
			}
		}

		completedNow = true
		return nil
	})
	return completedNow, err
}

// GetUserAchievements retrieves all progress rows for a user.
func (r *AchievementRepository) GetUserAchievements(userID uint) ([]models.UserAchievement, error) {
	var rows []models.UserAchievement
	err := r.db.Where("user_id = ?", userID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to get achievements")
	}
	return rows, nil
}
