package models

import (
	"time"
)

// PointTransaction is an append-only ledger entry. The user's denormalized
// Points balance is updated in the same database transaction that inserts
// the entry, so the balance always equals the sum of the user's deltas.
type PointTransaction struct {
	ID              uint      `gorm:"primaryKey"`
	UserID          uint      `gorm:"not null;index"`
	User            User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Amount          int64     `gorm:"not null"`
	TransactionType string    `gorm:"type:varchar(50);not null;index"`
	Description     string    `gorm:"type:text"`
	Reference       string    `gorm:"type:varchar(64);index"`
	CreatedAt       time.Time `gorm:"autoCreateTime;index"`
}

// Transaction type constants
const (
	TxTypeAchievementReward = "achievement_reward"
	TxTypeBorderPurchase    = "border_purchase"
	TxTypeWelcomeBonus      = "welcome_bonus"
	TxTypeAdminAdjustment   = "admin_adjustment"
)

func (PointTransaction) TableName() string {
	return "point_transactions"
}
