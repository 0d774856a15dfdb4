package models

import (
	"time"
)

// DirectMessage is a one-to-one message between friends.
type DirectMessage struct {
	ID          uint      `gorm:"primaryKey"`
	SenderID    uint      `gorm:"not null;index:idx_dm_pair"`
	Sender      User      `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE"`
	RecipientID uint      `gorm:"not null;index:idx_dm_pair"`
	Recipient   User      `gorm:"foreignKey:RecipientID;constraint:OnDelete:CASCADE"`
	Body        string    `gorm:"type:text;not null"`
	ReadAt      *time.Time
	CreatedAt   time.Time `gorm:"autoCreateTime;index"`
}

func (DirectMessage) TableName() string {
	return "direct_messages"
}
