package repositories

import (
	"time"

	"github.com/matchahub/matcha_hub/internal/models"
	"github.com/matchahub/matcha_hub/pkg/errors"
	"gorm.io/gorm"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// CreateMessage persists a direct message
func (r *MessageRepository) CreateMessage(message *models.DirectMessage) error {
	if err := r.db.Create(message).Error; err != nil {
		return errors.Wrap(err, errors.ErrCodeInternalError, "failed to create message")
	}
	return nil
}

// GetConversation retrieves messages between two users, newest first
func (r *MessageRepository) GetConversation(userID, otherID uint, offset, limit int) ([]models.DirectMessage, error) {
	var messages []models.DirectMessage
	err := r.db.Where(
		"(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
		userID, otherID, otherID, userID,
	).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to get conversation")
	}
	return messages, nil
}

// MarkConversationRead stamps all unread messages from the other user
func (r *MessageRepository) MarkConversationRead(userID, otherID uint) error {
	now := time.Now().UTC()
	err := r.db.Model(&models.DirectMessage{}).
		Where("recipient_id = ? AND sender_id = ? AND read_at IS NULL", userID, otherID).
		Update("read_at", now).Error
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternalError, "failed to mark conversation read")
	}
	return nil
}

// CountUnread counts unread messages addressed to the user
func (r *MessageRepository) CountUnread(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.DirectMessage{}).
		Where("recipient_id = ? AND read_at IS NULL", userID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrCodeInternalError, "failed to count unread messages")
	}
	return count, nil
}
