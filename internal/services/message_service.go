package services

import (
	"github.com/matchahub/matcha_hub/internal/models"
	"github.com/matchahub/matcha_hub/internal/repositories"
	"github.com/matchahub/matcha_hub/internal/security"
	"github.com/matchahub/matcha_hub/pkg/errors"
)

type MessageService struct {
	messageRepo *repositories.MessageRepository
	friendRepo  *repositories.FriendRepository
	rewards     *RewardsService
}

func NewMessageService(
	messageRepo *repositories.MessageRepository,
	friendRepo *repositories.FriendRepository,
	rewards *RewardsService,
) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		friendRepo:  friendRepo,
		rewards:     rewards,
	}
}

// Send delivers a direct message. Messaging is friend-gated.
func (s *MessageService) Send(senderID, recipientID uint, body string) (*models.DirectMessage, error) {
	if senderID == recipientID {
		return nil, errors.New(errors.ErrCodeValidationFailed, "cannot message yourself")
	}

	body = security.SanitizeContent(body)
	if body == "" {
		return nil, errors.New(errors.ErrCodeValidationFailed, "message body is required")
	}
	if len(body) > 4000 {
		return nil, errors.New(errors.ErrCodeValidationFailed, "message too long (max 4000 characters)")
	}

	areFriends, err := s.friendRepo.AreFriends(senderID, recipientID)
	if err != nil {
		return nil, err
	}
	if !areFriends {
		return nil, errors.New(errors.ErrCodeForbidden, "you can only message friends")
	}

	message := &models.DirectMessage{
		SenderID:    senderID,
		RecipientID: recipientID,
		Body:        body,
	}
	if err := s.messageRepo.CreateMessage(message); err != nil {
		return nil, err
	}

	s.rewards.TrackEvent(senderID, models.EventMessageSent)
	return message, nil
}

// GetConversation returns the message history with another user and marks
// incoming messages as read.
func (s *MessageService) GetConversation(userID, otherID uint, page, pageSize int) ([]models.DirectMessage, error) {
	offset, limit := pagination(page, pageSize)
	messages, err := s.messageRepo.GetConversation(userID, otherID, offset, limit)
	if err != nil {
		return nil, err
	}

	if err := s.messageRepo.MarkConversationRead(userID, otherID); err != nil {
		return nil, err
	}
	return messages, nil
}

// UnreadCount returns how many unread messages await the user.
func (s *MessageService) UnreadCount(userID uint) (int64, error) {
	return s.messageRepo.CountUnread(userID)
}
