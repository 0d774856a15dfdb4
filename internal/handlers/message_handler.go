package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/matchahub/matcha_hub/internal/middleware"
	"github.com/matchahub/matcha_hub/internal/services"
	"github.com/matchahub/matcha_hub/pkg/errors"
)

type MessageHandler struct {
	messageService *services.MessageService
}

func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

type sendMessageRequest struct {
	RecipientID uint   `json:"recipient_id" binding:"required"`
	Body        string `json:"body" binding:"required"`
}

// Send handles POST /api/v1/messages
func (h *MessageHandler) Send(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.Wrap(err, errors.ErrCodeValidationFailed, "invalid request body"))
		return
	}

	message, err := h.messageService.Send(middleware.UserID(c), req.RecipientID, req.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, gin.H{"id": message.ID, "created_at": message.CreatedAt})
}

// GetConversation handles GET /api/v1/messages/:user_id
func (h *MessageHandler) GetConversation(c *gin.Context) {
	otherID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		respondError(c, errors.New(errors.ErrCodeValidationFailed, "invalid user id"))
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))

	userID := middleware.UserID(c)
	messages, err := h.messageService.GetConversation(userID, uint(otherID), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]gin.H, 0, len(messages))
	for i := range messages {
		out = append(out, gin.H{
			"id":         messages[i].ID,
			"body":       messages[i].Body,
			"mine":       messages[i].SenderID == userID,
			"read_at":    messages[i].ReadAt,
			"created_at": messages[i].CreatedAt,
		})
	}
	respondOK(c, gin.H{"page": page, "page_size": pageSize, "messages": out})
}

// UnreadCount handles GET /api/v1/messages/unread
func (h *MessageHandler) UnreadCount(c *gin.Context) {
	count, err := h.messageService.UnreadCount(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"unread": count})
}
