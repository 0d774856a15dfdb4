package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/matchahub/matcha_hub/internal/middleware"
	"github.com/matchahub/matcha_hub/internal/services"
	"github.com/matchahub/matcha_hub/pkg/errors"
)

type FriendHandler struct {
	friendService *services.FriendService
}

func NewFriendHandler(friendService *services.FriendService) *FriendHandler {
	return &FriendHandler{friendService: friendService}
}

type friendRequestBody struct {
	UserID uint `json:"user_id" binding:"required"`
}

// SendRequest handles POST /api/v1/friends/requests
func (h *FriendHandler) SendRequest(c *gin.Context) {
	var req friendRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.Wrap(err, errors.ErrCodeValidationFailed, "invalid request body"))
		return
	}

	if err := h.friendService.SendRequest(middleware.UserID(c), req.UserID); err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, gin.H{"status": "pending"})
}

// AcceptRequest handles POST /api/v1/friends/requests/:id/accept
func (h *FriendHandler) AcceptRequest(c *gin.Context) {
	requestID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, errors.New(errors.ErrCodeValidationFailed, "invalid request id"))
		return
	}

	if err := h.friendService.AcceptRequest(uint(requestID), middleware.UserID(c)); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"status": "accepted"})
}

// RejectRequest handles POST /api/v1/friends/requests/:id/reject
func (h *FriendHandler) RejectRequest(c *gin.Context) {
	requestID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, errors.New(errors.ErrCodeValidationFailed, "invalid request id"))
		return
	}

	if err := h.friendService.RejectRequest(uint(requestID), middleware.UserID(c)); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"status": "rejected"})
}

// Remove handles DELETE /api/v1/friends/:user_id
func (h *FriendHandler) Remove(c *gin.Context) {
	otherID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		respondError(c, errors.New(errors.ErrCodeValidationFailed, "invalid user id"))
		return
	}

	if err := h.friendService.RemoveFriend(middleware.UserID(c), uint(otherID)); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"status": "removed"})
}

// List handles GET /api/v1/friends
func (h *FriendHandler) List(c *gin.Context) {
	friends, err := h.friendService.ListFriends(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]gin.H, 0, len(friends))
	for i := range friends {
		out = append(out, profileJSON(&friends[i]))
	}
	respondOK(c, out)
}

// ListPending handles GET /api/v1/friends/requests
func (h *FriendHandler) ListPending(c *gin.Context) {
	requests, err := h.friendService.ListPendingRequests(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]gin.H, 0, len(requests))
	for _, req := range requests {
		out = append(out, gin.H{
			"id":         req.ID,
			"requester":  profileJSON(&req.Requester),
			"created_at": req.CreatedAt,
		})
	}
	respondOK(c, out)
}
