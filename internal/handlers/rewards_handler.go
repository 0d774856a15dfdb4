package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/matchahub/matcha_hub/internal/middleware"
	"github.com/matchahub/matcha_hub/internal/services"
)

type RewardsHandler struct {
	rewardsService *services.RewardsService
}

func NewRewardsHandler(rewardsService *services.RewardsService) *RewardsHandler {
	return &RewardsHandler{rewardsService: rewardsService}
}

// GetAchievements handles GET /api/v1/rewards/achievements — the caller's
// full achievement progress plus point total.
func (h *RewardsHandler) GetAchievements(c *gin.Context) {
	summary, err := h.rewardsService.GetProgress(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, summary)
}

// GetPointHistory handles GET /api/v1/rewards/history
func (h *RewardsHandler) GetPointHistory(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	history, err := h.rewardsService.GetPointHistory(middleware.UserID(c), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]gin.H, 0, len(history))
	for _, entry := range history {
		out = append(out, gin.H{
			"amount":      entry.Amount,
			"type":        entry.TransactionType,
			"description": entry.Description,
			"created_at":  entry.CreatedAt,
		})
	}
	respondOK(c, out)
}
