package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/matchahub/matcha_hub/internal/services"
)

type LeaderboardHandler struct {
	leaderboardService *services.LeaderboardService
}

func NewLeaderboardHandler(leaderboardService *services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// Top handles GET /api/v1/leaderboard
func (h *LeaderboardHandler) Top(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "25"))

	rows, err := h.leaderboardService.Top(limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, rows)
}
