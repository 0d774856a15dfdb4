package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/matchahub/matcha_hub/internal/middleware"
	"github.com/matchahub/matcha_hub/internal/services"
	"github.com/matchahub/matcha_hub/pkg/errors"
)

type BorderHandler struct {
	borderService *services.BorderService
}

func NewBorderHandler(borderService *services.BorderService) *BorderHandler {
	return &BorderHandler{borderService: borderService}
}

// List handles GET /api/v1/borders — the catalog with the caller's unlock
// and selection state.
func (h *BorderHandler) List(c *gin.Context) {
	views, err := h.borderService.ListForUser(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, views)
}

// Purchase handles POST /api/v1/borders/:id/purchase
func (h *BorderHandler) Purchase(c *gin.Context) {
	if err := h.borderService.Purchase(middleware.UserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"status": "unlocked"})
}

type selectBorderRequest struct {
	BorderID string `json:"border_id"`
}

// Select handles PUT /api/v1/borders/selected — an empty border_id clears
// the selection.
func (h *BorderHandler) Select(c *gin.Context) {
	var req selectBorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.Wrap(err, errors.ErrCodeValidationFailed, "invalid request body"))
		return
	}

	if err := h.borderService.Select(middleware.UserID(c), req.BorderID); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"selected": req.BorderID})
}
