package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/matchahub/matcha_hub/internal/middleware"
	"github.com/matchahub/matcha_hub/internal/models"
	"github.com/matchahub/matcha_hub/internal/repositories"
	"github.com/matchahub/matcha_hub/internal/security"
	"github.com/matchahub/matcha_hub/internal/services"
	"github.com/matchahub/matcha_hub/pkg/errors"
)

type UserHandler struct {
	userRepo       *repositories.UserRepository
	rewardsService *services.RewardsService
}

func NewUserHandler(userRepo *repositories.UserRepository, rewardsService *services.RewardsService) *UserHandler {
	return &UserHandler{userRepo: userRepo, rewardsService: rewardsService}
}

func profileJSON(user *models.User) gin.H {
	out := gin.H{
		"id":           user.ID,
		"username":     user.Username,
		"display_name": user.DisplayName,
		"bio":          user.Bio,
		"avatar_url":   user.AvatarURL,
		"points":       user.Points,
		"created_at":   user.CreatedAt,
	}
	if user.SelectedBorderID != nil {
		out["selected_border"] = *user.SelectedBorderID
	}
	return out
}

// GetMe handles GET /api/v1/me
func (h *UserHandler) GetMe(c *gin.Context) {
	user, err := h.userRepo.GetByID(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	out := profileJSON(user)
	out["email"] = user.Email
	respondOK(c, out)
}

type updateProfileRequest struct {
	DisplayName *string `json:"display_name"`
	Bio         *string `json:"bio"`
	AvatarURL   *string `json:"avatar_url"`
}

// UpdateMe handles PATCH /api/v1/me
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.Wrap(err, errors.ErrCodeValidationFailed, "invalid request body"))
		return
	}

	updates := map[string]interface{}{}
	if req.DisplayName != nil {
		name := security.SanitizeContent(*req.DisplayName)
		if name == "" || len(name) > 100 {
			respondError(c, errors.New(errors.ErrCodeValidationFailed, "display name must be 1-100 characters"))
			return
		}
		updates["display_name"] = name
	}
	if req.Bio != nil {
		bio := security.SanitizeContent(*req.Bio)
		if len(bio) > 2000 {
			respondError(c, errors.New(errors.ErrCodeValidationFailed, "bio too long (max 2000 characters)"))
			return
		}
		updates["bio"] = bio
	}
	if req.AvatarURL != nil {
		if !security.ValidateImageURL(*req.AvatarURL) {
			respondError(c, errors.New(errors.ErrCodeValidationFailed, "invalid avatar url"))
			return
		}
		updates["avatar_url"] = *req.AvatarURL
	}
	if len(updates) == 0 {
		respondError(c, errors.New(errors.ErrCodeValidationFailed, "no fields to update"))
		return
	}

	userID := middleware.UserID(c)
	if err := h.userRepo.UpdateProfile(userID, updates); err != nil {
		respondError(c, err)
		return
	}

	user, err := h.userRepo.GetByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, profileJSON(user))
}

// GetProfile handles GET /api/v1/users/:username — the public profile view
// including achievements and point total.
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.userRepo.GetByUsername(c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}

	progress, err := h.rewardsService.GetProgress(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	out := profileJSON(user)
	out["achievements"] = progress.Achievements
	out["total_points"] = progress.TotalPoints
	respondOK(c, out)
}
