package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/matchahub/matcha_hub/internal/cache"
	"github.com/matchahub/matcha_hub/internal/models"
	"github.com/matchahub/matcha_hub/internal/repositories"
	"github.com/matchahub/matcha_hub/pkg/errors"
	"github.com/matchahub/matcha_hub/pkg/logger"
)

type BorderService struct {
	borderRepo  *repositories.BorderRepository
	userRepo    *repositories.UserRepository
	leaderboard *cache.LeaderboardCache
}

func NewBorderService(
	borderRepo *repositories.BorderRepository,
	userRepo *repositories.UserRepository,
	leaderboard *cache.LeaderboardCache,
) *BorderService {
	return &BorderService{
		borderRepo:  borderRepo,
		userRepo:    userRepo,
		leaderboard: leaderboard,
	}
}

// BorderView is a catalog entry with the user's ownership state.
type BorderView struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	ImageURL    string     `json:"image_url"`
	PricePoints int64      `json:"price_points"`
	Purchasable bool       `json:"purchasable"`
	Unlocked    bool       `json:"unlocked"`
	UnlockType  string     `json:"unlock_type,omitempty"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty"`
	Selected    bool       `json:"selected"`
}

// ListForUser returns the full border catalog with per-user unlock state.
func (s *BorderService) ListForUser(userID uint) ([]BorderView, error) {
	borders, err := s.borderRepo.ListBorders()
	if err != nil {
		return nil, err
	}

	unlocks, err := s.borderRepo.ListUnlocks(userID)
	if err != nil {
		return nil, err
	}
	unlockByBorder := make(map[string]models.BorderUnlock, len(unlocks))
	for _, unlock := range unlocks {
		unlockByBorder[unlock.BorderID] = unlock
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	selected := ""
	if user.SelectedBorderID != nil {
		selected = *user.SelectedBorderID
	}

	views := make([]BorderView, 0, len(borders))
	for _, border := range borders {
		view := BorderView{
			ID:          border.ID,
			Name:        border.Name,
			Description: border.Description,
			ImageURL:    border.ImageURL,
			PricePoints: border.PricePoints,
			Purchasable: border.Purchasable,
			Selected:    border.ID == selected,
		}
		if unlock, ok := unlockByBorder[border.ID]; ok {
			view.Unlocked = true
			view.UnlockType = unlock.UnlockType
			createdAt := unlock.CreatedAt
			view.UnlockedAt = &createdAt
		}
		views = append(views, view)
	}
	return views, nil
}

// Purchase spends points for a purchasable border. Buying an already-owned
// border succeeds without charging (idempotent).
func (s *BorderService) Purchase(userID uint, borderID string) error {
	border, err := s.borderRepo.GetBorder(borderID)
	if err != nil {
		return err
	}
	if !border.Purchasable {
		return errors.New(errors.ErrCodeValidationFailed, "border is not purchasable")
	}

	owned, err := s.borderRepo.HasUnlock(userID, borderID)
	if err != nil {
		return err
	}
	if owned {
		return nil
	}

	reference := uuid.New().String()
	if err := s.borderRepo.Purchase(userID, border, reference); err != nil {
		return err
	}

	if err := s.leaderboard.AddPoints(userID, -border.PricePoints); err != nil {
		logger.Warn("Leaderboard cache update failed", "user_id", userID, "error", err)
	}
	return nil
}

// Select sets the border shown on the user's profile. Passing an empty
// border ID clears the selection.
func (s *BorderService) Select(userID uint, borderID string) error {
	if borderID == "" {
		return s.userRepo.SetSelectedBorder(userID, nil)
	}

	if _, err := s.borderRepo.GetBorder(borderID); err != nil {
		return err
	}

	owned, err := s.borderRepo.HasUnlock(userID, borderID)
	if err != nil {
		return err
	}
	if !owned {
		return errors.New(errors.ErrCodeForbidden, "border is not unlocked")
	}

	return s.userRepo.SetSelectedBorder(userID, &borderID)
}
