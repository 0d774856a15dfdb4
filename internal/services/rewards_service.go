package services

import (
	"time"

	"github.com/matchahub/matcha_hub/internal/cache"
	"github.com/matchahub/matcha_hub/internal/models"
	"github.com/matchahub/matcha_hub/internal/notify"
	"github.com/matchahub/matcha_hub/internal/repositories"
	"github.com/matchahub/matcha_hub/pkg/errors"
	"github.com/matchahub/matcha_hub/pkg/logger"
)

// RewardsService is the reward progress engine: it advances achievement
// counters for domain events and, on completion, credits points and unlocks
// borders. All reward effects of one completion apply in one database
// transaction (see AchievementRepository.AdvanceProgress); the leaderboard
// cache and channel announcement afterwards are best-effort.
type RewardsService struct {
	achievementRepo *repositories.AchievementRepository
	pointRepo       *repositories.PointRepository
	userRepo        *repositories.UserRepository
	leaderboard     *cache.LeaderboardCache
	announcer       *notify.Announcer
}

func NewRewardsService(
	achievementRepo *repositories.AchievementRepository,
	pointRepo *repositories.PointRepository,
	userRepo *repositories.UserRepository,
	leaderboard *cache.LeaderboardCache,
	announcer *notify.Announcer,
) *RewardsService {
	return &RewardsService{
		achievementRepo: achievementRepo,
		pointRepo:       pointRepo,
		userRepo:        userRepo,
		leaderboard:     leaderboard,
		announcer:       announcer,
	}
}

// EnsureInitialized lazily creates progress rows for every achievement the
// user does not have yet. Idempotent.
func (s *RewardsService) EnsureInitialized(userID uint) error {
	return s.achievementRepo.EnsureInitialized(userID)
}

// RecordProgress advances every achievement matching the event kind by the
// given amount. Already-completed achievements are unchanged no-ops. Returns
// the definitions completed by this call.
func (s *RewardsService) RecordProgress(userID uint, kind models.EventKind, amount int64) ([]models.AchievementDefinition, error) {
	if !models.ValidEventKind(kind) {
		return nil, errors.New(errors.ErrCodeValidationFailed, "unknown event kind: "+string(kind))
	}
	if userID == 0 {
		return nil, errors.New(errors.ErrCodeValidationFailed, "user id is required")
	}
	if amount <= 0 {
		amount = 1
	}

	if err := s.achievementRepo.EnsureInitialized(userID); err != nil {
		return nil, err
	}

	var completed []models.AchievementDefinition
	for _, def := range models.AchievementsForEvent(kind) {
		completedNow, err := s.achievementRepo.AdvanceProgress(userID, def, amount)
		if err != nil {
			return completed, err
		}
		if completedNow {
			completed = append(completed, def)
			s.afterCompletion(userID, def)
		}
	}
	return completed, nil
}

// TrackEvent is the fire-and-forget entry point used by the forum, feed,
// friend, message and marketplace services. Reward tracking is best-effort
// relative to the primary action: failures are logged and swallowed so the
// triggering action never fails because of the rewards engine.
func (s *RewardsService) TrackEvent(userID uint, kind models.EventKind) {
	if _, err := s.RecordProgress(userID, kind, 1); err != nil {
		logger.Error("Reward tracking failed", "user_id", userID, "event", kind, "error", err)
	}
}

// GrantWelcomeBonus credits the signup bonus to the ledger and mirrors it
// into the leaderboard cache, so a fresh account ranks with its bonus before
// the next cache rebuild.
func (s *RewardsService) GrantWelcomeBonus(userID uint, amount int64) error {
	if amount <= 0 {
		return nil
	}
	err := s.pointRepo.AddPoints(userID, amount,
		models.TxTypeWelcomeBonus, "Welcome to Matcha Hub", "")
	if err != nil {
		return err
	}
	if err := s.leaderboard.AddPoints(userID, amount); err != nil {
		logger.Warn("Leaderboard cache update failed", "user_id", userID, "error", err)
	}
	return nil
}

// afterCompletion applies the best-effort side channels outside the reward
// transaction: leaderboard cache delta and the channel announcement.
func (s *RewardsService) afterCompletion(userID uint, def models.AchievementDefinition) {
	if def.RewardPoints > 0 {
		if err := s.leaderboard.AddPoints(userID, def.RewardPoints); err != nil {
			logger.Warn("Leaderboard cache update failed", "user_id", userID, "error", err)
		}
	}

	if s.announcer != nil {
		user, err := s.userRepo.GetByID(userID)
		if err != nil {
			logger.Warn("Failed to load user for announcement", "user_id", userID, "error", err)
			return
		}
		s.announcer.AnnounceAchievement(user.DisplayName, def.Title, def.RewardPoints)
	}
}

// AchievementProgress is one catalog entry joined with the user's progress.
type AchievementProgress struct {
	Type           string     `json:"type"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Target         int64      `json:"target"`
	Progress       int64      `json:"progress"`
	Completed      bool       `json:"completed"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	RewardPoints   int64      `json:"reward_points"`
	RewardBorderID string     `json:"reward_border_id,omitempty"`
}

// ProgressSummary is the full reward state for a user.
type ProgressSummary struct {
	Achievements []AchievementProgress `json:"achievements"`
	TotalPoints  int64                 `json:"total_points"`
}

// GetProgress returns every achievement joined with its definition plus the
// user's aggregate point total.
func (s *RewardsService) GetProgress(userID uint) (*ProgressSummary, error) {
	if err := s.achievementRepo.EnsureInitialized(userID); err != nil {
		return nil, err
	}

	rows, err := s.achievementRepo.GetUserAchievements(userID)
	if err != nil {
		return nil, err
	}
	byType := make(map[string]models.UserAchievement, len(rows))
	for _, row := range rows {
		byType[row.AchievementType] = row
	}

	catalog := models.AchievementCatalog()
	achievements := make([]AchievementProgress, 0, len(catalog))
	for _, def := range catalog {
		row := byType[def.Type]
		achievements = append(achievements, AchievementProgress{
			Type:           def.Type,
			Title:          def.Title,
			Description:    def.Description,
			Target:         def.Target,
			Progress:       row.Progress,
			Completed:      row.Completed,
			CompletedAt:    row.CompletedAt,
			RewardPoints:   def.RewardPoints,
			RewardBorderID: def.RewardBorderID,
		})
	}

	balance, err := s.pointRepo.GetBalance(userID)
	if err != nil {
		return nil, err
	}

	return &ProgressSummary{Achievements: achievements, TotalPoints: balance}, nil
}

// GetPointHistory returns the user's recent ledger entries.
func (s *RewardsService) GetPointHistory(userID uint, limit int) ([]models.PointTransaction, error) {
	if limit < 1 || limit > 100 {
		limit = 50
	}
	return s.pointRepo.GetTransactionHistory(userID, limit)
}
