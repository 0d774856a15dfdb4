package services

import (
	"github.com/matchahub/matcha_hub/internal/cache"
	"github.com/matchahub/matcha_hub/internal/models"
	"github.com/matchahub/matcha_hub/internal/repositories"
	"github.com/matchahub/matcha_hub/pkg/logger"
)

type LeaderboardService struct {
	pointRepo   *repositories.PointRepository
	userRepo    *repositories.UserRepository
	leaderboard *cache.LeaderboardCache
}

func NewLeaderboardService(
	pointRepo *repositories.PointRepository,
	userRepo *repositories.UserRepository,
	leaderboard *cache.LeaderboardCache,
) *LeaderboardService {
	return &LeaderboardService{
		pointRepo:   pointRepo,
		userRepo:    userRepo,
		leaderboard: leaderboard,
	}
}

// LeaderboardRow is one ranked user.
type LeaderboardRow struct {
	Rank           int    `json:"rank"`
	UserID         uint   `json:"user_id"`
	Username       string `json:"username"`
	DisplayName    string `json:"display_name"`
	AvatarURL      string `json:"avatar_url,omitempty"`
	SelectedBorder string `json:"selected_border,omitempty"`
	Points         int64  `json:"points"`
}

// Top returns the highest-point users. The Redis sorted set is consulted
// first; a cold or unreachable cache falls back to the database and warms
// the cache best-effort.
func (s *LeaderboardService) Top(limit int) ([]LeaderboardRow, error) {
	if limit < 1 || limit > 100 {
		limit = 25
	}

	entries, err := s.leaderboard.Top(limit)
	if err != nil {
		logger.Warn("Leaderboard cache read failed, falling back to database", "error", err)
		entries = nil
	}
	if len(entries) > 0 {
		return s.hydrateRows(entries)
	}

	users, err := s.pointRepo.GetTopUsers(limit)
	if err != nil {
		return nil, err
	}

	rows := make([]LeaderboardRow, 0, len(users))
	for i, user := range users {
		rows = append(rows, rowFor(i+1, user, user.Points))
		if err := s.leaderboard.SetPoints(user.ID, user.Points); err != nil {
			logger.Warn("Leaderboard cache warm failed", "user_id", user.ID, "error", err)
		}
	}
	return rows, nil
}

func (s *LeaderboardService) hydrateRows(entries []cache.LeaderboardEntry) ([]LeaderboardRow, error) {
	ids := make([]uint, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.UserID)
	}

	users, err := s.userRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]models.User, len(users))
	for _, user := range users {
		byID[user.ID] = user
	}

	rows := make([]LeaderboardRow, 0, len(entries))
	for _, entry := range entries {
		user, ok := byID[entry.UserID]
		if !ok {
			continue
		}
		rows = append(rows, rowFor(len(rows)+1, user, entry.Points))
	}
	return rows, nil
}

func rowFor(rank int, user models.User, points int64) LeaderboardRow {
	row := LeaderboardRow{
		Rank:        rank,
		UserID:      user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		AvatarURL:   user.AvatarURL,
		Points:      points,
	}
	if user.SelectedBorderID != nil {
		row.SelectedBorder = *user.SelectedBorderID
	}
	return row
}
