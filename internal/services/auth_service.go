package services

import (
	"strings"

	"github.com/matchahub/matcha_hub/internal/config"
	"github.com/matchahub/matcha_hub/internal/models"
	"github.com/matchahub/matcha_hub/internal/repositories"
	"github.com/matchahub/matcha_hub/internal/security"
	"github.com/matchahub/matcha_hub/pkg/errors"
	"github.com/matchahub/matcha_hub/pkg/logger"
)

type AuthService struct {
	userRepo *repositories.UserRepository
	rewards  *RewardsService
	cfg      *config.Config
}

func NewAuthService(
	userRepo *repositories.UserRepository,
	rewards *RewardsService,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		rewards:  rewards,
		cfg:      cfg,
	}
}

// Register creates a new account, grants the welcome bonus and initializes
// the achievement rows. Returns the user and a signed token.
func (s *AuthService) Register(username, email, password, displayName string) (*models.User, string, error) {
	username = strings.ToLower(security.SanitizeString(username))
	email = strings.ToLower(security.SanitizeString(email))
	displayName = security.SanitizeContent(displayName)

	if !strings.Contains(email, "@") {
		return nil, "", errors.New(errors.ErrCodeValidationFailed, "invalid email address")
	}

	if _, err := s.userRepo.GetByUsername(username); err == nil {
		return nil, "", errors.New(errors.ErrCodeAlreadyExists, "username already taken")
	}
	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return nil, "", errors.New(errors.ErrCodeAlreadyExists, "email already registered")
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, "", errors.Wrap(err, errors.ErrCodeValidationFailed, "invalid password")
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		DisplayName:  displayName,
		Role:         models.RoleMember,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, "", err
	}

	// Best-effort onboarding: a failed bonus or initialization must not
	// fail the registration.
	if err := s.rewards.GrantWelcomeBonus(user.ID, s.cfg.WelcomeBonusPoints); err != nil {
		logger.Error("Failed to grant welcome bonus", "user_id", user.ID, "error", err)
	}
	if err := s.rewards.EnsureInitialized(user.ID); err != nil {
		logger.Error("Failed to initialize achievements", "user_id", user.ID, "error", err)
	}

	token, err := security.GenerateJWT(user.ID, user.Username, user.Role, s.cfg.JWTSecret, s.cfg.GetTokenTTL())
	if err != nil {
		return nil, "", errors.Wrap(err, errors.ErrCodeInternalError, "failed to generate token")
	}

	return user, token, nil
}

// Login authenticates by username and password and returns a signed token.
func (s *AuthService) Login(username, password string) (*models.User, string, error) {
	username = strings.ToLower(security.SanitizeString(username))

	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, "", errors.New(errors.ErrCodeUnauthorized, "invalid credentials")
	}

	if !security.CheckPassword(password, user.PasswordHash) {
		return nil, "", errors.New(errors.ErrCodeUnauthorized, "invalid credentials")
	}

	if err := s.userRepo.UpdateLastSeen(user.ID); err != nil {
		logger.Warn("Failed to update last seen", "user_id", user.ID, "error", err)
	}

	token, err := security.GenerateJWT(user.ID, user.Username, user.Role, s.cfg.JWTSecret, s.cfg.GetTokenTTL())
	if err != nil {
		return nil, "", errors.Wrap(err, errors.ErrCodeInternalError, "failed to generate token")
	}

	return user, token, nil
}
