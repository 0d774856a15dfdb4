package repositories

import (
	"time"

	"github.com/matchahub/matcha_hub/internal/models"
	"github.com/matchahub/matcha_hub/pkg/errors"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create persists a new user
func (r *UserRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return errors.Wrap(err, errors.ErrCodeInternalError, "failed to create user")
	}
	return nil
}

// GetByID retrieves a user by primary key
func (r *UserRepository) GetByID(userID uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, userID).Error
	if err == gorm.ErrRecordNotFound {
		return nil, errors.New(errors.ErrCodeNotFound, "user not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to get user")
	}
	return &user, nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return nil, errors.New(errors.ErrCodeNotFound, "user not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to get user")
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return nil, errors.New(errors.ErrCodeNotFound, "user not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to get user")
	}
	return &user, nil
}

// GetByIDs retrieves several users at once, for hydrating leaderboard rows
func (r *UserRepository) GetByIDs(userIDs []uint) ([]models.User, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var users []models.User
	err := r.db.Where("id IN ?", userIDs).Find(&users).Error
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to get users")
	}
	return users, nil
}

// UpdateProfile updates the editable profile fields. Inputs are validated
// before they reach here; hooks are skipped so the partial update does not
// run the model validator against a zero-value User.
func (r *UserRepository) UpdateProfile(userID uint, updates map[string]interface{}) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).
		Session(&gorm.Session{SkipHooks: true}).Updates(updates)
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to update profile")
	}
	if result.RowsAffected == 0 {
		return errors.New(errors.ErrCodeNotFound, "user not found")
	}
	return nil
}

// SetSelectedBorder sets the border shown on the user's profile
func (r *UserRepository) SetSelectedBorder(userID uint, borderID *string) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).
		UpdateColumn("selected_border_id", borderID)
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to set border")
	}
	if result.RowsAffected == 0 {
		return errors.New(errors.ErrCodeNotFound, "user not found")
	}
	return nil
}

// UpdateLastSeen stamps the user's last activity time
func (r *UserRepository) UpdateLastSeen(userID uint) error {
	now := time.Now().UTC()
	err := r.db.Model(&models.User{}).Where("id = ?", userID).
		UpdateColumn("last_seen_at", now).Error
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternalError, "failed to update last seen")
	}
	return nil
}
