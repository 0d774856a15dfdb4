package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID               uint      `gorm:"primaryKey"`
	Username         string    `gorm:"type:varchar(30);uniqueIndex;not null"`
	Email            string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash     string    `gorm:"type:varchar(255);not null"`
	DisplayName      string    `gorm:"type:varchar(100);not null"`
	Bio              string    `gorm:"type:text"`
	AvatarURL        string    `gorm:"type:varchar(500)"`
	Points           int64     `gorm:"not null;default:0"`
	SelectedBorderID *string   `gorm:"type:varchar(40)"`
	Role             string    `gorm:"type:varchar(20);not null;default:'member'"`
	LastSeenAt       *time.Time
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

// Role constants
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

var usernameRegex = regexp.MustCompile(`^[a-z0-9_]{3,30}$`)

// BeforeSave validates user data before saving to database
func (u *User) BeforeSave(tx *gorm.DB) error {
	if !usernameRegex.MatchString(u.Username) {
		return fmt.Errorf("invalid username: must be 3-30 lowercase letters, digits or underscores")
	}

	if strings.TrimSpace(u.DisplayName) == "" {
		return fmt.Errorf("display name is required")
	}
	if len(u.DisplayName) > 100 {
		return fmt.Errorf("display name too long (max 100 characters)")
	}

	if len(u.Bio) > 2000 {
		return fmt.Errorf("bio too long (max 2000 characters)")
	}

	if u.Role != RoleMember && u.Role != RoleAdmin {
		return fmt.Errorf("invalid role: %s", u.Role)
	}

	return nil
}

func (User) TableName() string {
	return "users"
}
