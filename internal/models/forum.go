package models

import (
	"time"
)

// Forum category constants
const (
	ForumCategoryBrewing   = "brewing"
	ForumCategoryTeaware   = "teaware"
	ForumCategorySourcing  = "sourcing"
	ForumCategoryRecipes   = "recipes"
	ForumCategoryOffTopic  = "off_topic"
)

type ForumThread struct {
	ID           uint      `gorm:"primaryKey"`
	Slug         string    `gorm:"type:varchar(80);uniqueIndex;not null"`
	AuthorID     uint      `gorm:"not null;index"`
	Author       User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Title        string    `gorm:"type:varchar(200);not null"`
	Body         string    `gorm:"type:text;not null"`
	Category     string    `gorm:"type:varchar(30);not null;index"`
	CommentCount int64     `gorm:"not null;default:0"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (ForumThread) TableName() string {
	return "forum_threads"
}

// ValidForumCategory reports whether the category is one of the fixed set.
func ValidForumCategory(category string) bool {
	switch category {
	case ForumCategoryBrewing, ForumCategoryTeaware, ForumCategorySourcing,
		ForumCategoryRecipes, ForumCategoryOffTopic:
		return true
	}
	return false
}

type ForumComment struct {
	ID        uint        `gorm:"primaryKey"`
	ThreadID  uint        `gorm:"not null;index"`
	Thread    ForumThread `gorm:"foreignKey:ThreadID;constraint:OnDelete:CASCADE"`
	AuthorID  uint        `gorm:"not null;index"`
	Author    User        `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Body      string      `gorm:"type:text;not null"`
	CreatedAt time.Time   `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time   `gorm:"autoUpdateTime"`
}

func (ForumComment) TableName() string {
	return "forum_comments"
}
