package models

import (
	"time"
)

type FeedPost struct {
	ID        uint      `gorm:"primaryKey"`
	AuthorID  uint      `gorm:"not null;index"`
	Author    User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Body      string    `gorm:"type:text;not null"`
	ImageURL  string    `gorm:"type:varchar(500)"`
	LikeCount int64     `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (FeedPost) TableName() string {
	return "feed_posts"
}

// FeedLike is unique per (post, user); liking twice is a no-op.
type FeedLike struct {
	ID        uint      `gorm:"primaryKey"`
	PostID    uint      `gorm:"not null;index:idx_feed_like,unique"`
	Post      FeedPost  `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	UserID    uint      `gorm:"not null;index:idx_feed_like,unique"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (FeedLike) TableName() string {
	return "feed_likes"
}
