package models

import (
	"time"
)

// Listing category constants
const (
	ListingCategoryTea       = "tea"
	ListingCategoryTeaware   = "teaware"
	ListingCategoryAccessory = "accessory"
)

// Listing status constants
const (
	ListingStatusActive  = "active"
	ListingStatusSold    = "sold"
	ListingStatusRemoved = "removed"
)

// Listing is a marketplace item offered by a community member.
type Listing struct {
	ID          uint      `gorm:"primaryKey"`
	Slug        string    `gorm:"type:varchar(80);uniqueIndex;not null"`
	SellerID    uint      `gorm:"not null;index"`
	Seller      User      `gorm:"foreignKey:SellerID;constraint:OnDelete:CASCADE"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text;not null"`
	Category    string    `gorm:"type:varchar(30);not null;index"`
	PriceCents  int64     `gorm:"not null"`
	ImageURL    string    `gorm:"type:varchar(500)"`
	Status      string    `gorm:"type:varchar(20);not null;default:'active';index"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Listing) TableName() string {
	return "listings"
}

// ValidListingCategory reports whether the category is one of the fixed set.
func ValidListingCategory(category string) bool {
	switch category {
	case ListingCategoryTea, ListingCategoryTeaware, ListingCategoryAccessory:
		return true
	}
	return false
}
