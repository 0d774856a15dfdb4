package repositories

import (
	"github.com/matchahub/matcha_hub/internal/models"
	"github.com/matchahub/matcha_hub/pkg/errors"
	"gorm.io/gorm"
)

type ListingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

// CreateListing persists a marketplace listing
func (r *ListingRepository) CreateListing(listing *models.Listing) error {
	if err := r.db.Create(listing).Error; err != nil {
		return errors.Wrap(err, errors.ErrCodeInternalError, "failed to create listing")
	}
	return nil
}

// GetListingBySlug retrieves a listing with its seller
func (r *ListingRepository) GetListingBySlug(slug string) (*models.Listing, error) {
	var listing models.Listing
	err := r.db.Preload("Seller").Where("slug = ?", slug).First(&listing).Error
	if err == gorm.ErrRecordNotFound {
		return nil, errors.New(errors.ErrCodeNotFound, "listing not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to get listing")
	}
	return &listing, nil
}

// ListListings retrieves active listings newest first, optionally filtered
// by category or seller
func (r *ListingRepository) ListListings(category string, sellerID uint, offset, limit int) ([]models.Listing, error) {
	var listings []models.Listing
	query := r.db.Preload("Seller").
		Where("status = ?", models.ListingStatusActive).
		Order("created_at DESC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if sellerID != 0 {
		query = query.Where("seller_id = ?", sellerID)
	}
	err := query.Offset(offset).Limit(limit).Find(&listings).Error
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to list listings")
	}
	return listings, nil
}

// UpdateStatus transitions a listing's status; only the seller may do so
func (r *ListingRepository) UpdateStatus(listingID, sellerID uint, status string) error {
	result := r.db.Model(&models.Listing{}).
		Where("id = ? AND seller_id = ?", listingID, sellerID).
		Update("status", status)
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to update listing status")
	}
	if result.RowsAffected == 0 {
		return errors.New(errors.ErrCodeNotFound, "listing not found or not owned by user")
	}
	return nil
}
