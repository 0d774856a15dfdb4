package services

import (
	"github.com/matchahub/matcha_hub/internal/models"
	"github.com/matchahub/matcha_hub/internal/repositories"
	"github.com/matchahub/matcha_hub/internal/security"
	"github.com/matchahub/matcha_hub/pkg/errors"
	"github.com/matchahub/matcha_hub/pkg/utils"
)

type ListingService struct {
	listingRepo *repositories.ListingRepository
	rewards     *RewardsService
}

func NewListingService(listingRepo *repositories.ListingRepository, rewards *RewardsService) *ListingService {
	return &ListingService{listingRepo: listingRepo, rewards: rewards}
}

// Create validates and persists a listing, then tracks the reward event.
func (s *ListingService) Create(sellerID uint, title, description, category string, priceCents int64, imageURL string) (*models.Listing, error) {
	title = security.SanitizeContent(title)
	description = security.SanitizeContent(description)

	if title == "" || len(title) > 200 {
		return nil, errors.New(errors.ErrCodeValidationFailed, "title must be 1-200 characters")
	}
	if description == "" {
		return nil, errors.New(errors.ErrCodeValidationFailed, "description is required")
	}
	if !models.ValidListingCategory(category) {
		return nil, errors.New(errors.ErrCodeValidationFailed, "unknown category: "+category)
	}
	if priceCents <= 0 {
		return nil, errors.New(errors.ErrCodeValidationFailed, "price must be positive")
	}
	if !security.ValidateImageURL(imageURL) {
		return nil, errors.New(errors.ErrCodeValidationFailed, "invalid image url")
	}

	listing := &models.Listing{
		Slug:        utils.Slugify(title),
		SellerID:    sellerID,
		Title:       title,
		Description: description,
		Category:    category,
		PriceCents:  priceCents,
		ImageURL:    imageURL,
		Status:      models.ListingStatusActive,
	}
	if err := s.listingRepo.CreateListing(listing); err != nil {
		return nil, err
	}

	s.rewards.TrackEvent(sellerID, models.EventListingCreated)
	return listing, nil
}

// Get retrieves a listing by slug.
func (s *ListingService) Get(slug string) (*models.Listing, error) {
	return s.listingRepo.GetListingBySlug(slug)
}

// Browse pages through active listings with optional filters.
func (s *ListingService) Browse(category string, sellerID uint, page, pageSize int) ([]models.Listing, error) {
	if category != "" && !models.ValidListingCategory(category) {
		return nil, errors.New(errors.ErrCodeValidationFailed, "unknown category: "+category)
	}
	offset, limit := pagination(page, pageSize)
	return s.listingRepo.ListListings(category, sellerID, offset, limit)
}

// MarkSold transitions a listing to sold; only the seller may do so.
func (s *ListingService) MarkSold(listingID, sellerID uint) error {
	return s.listingRepo.UpdateStatus(listingID, sellerID, models.ListingStatusSold)
}

// Remove takes a listing off the marketplace; only the seller may do so.
func (s *ListingService) Remove(listingID, sellerID uint) error {
	return s.listingRepo.UpdateStatus(listingID, sellerID, models.ListingStatusRemoved)
}
