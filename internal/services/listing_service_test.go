package services

import (
	"testing"

	"github.com/matchahub/matcha_hub/internal/models"
	"github.com/matchahub/matcha_hub/internal/repositories"
	"github.com/matchahub/matcha_hub/pkg/errors"
	"gorm.io/gorm"
)

func newTestListingService(db *gorm.DB) *ListingService {
	rewards, _ := newTestRewardsService(db)
	return NewListingService(repositories.NewListingRepository(db), rewards)
}

func TestCreateListing(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestListingService(db)
	seller := createTestUser(t, db, "ichika")

	listing, err := svc.Create(seller.ID, "Uji ceremonial 30g", "Fresh spring harvest.", models.ListingCategoryTea, 2400, "")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if listing.Status != models.ListingStatusActive {
		t.Errorf("status = %s, want active", listing.Status)
	}

	loaded, err := svc.Get(listing.Slug)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if loaded.SellerID != seller.ID || loaded.PriceCents != 2400 {
		t.Errorf("loaded = {seller %d, price %d}, want {%d, 2400}", loaded.SellerID, loaded.PriceCents, seller.ID)
	}

	var row models.UserAchievement
	err = db.Where("user_id = ? AND achievement_type = ?", seller.ID, models.AchievementFirstListing).First(&row).Error
	if err != nil {
		t.Fatalf("load first_listing: %v", err)
	}
	if !row.Completed {
		t.Error("first_listing not completed")
	}
}

func TestCreateListing_Validation(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestListingService(db)
	seller := createTestUser(t, db, "jiro")

	tests := []struct {
		name     string
		title    string
		desc     string
		category string
		price    int64
	}{
		{"empty title", "", "desc", models.ListingCategoryTea, 100},
		{"empty description", "Title", "", models.ListingCategoryTea, 100},
		{"bad category", "Title", "desc", "furniture", 100},
		{"zero price", "Title", "desc", models.ListingCategoryTea, 0},
		{"negative price", "Title", "desc", models.ListingCategoryTea, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(seller.ID, tt.title, tt.desc, tt.category, tt.price, "")
			if errors.CodeOf(err) != errors.ErrCodeValidationFailed {
				t.Errorf("error code = %s, want %s", errors.CodeOf(err), errors.ErrCodeValidationFailed)
			}
		})
	}
}

func TestMarkSold_SellerOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestListingService(db)
	seller := createTestUser(t, db, "kaede")
	other := createTestUser(t, db, "leo")

	listing, err := svc.Create(seller.ID, "Bamboo whisk", "80-prong chasen.", models.ListingCategoryTeaware, 1800, "")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := svc.MarkSold(listing.ID, other.ID); errors.CodeOf(err) != errors.ErrCodeNotFound {
		t.Errorf("non-seller MarkSold() error code = %s, want %s", errors.CodeOf(err), errors.ErrCodeNotFound)
	}

	if err := svc.MarkSold(listing.ID, seller.ID); err != nil {
		t.Fatalf("MarkSold() error = %v", err)
	}

	// Sold listings leave the browse results.
	listings, err := svc.Browse("", 0, 1, 10)
	if err != nil {
		t.Fatalf("Browse() error = %v", err)
	}
	if len(listings) != 0 {
		t.Errorf("browse returned %d listings after sale, want 0", len(listings))
	}
}

func TestBrowse_Filters(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestListingService(db)
	seller1 := createTestUser(t, db, "mio")
	seller2 := createTestUser(t, db, "nao")

	if _, err := svc.Create(seller1.ID, "Matcha bowl", "Handmade chawan.", models.ListingCategoryTeaware, 5200, ""); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := svc.Create(seller2.ID, "Culinary grade 100g", "For lattes and baking.", models.ListingCategoryTea, 1500, ""); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	byCategory, err := svc.Browse(models.ListingCategoryTea, 0, 1, 10)
	if err != nil {
		t.Fatalf("Browse(category) error = %v", err)
	}
	if len(byCategory) != 1 || byCategory[0].SellerID != seller2.ID {
		t.Errorf("category filter = %v, want seller2's listing only", byCategory)
	}

	bySeller, err := svc.Browse("", seller1.ID, 1, 10)
	if err != nil {
		t.Fatalf("Browse(seller) error = %v", err)
	}
	if len(bySeller) != 1 || bySeller[0].SellerID != seller1.ID {
		t.Errorf("seller filter = %v, want seller1's listing only", bySeller)
	}

	if _, err := svc.Browse("furniture", 0, 1, 10); errors.CodeOf(err) != errors.ErrCodeValidationFailed {
		t.Errorf("bad category error code = %s, want %s", errors.CodeOf(err), errors.ErrCodeValidationFailed)
	}
}
