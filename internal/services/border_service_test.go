package services

import (
	"testing"

	"github.com/matchahub/matcha_hub/internal/models"
	"github.com/matchahub/matcha_hub/internal/repositories"
	"github.com/matchahub/matcha_hub/pkg/errors"
	"gorm.io/gorm"
)

func newTestBorderService(db *gorm.DB) (*BorderService, *repositories.PointRepository) {
	pointRepo := repositories.NewPointRepository(db)
	svc := NewBorderService(
		repositories.NewBorderRepository(db),
		repositories.NewUserRepository(db),
		nil, // no leaderboard cache
	)
	return svc, pointRepo
}

func TestBorderPurchase(t *testing.T) {
	db := setupTestDB(t)
	svc, points := newTestBorderService(db)
	user := createTestUser(t, db, "gorou")

	if err := points.AddPoints(user.ID, 150, models.TxTypeWelcomeBonus, "w", ""); err != nil {
		t.Fatalf("AddPoints() error = %v", err)
	}

	// sakura_bloom is seeded purchasable at 100 points.
	if err := svc.Purchase(user.ID, models.BorderSakuraBloom); err != nil {
		t.Fatalf("Purchase() error = %v", err)
	}

	balance, _ := points.GetBalance(user.ID)
	if balance != 50 {
		t.Errorf("balance = %d, want 50", balance)
	}
}

func TestBorderPurchase_InsufficientPoints(t *testing.T) {
	db := setupTestDB(t)
	svc, points := newTestBorderService(db)
	user := createTestUser(t, db, "hana")

	if err := points.AddPoints(user.ID, 50, models.TxTypeWelcomeBonus, "w", ""); err != nil {
		t.Fatalf("AddPoints() error = %v", err)
	}

	err := svc.Purchase(user.ID, models.BorderSakuraBloom)
	if errors.CodeOf(err) != errors.ErrCodeInsufficientFunds {
		t.Fatalf("error code = %s, want %s", errors.CodeOf(err), errors.ErrCodeInsufficientFunds)
	}

	balance, _ := points.GetBalance(user.ID)
	if balance != 50 {
		t.Errorf("balance = %d, want untouched 50", balance)
	}
}

func TestBorderPurchase_RepeatDoesNotDoubleCharge(t *testing.T) {
	db := setupTestDB(t)
	svc, points := newTestBorderService(db)
	user := createTestUser(t, db, "itsuki")

	if err := points.AddPoints(user.ID, 300, models.TxTypeWelcomeBonus, "w", ""); err != nil {
		t.Fatalf("AddPoints() error = %v", err)
	}
	if err := svc.Purchase(user.ID, models.BorderSakuraBloom); err != nil {
		t.Fatalf("Purchase() error = %v", err)
	}
	if err := svc.Purchase(user.ID, models.BorderSakuraBloom); err != nil {
		t.Fatalf("repeat Purchase() error = %v", err)
	}

	balance, _ := points.GetBalance(user.ID)
	if balance != 200 {
		t.Errorf("balance = %d after repeat purchase, want 200", balance)
	}
}

func TestBorderPurchase_NotPurchasable(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestBorderService(db)
	user := createTestUser(t, db, "jun")

	// bronze_whisk only comes from the rewards engine.
	err := svc.Purchase(user.ID, models.BorderBronzeWhisk)
	if errors.CodeOf(err) != errors.ErrCodeValidationFailed {
		t.Errorf("error code = %s, want %s", errors.CodeOf(err), errors.ErrCodeValidationFailed)
	}
}

func TestBorderPurchase_UnknownBorder(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestBorderService(db)
	user := createTestUser(t, db, "kenta")

	err := svc.Purchase(user.ID, "no_such_border")
	if errors.CodeOf(err) != errors.ErrCodeNotFound {
		t.Errorf("error code = %s, want %s", errors.CodeOf(err), errors.ErrCodeNotFound)
	}
}

func TestBorderSelect(t *testing.T) {
	db := setupTestDB(t)
	svc, points := newTestBorderService(db)
	user := createTestUser(t, db, "mieko")

	// Selecting a border the user never unlocked is forbidden.
	err := svc.Select(user.ID, models.BorderSakuraBloom)
	if errors.CodeOf(err) != errors.ErrCodeForbidden {
		t.Fatalf("error code = %s, want %s", errors.CodeOf(err), errors.ErrCodeForbidden)
	}

	points.AddPoints(user.ID, 100, models.TxTypeWelcomeBonus, "w", "")
	if err := svc.Purchase(user.ID, models.BorderSakuraBloom); err != nil {
		t.Fatalf("Purchase() error = %v", err)
	}
	if err := svc.Select(user.ID, models.BorderSakuraBloom); err != nil {
		t.Fatalf("Select() after purchase error = %v", err)
	}

	var fresh models.User
	if err := db.First(&fresh, user.ID).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if fresh.SelectedBorderID == nil || *fresh.SelectedBorderID != models.BorderSakuraBloom {
		t.Errorf("selected border = %v, want %s", fresh.SelectedBorderID, models.BorderSakuraBloom)
	}

	// Empty ID clears the selection.
	if err := svc.Select(user.ID, ""); err != nil {
		t.Fatalf("Select(\"\") error = %v", err)
	}
	if err := db.First(&fresh, user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if fresh.SelectedBorderID != nil {
		t.Errorf("selected border = %v after clearing, want nil", fresh.SelectedBorderID)
	}
}

func TestListForUser(t *testing.T) {
	db := setupTestDB(t)
	svc, points := newTestBorderService(db)
	user := createTestUser(t, db, "noriko")

	points.AddPoints(user.ID, 100, models.TxTypeWelcomeBonus, "w", "")
	if err := svc.Purchase(user.ID, models.BorderSakuraBloom); err != nil {
		t.Fatalf("Purchase() error = %v", err)
	}
	if err := svc.Select(user.ID, models.BorderSakuraBloom); err != nil {
		t.Fatalf("Select() error = %v", err)
	}

	views, err := svc.ListForUser(user.ID)
	if err != nil {
		t.Fatalf("ListForUser() error = %v", err)
	}
	if len(views) != 8 {
		t.Fatalf("got %d borders, want the seeded catalog of 8", len(views))
	}

	var sakura *BorderView
	for i := range views {
		if views[i].ID == models.BorderSakuraBloom {
			sakura = &views[i]
		} else if views[i].Unlocked || views[i].Selected {
			t.Errorf("border %s unexpectedly unlocked or selected", views[i].ID)
		}
	}
	if sakura == nil {
		t.Fatal("sakura_bloom missing from catalog")
	}
	if !sakura.Unlocked || !sakura.Selected || sakura.UnlockType != models.UnlockTypePurchase {
		t.Errorf("sakura_bloom = {unlocked: %v, selected: %v, type: %s}, want owned and selected",
			sakura.Unlocked, sakura.Selected, sakura.UnlockType)
	}
	if sakura.UnlockedAt == nil {
		t.Error("sakura_bloom missing unlock timestamp")
	}
}
