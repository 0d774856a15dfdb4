package repositories

import (
	"testing"

	"github.com/matchahub/matcha_hub/internal/models"
	"github.com/matchahub/matcha_hub/pkg/errors"
	"gorm.io/gorm"
)

func seedTestBorder(t *testing.T, db *gorm.DB, id string, price int64, purchasable bool) *models.Border {
	t.Helper()

	border := &models.Border{
		ID:          id,
		Name:        "Test " + id,
		Description: "test border",
		PricePoints: price,
		Purchasable: purchasable,
	}
	if err := db.Create(border).Error; err != nil {
		t.Fatalf("seed border %s: %v", id, err)
	}
	return border
}

func TestUnlock_DuplicateIsNoop(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBorderRepository(db)
	user := createTestUser(t, db, "kate")
	seedTestBorder(t, db, models.BorderBronzeWhisk, 0, false)

	if err := repo.Unlock(user.ID, models.BorderBronzeWhisk, models.UnlockTypeAchievement); err != nil {
		t.Fatalf("Unlock() error = %v", err)
	}
	if err := repo.Unlock(user.ID, models.BorderBronzeWhisk, models.UnlockTypeAchievement); err != nil {
		t.Fatalf("Unlock() duplicate error = %v", err)
	}

	var cnt int64
	db.Model(&models.BorderUnlock{}).Where("user_id = ?", user.ID).Count(&cnt)
	if cnt != 1 {
		t.Errorf("unlock rows = %d, want 1", cnt)
	}
}

func TestPurchase(t *testing.T) {
	db := setupTestDB(t)
	borders := NewBorderRepository(db)
	points := NewPointRepository(db)
	user := createTestUser(t, db, "liam")
	border := seedTestBorder(t, db, models.BorderSakuraBloom, 150, true)

	if err := points.AddPoints(user.ID, 200, models.TxTypeWelcomeBonus, "w", ""); err != nil {
		t.Fatalf("AddPoints() error = %v", err)
	}

	if err := borders.Purchase(user.ID, border, "ref-abc"); err != nil {
		t.Fatalf("Purchase() error = %v", err)
	}

	balance, _ := points.GetBalance(user.ID)
	if balance != 50 {
		t.Errorf("balance = %d, want 50", balance)
	}

	var unlock models.BorderUnlock
	if err := db.Where("user_id = ? AND border_id = ?", user.ID, border.ID).First(&unlock).Error; err != nil {
		t.Fatalf("load unlock: %v", err)
	}
	if unlock.UnlockType != models.UnlockTypePurchase {
		t.Errorf("unlock type = %s, want %s", unlock.UnlockType, models.UnlockTypePurchase)
	}
	if unlock.PricePaid == nil || *unlock.PricePaid != 150 {
		t.Errorf("price paid = %v, want 150", unlock.PricePaid)
	}

	sum, _ := points.GetLedgerSum(user.ID)
	if sum != balance {
		t.Errorf("ledger sum = %d, balance = %d; want equal", sum, balance)
	}
}

func TestPurchase_AlreadyOwnedChargesNothing(t *testing.T) {
	db := setupTestDB(t)
	borders := NewBorderRepository(db)
	points := NewPointRepository(db)
	user := createTestUser(t, db, "mona")
	border := seedTestBorder(t, db, models.BorderSakuraBloom, 150, true)

	if err := points.AddPoints(user.ID, 200, models.TxTypeWelcomeBonus, "w", ""); err != nil {
		t.Fatalf("AddPoints() error = %v", err)
	}
	if err := borders.Purchase(user.ID, border, "ref-1"); err != nil {
		t.Fatalf("Purchase() error = %v", err)
	}

	if err := borders.Purchase(user.ID, border, "ref-2"); err != nil {
		t.Fatalf("repeat Purchase() error = %v", err)
	}

	balance, _ := points.GetBalance(user.ID)
	if balance != 50 {
		t.Errorf("balance = %d after repeat purchase, want 50", balance)
	}
	var ledgerCount int64
	db.Model(&models.PointTransaction{}).
		Where("user_id = ? AND transaction_type = ?", user.ID, models.TxTypeBorderPurchase).
		Count(&ledgerCount)
	if ledgerCount != 1 {
		t.Errorf("purchase ledger entries = %d, want 1", ledgerCount)
	}
}

func TestPurchase_InsufficientRollsBackUnlock(t *testing.T) {
	db := setupTestDB(t)
	borders := NewBorderRepository(db)
	points := NewPointRepository(db)
	user := createTestUser(t, db, "nina")
	border := seedTestBorder(t, db, models.BorderKyotoSunset, 500, true)

	if err := points.AddPoints(user.ID, 100, models.TxTypeWelcomeBonus, "w", ""); err != nil {
		t.Fatalf("AddPoints() error = %v", err)
	}

	err := borders.Purchase(user.ID, border, "ref-x")
	if errors.CodeOf(err) != errors.ErrCodeInsufficientFunds {
		t.Fatalf("error code = %s, want %s", errors.CodeOf(err), errors.ErrCodeInsufficientFunds)
	}

	// The unlock insert and the debit share one transaction, so the failed
	// debit must take the unlock row down with it.
	owned, _ := borders.HasUnlock(user.ID, border.ID)
	if owned {
		t.Error("unlock row survived a failed purchase")
	}
	balance, _ := points.GetBalance(user.ID)
	if balance != 100 {
		t.Errorf("balance = %d, want 100", balance)
	}
}

func TestListUnlocks(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBorderRepository(db)
	user := createTestUser(t, db, "omar")
	seedTestBorder(t, db, models.BorderBronzeWhisk, 0, false)
	seedTestBorder(t, db, models.BorderJadeLeaf, 0, false)

	repo.Unlock(user.ID, models.BorderBronzeWhisk, models.UnlockTypeAchievement)
	repo.Unlock(user.ID, models.BorderJadeLeaf, models.UnlockTypeAdmin)

	unlocks, err := repo.ListUnlocks(user.ID)
	if err != nil {
		t.Fatalf("ListUnlocks() error = %v", err)
	}
	if len(unlocks) != 2 {
		t.Fatalf("got %d unlocks, want 2", len(unlocks))
	}
	for _, u := range unlocks {
		if u.Border.ID != u.BorderID {
			t.Errorf("unlock %s: border not preloaded", u.BorderID)
		}
	}
}

func TestGetBorder_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBorderRepository(db)

	_, err := repo.GetBorder("no_such_border")
	if errors.CodeOf(err) != errors.ErrCodeNotFound {
		t.Errorf("error code = %s, want %s", errors.CodeOf(err), errors.ErrCodeNotFound)
	}
}
