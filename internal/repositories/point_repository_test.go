package repositories

import (
	"testing"

	"github.com/matchahub/matcha_hub/internal/models"
	"github.com/matchahub/matcha_hub/pkg/errors"
)

func TestAddPoints_BalanceMatchesLedger(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPointRepository(db)
	user := createTestUser(t, db, "grace")

	credits := []int64{25, 10, 40}
	for _, amount := range credits {
		if err := repo.AddPoints(user.ID, amount, models.TxTypeAchievementReward, "test credit", ""); err != nil {
			t.Fatalf("AddPoints(%d) error = %v", amount, err)
		}
	}

	balance, err := repo.GetBalance(user.ID)
	if err != nil {
		t.Fatalf("GetBalance() error = %v", err)
	}
	if balance != 75 {
		t.Errorf("balance = %d, want 75", balance)
	}

	sum, err := repo.GetLedgerSum(user.ID)
	if err != nil {
		t.Fatalf("GetLedgerSum() error = %v", err)
	}
	if sum != balance {
		t.Errorf("ledger sum = %d, balance = %d; want equal", sum, balance)
	}
}

func TestDeductPoints(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPointRepository(db)
	user := createTestUser(t, db, "heidi")

	if err := repo.AddPoints(user.ID, 100, models.TxTypeWelcomeBonus, "welcome", ""); err != nil {
		t.Fatalf("AddPoints() error = %v", err)
	}

	if err := repo.DeductPoints(user.ID, 60, models.TxTypeBorderPurchase, "border", "ref-1"); err != nil {
		t.Fatalf("DeductPoints(60) error = %v", err)
	}

	balance, err := repo.GetBalance(user.ID)
	if err != nil {
		t.Fatalf("GetBalance() error = %v", err)
	}
	if balance != 40 {
		t.Errorf("balance = %d, want 40", balance)
	}

	sum, _ := repo.GetLedgerSum(user.ID)
	if sum != 40 {
		t.Errorf("ledger sum = %d, want 40", sum)
	}
}

func TestDeductPoints_Insufficient(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPointRepository(db)
	user := createTestUser(t, db, "ivan")

	if err := repo.AddPoints(user.ID, 30, models.TxTypeWelcomeBonus, "welcome", ""); err != nil {
		t.Fatalf("AddPoints() error = %v", err)
	}

	err := repo.DeductPoints(user.ID, 50, models.TxTypeBorderPurchase, "border", "")
	if err == nil {
		t.Fatal("DeductPoints() expected error, got nil")
	}
	if errors.CodeOf(err) != errors.ErrCodeInsufficientFunds {
		t.Errorf("error code = %s, want %s", errors.CodeOf(err), errors.ErrCodeInsufficientFunds)
	}

	// A failed spend must leave both the balance and the ledger untouched.
	balance, _ := repo.GetBalance(user.ID)
	if balance != 30 {
		t.Errorf("balance = %d, want 30", balance)
	}
	var ledgerCount int64
	db.Model(&models.PointTransaction{}).Where("user_id = ?", user.ID).Count(&ledgerCount)
	if ledgerCount != 1 {
		t.Errorf("ledger entries = %d, want 1", ledgerCount)
	}
}

func TestDeductPoints_UnknownUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPointRepository(db)

	err := repo.DeductPoints(9999, 10, models.TxTypeBorderPurchase, "border", "")
	if errors.CodeOf(err) != errors.ErrCodeNotFound {
		t.Errorf("error code = %s, want %s", errors.CodeOf(err), errors.ErrCodeNotFound)
	}
}

func TestGetTransactionHistory_NewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPointRepository(db)
	user := createTestUser(t, db, "judy")

	if err := repo.AddPoints(user.ID, 25, models.TxTypeWelcomeBonus, "welcome", ""); err != nil {
		t.Fatalf("AddPoints() error = %v", err)
	}
	if err := repo.AddPoints(user.ID, 10, models.TxTypeAchievementReward, "reward", ""); err != nil {
		t.Fatalf("AddPoints() error = %v", err)
	}

	history, err := repo.GetTransactionHistory(user.ID, 50)
	if err != nil {
		t.Fatalf("GetTransactionHistory() error = %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("got %d entries, want 2", len(history))
	}
	for i := 1; i < len(history); i++ {
		if history[i].CreatedAt.After(history[i-1].CreatedAt) {
			t.Errorf("history not ordered newest first at index %d", i)
		}
	}
}

func TestGetTopUsers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPointRepository(db)

	low := createTestUser(t, db, "low_scorer")
	high := createTestUser(t, db, "high_scorer")
	mid := createTestUser(t, db, "mid_scorer")

	repo.AddPoints(low.ID, 10, models.TxTypeWelcomeBonus, "w", "")
	repo.AddPoints(high.ID, 300, models.TxTypeWelcomeBonus, "w", "")
	repo.AddPoints(mid.ID, 120, models.TxTypeWelcomeBonus, "w", "")

	top, err := repo.GetTopUsers(2)
	if err != nil {
		t.Fatalf("GetTopUsers() error = %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("got %d users, want 2", len(top))
	}
	if top[0].ID != high.ID || top[1].ID != mid.ID {
		t.Errorf("top order = [%s, %s], want [high_scorer, mid_scorer]", top[0].Username, top[1].Username)
	}
}
