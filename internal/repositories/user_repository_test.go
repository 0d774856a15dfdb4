package repositories

import (
	"testing"

	"github.com/matchahub/matcha_hub/internal/models"
	"github.com/matchahub/matcha_hub/pkg/errors"
)

func TestUpdateProfile(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	user := createTestUser(t, db, "hana")

	err := repo.UpdateProfile(user.ID, map[string]interface{}{
		"display_name": "Hana the Whisk",
		"bio":          "Ceremonial grade only.",
	})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}

	got, err := repo.GetByID(user.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.DisplayName != "Hana the Whisk" {
		t.Errorf("DisplayName = %q, want %q", got.DisplayName, "Hana the Whisk")
	}
	if got.Bio != "Ceremonial grade only." {
		t.Errorf("Bio = %q, want %q", got.Bio, "Ceremonial grade only.")
	}
}

func TestUpdateProfile_UnknownUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	err := repo.UpdateProfile(9999, map[string]interface{}{"bio": "ghost"})
	if errors.CodeOf(err) != errors.ErrCodeNotFound {
		t.Errorf("UpdateProfile() error = %v, want code %s", err, errors.ErrCodeNotFound)
	}
}

func TestSetSelectedBorder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	user := createTestUser(t, db, "iroha")

	borderID := models.BorderBronzeWhisk
	if err := repo.SetSelectedBorder(user.ID, &borderID); err != nil {
		t.Fatalf("SetSelectedBorder() error = %v", err)
	}

	got, err := repo.GetByID(user.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.SelectedBorderID == nil || *got.SelectedBorderID != borderID {
		t.Errorf("SelectedBorderID = %v, want %s", got.SelectedBorderID, borderID)
	}

	// Clearing back to no border.
	if err := repo.SetSelectedBorder(user.ID, nil); err != nil {
		t.Fatalf("SetSelectedBorder(nil) error = %v", err)
	}
	got, err = repo.GetByID(user.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.SelectedBorderID != nil {
		t.Errorf("SelectedBorderID = %v, want nil", got.SelectedBorderID)
	}
}

func TestUpdateLastSeen(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	user := createTestUser(t, db, "jun")

	if err := repo.UpdateLastSeen(user.ID); err != nil {
		t.Fatalf("UpdateLastSeen() error = %v", err)
	}

	got, err := repo.GetByID(user.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.LastSeenAt == nil {
		t.Error("LastSeenAt = nil, want a timestamp")
	}
}
