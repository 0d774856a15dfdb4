package services

import (
	"testing"

	"github.com/matchahub/matcha_hub/internal/models"
	"github.com/matchahub/matcha_hub/internal/repositories"
	"github.com/matchahub/matcha_hub/pkg/errors"
	"gorm.io/gorm"
)

func newTestMessageService(db *gorm.DB) (*MessageService, *FriendService) {
	rewards, _ := newTestRewardsService(db)
	friendRepo := repositories.NewFriendRepository(db)
	messages := NewMessageService(repositories.NewMessageRepository(db), friendRepo, rewards)
	friends := NewFriendService(friendRepo, repositories.NewUserRepository(db), rewards)
	return messages, friends
}

func makeFriends(t *testing.T, friends *FriendService, a, b uint) {
	t.Helper()
	if err := friends.SendRequest(a, b); err != nil {
		t.Fatalf("SendRequest() error = %v", err)
	}
	pending, err := friends.ListPendingRequests(b)
	if err != nil || len(pending) == 0 {
		t.Fatalf("ListPendingRequests() = (%v, %v)", pending, err)
	}
	if err := friends.AcceptRequest(pending[0].ID, b); err != nil {
		t.Fatalf("AcceptRequest() error = %v", err)
	}
}

func TestSendMessage_FriendGated(t *testing.T) {
	db := setupTestDB(t)
	messages, friends := newTestMessageService(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	// Strangers cannot message each other.
	_, err := messages.Send(alice.ID, bob.ID, "hello")
	if errors.CodeOf(err) != errors.ErrCodeForbidden {
		t.Fatalf("error code = %s, want %s", errors.CodeOf(err), errors.ErrCodeForbidden)
	}

	makeFriends(t, friends, alice.ID, bob.ID)

	msg, err := messages.Send(alice.ID, bob.ID, "hello bob")
	if err != nil {
		t.Fatalf("Send() after befriending error = %v", err)
	}
	if msg.ReadAt != nil {
		t.Error("new message already marked read")
	}

	// The sender's message-sent counter moved.
	var row models.UserAchievement
	err = db.Where("user_id = ? AND achievement_type = ?", alice.ID, models.AchievementFirstMessage).First(&row).Error
	if err != nil {
		t.Fatalf("load first_message: %v", err)
	}
	if !row.Completed {
		t.Error("first_message not completed")
	}
}

func TestSendMessage_Validation(t *testing.T) {
	db := setupTestDB(t)
	messages, _ := newTestMessageService(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	if _, err := messages.Send(alice.ID, alice.ID, "hi me"); errors.CodeOf(err) != errors.ErrCodeValidationFailed {
		t.Errorf("self-message error code = %s, want %s", errors.CodeOf(err), errors.ErrCodeValidationFailed)
	}
	if _, err := messages.Send(alice.ID, bob.ID, "   "); errors.CodeOf(err) != errors.ErrCodeValidationFailed {
		t.Errorf("empty body error code = %s, want %s", errors.CodeOf(err), errors.ErrCodeValidationFailed)
	}
}

func TestConversationAndUnread(t *testing.T) {
	db := setupTestDB(t)
	messages, friends := newTestMessageService(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	makeFriends(t, friends, alice.ID, bob.ID)

	if _, err := messages.Send(alice.ID, bob.ID, "first"); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if _, err := messages.Send(alice.ID, bob.ID, "second"); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if _, err := messages.Send(bob.ID, alice.ID, "reply"); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	unread, err := messages.UnreadCount(bob.ID)
	if err != nil {
		t.Fatalf("UnreadCount() error = %v", err)
	}
	if unread != 2 {
		t.Errorf("bob's unread = %d, want 2", unread)
	}

	// Reading the conversation returns both directions and clears bob's
	// unread counter.
	conversation, err := messages.GetConversation(bob.ID, alice.ID, 1, 50)
	if err != nil {
		t.Fatalf("GetConversation() error = %v", err)
	}
	if len(conversation) != 3 {
		t.Errorf("conversation = %d messages, want 3", len(conversation))
	}

	unread, _ = messages.UnreadCount(bob.ID)
	if unread != 0 {
		t.Errorf("bob's unread after reading = %d, want 0", unread)
	}
	unread, _ = messages.UnreadCount(alice.ID)
	if unread != 1 {
		t.Errorf("alice's unread = %d, want 1", unread)
	}
}
