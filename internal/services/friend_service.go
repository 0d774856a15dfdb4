package services

import (
	"github.com/matchahub/matcha_hub/internal/models"
	"github.com/matchahub/matcha_hub/internal/repositories"
	"github.com/matchahub/matcha_hub/pkg/errors"
)

type FriendService struct {
	friendRepo *repositories.FriendRepository
	userRepo   *repositories.UserRepository
	rewards    *RewardsService
}

func NewFriendService(
	friendRepo *repositories.FriendRepository,
	userRepo *repositories.UserRepository,
	rewards *RewardsService,
) *FriendService {
	return &FriendService{
		friendRepo: friendRepo,
		userRepo:   userRepo,
		rewards:    rewards,
	}
}

// SendRequest creates a friend request to another user.
func (s *FriendService) SendRequest(requesterID, addresseeID uint) error {
	if requesterID == addresseeID {
		return errors.New(errors.ErrCodeValidationFailed, "cannot befriend yourself")
	}
	if _, err := s.userRepo.GetByID(addresseeID); err != nil {
		return err
	}
	return s.friendRepo.SendFriendRequest(requesterID, addresseeID)
}

// AcceptRequest accepts a pending request. Both sides of the new connection
// get a friend-added reward event.
func (s *FriendService) AcceptRequest(requestID, addresseeID uint) error {
	friendship, err := s.friendRepo.AcceptFriendRequest(requestID, addresseeID)
	if err != nil {
		return err
	}

	s.rewards.TrackEvent(friendship.RequesterID, models.EventFriendAdded)
	s.rewards.TrackEvent(friendship.AddresseeID, models.EventFriendAdded)
	return nil
}

// RejectRequest rejects a pending request.
func (s *FriendService) RejectRequest(requestID, addresseeID uint) error {
	return s.friendRepo.RejectFriendRequest(requestID, addresseeID)
}

// RemoveFriend dissolves an accepted friendship.
func (s *FriendService) RemoveFriend(userID, otherID uint) error {
	return s.friendRepo.RemoveFriend(userID, otherID)
}

// ListFriends returns the user's friends.
func (s *FriendService) ListFriends(userID uint) ([]models.User, error) {
	return s.friendRepo.GetFriends(userID)
}

// ListPendingRequests returns requests awaiting the user's decision.
func (s *FriendService) ListPendingRequests(userID uint) ([]models.Friendship, error) {
	return s.friendRepo.GetPendingRequests(userID)
}
