package services

import (
	"github.com/matchahub/matcha_hub/internal/models"
	"github.com/matchahub/matcha_hub/internal/repositories"
	"github.com/matchahub/matcha_hub/internal/security"
	"github.com/matchahub/matcha_hub/pkg/errors"
)

type FeedService struct {
	feedRepo *repositories.FeedRepository
	rewards  *RewardsService
}

func NewFeedService(feedRepo *repositories.FeedRepository, rewards *RewardsService) *FeedService {
	return &FeedService{feedRepo: feedRepo, rewards: rewards}
}

// CreatePost validates and persists a feed post, then tracks the reward event.
func (s *FeedService) CreatePost(authorID uint, body, imageURL string) (*models.FeedPost, error) {
	body = security.SanitizeContent(body)
	if body == "" {
		return nil, errors.New(errors.ErrCodeValidationFailed, "body is required")
	}
	if len(body) > 4000 {
		return nil, errors.New(errors.ErrCodeValidationFailed, "body too long (max 4000 characters)")
	}
	if !security.ValidateImageURL(imageURL) {
		return nil, errors.New(errors.ErrCodeValidationFailed, "invalid image url")
	}

	post := &models.FeedPost{
		AuthorID: authorID,
		Body:     body,
		ImageURL: imageURL,
	}
	if err := s.feedRepo.CreatePost(post); err != nil {
		return nil, err
	}

	s.rewards.TrackEvent(authorID, models.EventFeedPosted)
	return post, nil
}

// ListFeed pages through the feed newest first.
func (s *FeedService) ListFeed(page, pageSize int) ([]models.FeedPost, error) {
	offset, limit := pagination(page, pageSize)
	return s.feedRepo.ListPosts(offset, limit)
}

// Like records a like; repeats are no-ops. The like-given reward event fires
// only when the like is new.
func (s *FeedService) Like(userID, postID uint) error {
	if _, err := s.feedRepo.GetPost(postID); err != nil {
		return err
	}

	liked, err := s.feedRepo.LikePost(postID, userID)
	if err != nil {
		return err
	}
	if liked {
		s.rewards.TrackEvent(userID, models.EventLikeGiven)
	}
	return nil
}

// Unlike removes a like if present.
func (s *FeedService) Unlike(userID, postID uint) error {
	return s.feedRepo.UnlikePost(postID, userID)
}
