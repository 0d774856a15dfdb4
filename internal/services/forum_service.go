package services

import (
	"strings"

	"github.com/matchahub/matcha_hub/internal/models"
	"github.com/matchahub/matcha_hub/internal/repositories"
	"github.com/matchahub/matcha_hub/internal/security"
	"github.com/matchahub/matcha_hub/pkg/errors"
	"github.com/matchahub/matcha_hub/pkg/utils"
)

type ForumService struct {
	forumRepo *repositories.ForumRepository
	rewards   *RewardsService
}

func NewForumService(forumRepo *repositories.ForumRepository, rewards *RewardsService) *ForumService {
	return &ForumService{forumRepo: forumRepo, rewards: rewards}
}

// CreateThread validates and persists a thread, then tracks the reward event.
func (s *ForumService) CreateThread(authorID uint, title, body, category string) (*models.ForumThread, error) {
	title = security.SanitizeContent(title)
	body = security.SanitizeContent(body)

	if title == "" || len(title) > 200 {
		return nil, errors.New(errors.ErrCodeValidationFailed, "title must be 1-200 characters")
	}
	if body == "" {
		return nil, errors.New(errors.ErrCodeValidationFailed, "body is required")
	}
	if !models.ValidForumCategory(category) {
		return nil, errors.New(errors.ErrCodeValidationFailed, "unknown category: "+category)
	}

	thread := &models.ForumThread{
		Slug:     utils.Slugify(title),
		AuthorID: authorID,
		Title:    title,
		Body:     body,
		Category: category,
	}
	if err := s.forumRepo.CreateThread(thread); err != nil {
		return nil, err
	}

	s.rewards.TrackEvent(authorID, models.EventThreadCreated)
	return thread, nil
}

// GetThread retrieves a thread by slug.
func (s *ForumService) GetThread(slug string) (*models.ForumThread, error) {
	return s.forumRepo.GetThreadBySlug(strings.TrimSpace(slug))
}

// ListThreads pages through threads, optionally by category.
func (s *ForumService) ListThreads(category string, page, pageSize int) ([]models.ForumThread, error) {
	if category != "" && !models.ValidForumCategory(category) {
		return nil, errors.New(errors.ErrCodeValidationFailed, "unknown category: "+category)
	}
	offset, limit := pagination(page, pageSize)
	return s.forumRepo.ListThreads(category, offset, limit)
}

// AddComment validates and persists a comment, then tracks the reward event.
func (s *ForumService) AddComment(authorID uint, threadSlug, body string) (*models.ForumComment, error) {
	body = security.SanitizeContent(body)
	if body == "" {
		return nil, errors.New(errors.ErrCodeValidationFailed, "body is required")
	}

	thread, err := s.forumRepo.GetThreadBySlug(threadSlug)
	if err != nil {
		return nil, err
	}

	comment := &models.ForumComment{
		ThreadID: thread.ID,
		AuthorID: authorID,
		Body:     body,
	}
	if err := s.forumRepo.CreateComment(comment); err != nil {
		return nil, err
	}

	s.rewards.TrackEvent(authorID, models.EventCommentPosted)
	return comment, nil
}

// ListComments pages through a thread's comments.
func (s *ForumService) ListComments(threadSlug string, page, pageSize int) ([]models.ForumComment, error) {
	thread, err := s.forumRepo.GetThreadBySlug(threadSlug)
	if err != nil {
		return nil, err
	}
	offset, limit := pagination(page, pageSize)
	return s.forumRepo.ListComments(thread.ID, offset, limit)
}

// pagination normalizes page inputs to an offset/limit pair.
func pagination(page, pageSize int) (offset, limit int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return (page - 1) * pageSize, pageSize
}
