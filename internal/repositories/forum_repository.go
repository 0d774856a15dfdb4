package repositories

import (
	"github.com/matchahub/matcha_hub/internal/models"
	"github.com/matchahub/matcha_hub/pkg/errors"
	"gorm.io/gorm"
)

type ForumRepository struct {
	db *gorm.DB
}

func NewForumRepository(db *gorm.DB) *ForumRepository {
	return &ForumRepository{db: db}
}

// CreateThread persists a new forum thread
func (r *ForumRepository) CreateThread(thread *models.ForumThread) error {
	if err := r.db.Create(thread).Error; err != nil {
		return errors.Wrap(err, errors.ErrCodeInternalError, "failed to create thread")
	}
	return nil
}

// GetThreadBySlug retrieves a thread with its author
func (r *ForumRepository) GetThreadBySlug(slug string) (*models.ForumThread, error) {
	var thread models.ForumThread
	err := r.db.Preload("Author").Where("slug = ?", slug).First(&thread).Error
	if err == gorm.ErrRecordNotFound {
		return nil, errors.New(errors.ErrCodeNotFound, "thread not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to get thread")
	}
	return &thread, nil
}

// ListThreads retrieves threads newest first, optionally filtered by category
func (r *ForumRepository) ListThreads(category string, offset, limit int) ([]models.ForumThread, error) {
	var threads []models.ForumThread
	query := r.db.Preload("Author").Order("created_at DESC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.Offset(offset).Limit(limit).Find(&threads).Error
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to list threads")
	}
	return threads, nil
}

// CreateComment inserts a comment and bumps the thread's comment counter in
// one transaction. The counter update is a relative increment.
func (r *ForumRepository) CreateComment(comment *models.ForumComment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.ForumThread{}).
			Where("id = ?", comment.ThreadID).
			Update("comment_count", gorm.Expr("comment_count + 1"))
		if res.Error != nil {
			return errors.Wrap(res.Error, errors.ErrCodeInternalError, "failed to update comment count")
		}
		if res.RowsAffected == 0 {
			return errors.New(errors.ErrCodeNotFound, "thread not found")
		}

		if err := tx.Create(comment).Error; err != nil {
			return errors.Wrap(err, errors.ErrCodeInternalError, "failed to create comment")
		}
		return nil
	})
}

// ListComments retrieves a thread's comments oldest first
func (r *ForumRepository) ListComments(threadID uint, offset, limit int) ([]models.ForumComment, error) {
	var comments []models.ForumComment
	err := r.db.Preload("Author").
		Where("thread_id = ?", threadID).
		Order("created_at ASC").
		Offset(offset).Limit(limit).
		Find(&comments).Error
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to list comments")
	}
	return comments, nil
}
