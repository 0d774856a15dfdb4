package repositories

import (
	"github.com/matchahub/matcha_hub/internal/models"
	"github.com/matchahub/matcha_hub/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FeedRepository struct {
	db *gorm.DB
}

func NewFeedRepository(db *gorm.DB) *FeedRepository {
	return &FeedRepository{db: db}
}

// CreatePost persists a new feed post
func (r *FeedRepository) CreatePost(post *models.FeedPost) error {
	if err := r.db.Create(post).Error; err != nil {
		return errors.Wrap(err, errors.ErrCodeInternalError, "failed to create post")
	}
	return nil
}

// GetPost retrieves a post with its author
func (r *FeedRepository) GetPost(postID uint) (*models.FeedPost, error) {
	var post models.FeedPost
	err := r.db.Preload("Author").First(&post, postID).Error
	if err == gorm.ErrRecordNotFound {
		return nil, errors.New(errors.ErrCodeNotFound, "post not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to get post")
	}
	return &post, nil
}

// ListPosts retrieves the feed newest first
func (r *FeedRepository) ListPosts(offset, limit int) ([]models.FeedPost, error) {
	var posts []models.FeedPost
	err := r.db.Preload("Author").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to list posts")
	}
	return posts, nil
}

// LikePost records a like and bumps the post's like counter. A repeated like
// from the same user is absorbed by the unique index and changes nothing.
// Returns whether a new like was recorded.
func (r *FeedRepository) LikePost(postID, userID uint) (bool, error) {
	var liked bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		like := &models.FeedLike{PostID: postID, UserID: userID}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(like)
		if res.Error != nil {
			return errors.Wrap(res.Error, errors.ErrCodeInternalError, "failed to create like")
		}
		if res.RowsAffected == 0 {
			return nil
		}

		upd := tx.Model(&models.FeedPost{}).
			Where("id = ?", postID).
			Update("like_count", gorm.Expr("like_count + 1"))
		if upd.Error != nil {
			return errors.Wrap(upd.Error, errors.ErrCodeInternalError, "failed to update like count")
		}
		if upd.RowsAffected == 0 {
			return errors.New(errors.ErrCodeNotFound, "post not found")
		}

		liked = true
		return nil
	})
	return liked, err
}

// UnlikePost removes a like and decrements the counter if it existed
func (r *FeedRepository) UnlikePost(postID, userID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("post_id = ? AND user_id = ?", postID, userID).
			Delete(&models.FeedLike{})
		if res.Error != nil {
			return errors.Wrap(res.Error, errors.ErrCodeInternalError, "failed to remove like")
		}
		if res.RowsAffected == 0 {
			return nil
		}

		err := tx.Model(&models.FeedPost{}).
			Where("id = ?", postID).
			Update("like_count", gorm.Expr("like_count - 1")).Error
		if err != nil {
			return errors.Wrap(err, errors.ErrCodeInternalError, "failed to update like count")
		}
		return nil
	})
}
