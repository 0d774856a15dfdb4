package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/matchahub/matcha_hub/internal/middleware"
	"github.com/matchahub/matcha_hub/internal/services"
	"github.com/matchahub/matcha_hub/pkg/errors"
)

type FeedHandler struct {
	feedService *services.FeedService
}

func NewFeedHandler(feedService *services.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

type createPostRequest struct {
	Body     string `json:"body" binding:"required"`
	ImageURL string `json:"image_url"`
}

// CreatePost handles POST /api/v1/feed
func (h *FeedHandler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.Wrap(err, errors.ErrCodeValidationFailed, "invalid request body"))
		return
	}

	post, err := h.feedService.CreatePost(middleware.UserID(c), req.Body, req.ImageURL)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, gin.H{"id": post.ID})
}

// ListFeed handles GET /api/v1/feed
func (h *FeedHandler) ListFeed(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	posts, err := h.feedService.ListFeed(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]gin.H, 0, len(posts))
	for i := range posts {
		out = append(out, gin.H{
			"id":         posts[i].ID,
			"body":       posts[i].Body,
			"image_url":  posts[i].ImageURL,
			"like_count": posts[i].LikeCount,
			"author":     profileJSON(&posts[i].Author),
			"created_at": posts[i].CreatedAt,
		})
	}
	respondOK(c, gin.H{"page": page, "page_size": pageSize, "posts": out})
}

// Like handles POST /api/v1/feed/:id/like
func (h *FeedHandler) Like(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, errors.New(errors.ErrCodeValidationFailed, "invalid post id"))
		return
	}

	if err := h.feedService.Like(middleware.UserID(c), uint(postID)); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"status": "liked"})
}

// Unlike handles DELETE /api/v1/feed/:id/like
func (h *FeedHandler) Unlike(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, errors.New(errors.ErrCodeValidationFailed, "invalid post id"))
		return
	}

	if err := h.feedService.Unlike(middleware.UserID(c), uint(postID)); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"status": "unliked"})
}
