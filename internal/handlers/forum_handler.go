package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/matchahub/matcha_hub/internal/middleware"
	"github.com/matchahub/matcha_hub/internal/models"
	"github.com/matchahub/matcha_hub/internal/services"
	"github.com/matchahub/matcha_hub/pkg/errors"
)

type ForumHandler struct {
	forumService *services.ForumService
}

func NewForumHandler(forumService *services.ForumService) *ForumHandler {
	return &ForumHandler{forumService: forumService}
}

func threadJSON(thread *models.ForumThread) gin.H {
	return gin.H{
		"slug":          thread.Slug,
		"title":         thread.Title,
		"body":          thread.Body,
		"category":      thread.Category,
		"comment_count": thread.CommentCount,
		"author":        profileJSON(&thread.Author),
		"created_at":    thread.CreatedAt,
	}
}

type createThreadRequest struct {
	Title    string `json:"title" binding:"required"`
	Body     string `json:"body" binding:"required"`
	Category string `json:"category" binding:"required"`
}

// CreateThread handles POST /api/v1/forum/threads
func (h *ForumHandler) CreateThread(c *gin.Context) {
	var req createThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.Wrap(err, errors.ErrCodeValidationFailed, "invalid request body"))
		return
	}

	thread, err := h.forumService.CreateThread(middleware.UserID(c), req.Title, req.Body, req.Category)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, gin.H{"slug": thread.Slug})
}

// ListThreads handles GET /api/v1/forum/threads
func (h *ForumHandler) ListThreads(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	threads, err := h.forumService.ListThreads(c.Query("category"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]gin.H, 0, len(threads))
	for i := range threads {
		out = append(out, threadJSON(&threads[i]))
	}
	respondOK(c, gin.H{"page": page, "page_size": pageSize, "threads": out})
}

// GetThread handles GET /api/v1/forum/threads/:slug
func (h *ForumHandler) GetThread(c *gin.Context) {
	thread, err := h.forumService.GetThread(c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, threadJSON(thread))
}

type createCommentRequest struct {
	Body string `json:"body" binding:"required"`
}

// AddComment handles POST /api/v1/forum/threads/:slug/comments
func (h *ForumHandler) AddComment(c *gin.Context) {
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.Wrap(err, errors.ErrCodeValidationFailed, "invalid request body"))
		return
	}

	comment, err := h.forumService.AddComment(middleware.UserID(c), c.Param("slug"), req.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, gin.H{"id": comment.ID})
}

// ListComments handles GET /api/v1/forum/threads/:slug/comments
func (h *ForumHandler) ListComments(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	comments, err := h.forumService.ListComments(c.Param("slug"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]gin.H, 0, len(comments))
	for i := range comments {
		out = append(out, gin.H{
			"id":         comments[i].ID,
			"body":       comments[i].Body,
			"author":     profileJSON(&comments[i].Author),
			"created_at": comments[i].CreatedAt,
		})
	}
	respondOK(c, gin.H{"page": page, "page_size": pageSize, "comments": out})
}
