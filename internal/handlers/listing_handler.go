package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/matchahub/matcha_hub/internal/middleware"
	"github.com/matchahub/matcha_hub/internal/models"
	"github.com/matchahub/matcha_hub/internal/services"
	"github.com/matchahub/matcha_hub/pkg/errors"
)

type ListingHandler struct {
	listingService *services.ListingService
}

func NewListingHandler(listingService *services.ListingService) *ListingHandler {
	return &ListingHandler{listingService: listingService}
}

func listingJSON(listing *models.Listing) gin.H {
	return gin.H{
		"slug":        listing.Slug,
		"title":       listing.Title,
		"description": listing.Description,
		"category":    listing.Category,
		"price_cents": listing.PriceCents,
		"image_url":   listing.ImageURL,
		"status":      listing.Status,
		"seller":      profileJSON(&listing.Seller),
		"created_at":  listing.CreatedAt,
	}
}

type createListingRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`
	PriceCents  int64  `json:"price_cents" binding:"required"`
	ImageURL    string `json:"image_url"`
}

// Create handles POST /api/v1/marketplace/listings
func (h *ListingHandler) Create(c *gin.Context) {
	var req createListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.Wrap(err, errors.ErrCodeValidationFailed, "invalid request body"))
		return
	}

	listing, err := h.listingService.Create(middleware.UserID(c),
		req.Title, req.Description, req.Category, req.PriceCents, req.ImageURL)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, gin.H{"slug": listing.Slug})
}

// Browse handles GET /api/v1/marketplace/listings
func (h *ListingHandler) Browse(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	sellerID, _ := strconv.ParseUint(c.DefaultQuery("seller_id", "0"), 10, 64)

	listings, err := h.listingService.Browse(c.Query("category"), uint(sellerID), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]gin.H, 0, len(listings))
	for i := range listings {
		out = append(out, listingJSON(&listings[i]))
	}
	respondOK(c, gin.H{"page": page, "page_size": pageSize, "listings": out})
}

// Get handles GET /api/v1/marketplace/listings/:slug
func (h *ListingHandler) Get(c *gin.Context) {
	listing, err := h.listingService.Get(c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, listingJSON(listing))
}

// MarkSold handles POST /api/v1/marketplace/listings/:id/sold
func (h *ListingHandler) MarkSold(c *gin.Context) {
	listingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, errors.New(errors.ErrCodeValidationFailed, "invalid listing id"))
		return
	}

	if err := h.listingService.MarkSold(uint(listingID), middleware.UserID(c)); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"status": models.ListingStatusSold})
}

// Remove handles DELETE /api/v1/marketplace/listings/:id
func (h *ListingHandler) Remove(c *gin.Context) {
	listingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, errors.New(errors.ErrCodeValidationFailed, "invalid listing id"))
		return
	}

	if err := h.listingService.Remove(uint(listingID), middleware.UserID(c)); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"status": models.ListingStatusRemoved})
}
