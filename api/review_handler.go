package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pitchside/turf-booking-backend/review"
	"github.com/pitchside/turf-booking-backend/turf"
	"github.com/pitchside/turf-booking-backend/user"
)

//go:generate mockgen -source=review_handler.go -destination=mocks/review_handler_mocks.go -package=mock_api

type ReviewService interface {
	AddReview(ctx context.Context, r review.Review, userID string) (review.Review, error)
	FindReviewsPerTurf(ctx context.Context, turfID string) ([]review.Review, error)
}

type ReviewHandler struct {
	service ReviewService
}

func NewReviewHandler(service ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

func (h *ReviewHandler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
}

func (h *ReviewHandler) RegisterTurfRoutes(rg *gin.RouterGroup) {
	rg.GET("/:id/reviews", h.ListForTurf)
}

func (h *ReviewHandler) ListForTurf(c *gin.Context) {
	turfID := c.Param("id")

	reviews, err := h.service.FindReviewsPerTurf(c.Request.Context(), turfID)

	if err != nil {
		c.Error(err)
		if errors.Is(err, turf.ErrTurfNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "turf not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get reviews"})
		return
	}

	c.IndentedJSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) Create(c *gin.Context) {
	authUser := c.MustGet("user").(user.AuthUser)

	var r review.Review

	if err := c.BindJSON(&r); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	inserted, err := h.service.AddReview(c.Request.Context(), r, authUser.ID)

	if err != nil {
		c.Error(err)
		switch {
		case errors.Is(err, turf.ErrTurfNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "turf not found"})
		case errors.Is(err, review.ErrInvalidRating):
			c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be between 1 and 5"})
		case errors.Is(err, review.ErrReviewExists):
			c.JSON(http.StatusConflict, gin.H{"error": "turf already reviewed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create review"})
		}
		return
	}

	c.JSON(http.StatusCreated, inserted)
}
