package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	bk "github.com/pitchside/turf-booking-backend/booking"
	"github.com/pitchside/turf-booking-backend/turf"
	"github.com/pitchside/turf-booking-backend/user"
)

//go:generate mockgen -source=booking_handler.go -destination=mocks/booking_handler_mocks.go -package=mock_api

type BookingService interface {
	ListAvailableSlots(ctx context.Context, turfID string, date time.Time) ([]bk.SlotAvailability, error)
	CreateBooking(ctx context.Context, booking bk.Booking) (bk.Booking, error)
	SetBookingStatus(ctx context.Context, id string, target bk.Status, userID string) (bk.Booking, error)
	FindBookingsPerUser(ctx context.Context, userID string) ([]bk.UserBooking, error)
	FindBookingsPerTurf(ctx context.Context, turfID string) ([]bk.Booking, error)
}

type BookingHandler struct {
	service BookingService
	turfs   TurfService
}

func NewBookingHandler(service BookingService, turfs TurfService) *BookingHandler {
	return &BookingHandler{service: service, turfs: turfs}
}

// Register wires the authenticated booking routes.
func (h *BookingHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.ListMine)
	rg.POST("", h.Create)
	rg.PUT("/:id/status", h.SetStatus)
}

// RegisterTurfRoutes wires the turf-scoped read routes. They are public;
// the bookings listing is sanitized unless the requester owns the turf.
func (h *BookingHandler) RegisterTurfRoutes(rg *gin.RouterGroup) {
	rg.GET("/:id/slots", h.ListSlots)
	rg.GET("/:id/bookings", h.ListForTurf)
}

func (h *BookingHandler) ListSlots(c *gin.Context) {
	turfID := c.Param("id")

	date, err := time.Parse(time.DateOnly, c.Query("date"))

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse date"})
		return
	}

	slots, err := h.service.ListAvailableSlots(c.Request.Context(), turfID, date)

	if err != nil {
		c.Error(err)
		if errors.Is(err, turf.ErrTurfNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "turf not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve availability"})
		return
	}

	c.IndentedJSON(http.StatusOK, slots)
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	authUser := c.MustGet("user").(user.AuthUser)

	bookings, err := h.service.FindBookingsPerUser(c.Request.Context(), authUser.ID)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get bookings"})
		return
	}

	c.IndentedJSON(http.StatusOK, bookings)
}

// bookedSlot is the sanitized view of a booking exposed to requesters who do
// not own the turf.
type bookedSlot struct {
	ID        string    `json:"id"`
	TurfID    string    `json:"turfId"`
	Date      time.Time `json:"date"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Status    bk.Status `json:"status"`
	IsBooked  bool      `json:"isBooked"`
}

func (h *BookingHandler) ListForTurf(c *gin.Context) {
	turfID := c.Param("id")

	t, err := h.turfs.FindTurfByID(c.Request.Context(), turfID)

	if err != nil {
		c.Error(err)
		if errors.Is(err, turf.ErrTurfNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "turf not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch turf"})
		return
	}

	bookings, err := h.service.FindBookingsPerTurf(c.Request.Context(), turfID)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get bookings"})
		return
	}

	if authUser, ok := currentUser(c); ok && authUser.ID == t.OwnerID {
		c.IndentedJSON(http.StatusOK, bookings)
		return
	}

	sanitized := make([]bookedSlot, 0, len(bookings))

	for _, b := range bookings {
		sanitized = append(sanitized, bookedSlot{
			ID:        b.ID,
			TurfID:    b.TurfID,
			Date:      b.Date,
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
			Status:    b.Status,
			IsBooked:  true,
		})
	}

	c.IndentedJSON(http.StatusOK, sanitized)
}

type createBookingRequest struct {
	TurfID    string `json:"turfId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	authUser := c.MustGet("user").(user.AuthUser)

	var req createBookingRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse date"})
		return
	}

	inserted, err := h.service.CreateBooking(c.Request.Context(), bk.Booking{
		TurfID:    req.TurfID,
		UserID:    authUser.ID,
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})

	if err != nil {
		c.Error(err)
		switch {
		case errors.Is(err, turf.ErrTurfNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "turf not found"})
		case errors.Is(err, bk.ErrInvalidSlot):
			c.JSON(http.StatusBadRequest, gin.H{"error": "slot does not fit the turf's hours"})
		case errors.Is(err, bk.ErrSlotUnavailable):
			c.JSON(http.StatusConflict, gin.H{"error": "slot is not available"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
		}
		return
	}

	c.JSON(http.StatusCreated, inserted)
}

type setStatusRequest struct {
	Status bk.Status `json:"status"`
}

func (h *BookingHandler) SetStatus(c *gin.Context) {
	id := c.Param("id")
	authUser := c.MustGet("user").(user.AuthUser)

	var req setStatusRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	if !bk.ValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	updated, err := h.service.SetBookingStatus(c.Request.Context(), id, req.Status, authUser.ID)

	if err != nil {
		c.Error(err)
		switch {
		case errors.Is(err, bk.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		case errors.Is(err, turf.ErrTurfNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "turf not found"})
		case errors.Is(err, bk.ErrInvalidTransition):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking status transition"})
		case errors.Is(err, bk.ErrNotAllowed):
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to update this booking"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update booking status"})
		}
		return
	}

	c.IndentedJSON(http.StatusOK, updated)
}
