package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pitchside/turf-booking-backend/turf"
	"github.com/pitchside/turf-booking-backend/user"
)

//go:generate mockgen -source=turf_handler.go -destination=mocks/turf_handler_mocks.go -package=mock_api

type TurfService interface {
	GetTurfs(ctx context.Context) ([]turf.Turf, error)
	FindTurfByID(ctx context.Context, id string) (turf.Turf, error)
	FindTurfsPerOwner(ctx context.Context, ownerID string) ([]turf.Turf, error)
	CreateTurf(ctx context.Context, t turf.Turf, ownerID string) (turf.Turf, error)
	ModifyTurf(ctx context.Context, updated turf.Turf, userID string) (turf.Turf, error)
	DeleteTurf(ctx context.Context, id, userID string) error
}

type TurfHandler struct {
	service TurfService
}

func NewTurfHandler(service TurfService) *TurfHandler {
	return &TurfHandler{service: service}
}

// Register wires the turf routes; mutations require an authenticated owner.
func (h *TurfHandler) Register(rg *gin.RouterGroup, auth gin.HandlerFunc) {
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
	rg.POST("", auth, OwnerOnly(), h.Create)
	rg.PUT("/:id", auth, h.Modify)
	rg.DELETE("/:id", auth, h.Delete)
}

// RegisterUserRoutes wires the owner-scoped listing under /users.
func (h *TurfHandler) RegisterUserRoutes(rg *gin.RouterGroup) {
	rg.GET("/:id/turfs", h.ListPerOwner)
}

func (h *TurfHandler) List(c *gin.Context) {
	if turfs, err := h.service.GetTurfs(c.Request.Context()); err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve turfs"})
	} else {
		c.IndentedJSON(http.StatusOK, turfs)
	}
}

func (h *TurfHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	t, err := h.service.FindTurfByID(c.Request.Context(), id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, turf.ErrTurfNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "turf not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch turf"})
		return
	}

	c.IndentedJSON(http.StatusOK, t)
}

func (h *TurfHandler) ListPerOwner(c *gin.Context) {
	ownerID := c.Param("id")
	turfs, err := h.service.FindTurfsPerOwner(c.Request.Context(), ownerID)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get turfs"})
		return
	}

	c.IndentedJSON(http.StatusOK, turfs)
}

func (h *TurfHandler) Create(c *gin.Context) {
	authUser := c.MustGet("user").(user.AuthUser)

	var t turf.Turf

	if err := c.BindJSON(&t); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	inserted, err := h.service.CreateTurf(c.Request.Context(), t, authUser.ID)

	if err != nil {
		c.Error(err)
		if errors.Is(err, turf.ErrInvalidTurf) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create turf"})
		return
	}

	c.JSON(http.StatusCreated, inserted)
}

func (h *TurfHandler) Modify(c *gin.Context) {
	authUser := c.MustGet("user").(user.AuthUser)

	var t turf.Turf

	if err := c.BindJSON(&t); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	t.ID = c.Param("id")

	updated, err := h.service.ModifyTurf(c.Request.Context(), t, authUser.ID)

	if err != nil {
		c.Error(err)
		switch {
		case errors.Is(err, turf.ErrTurfNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "turf not found"})
		case errors.Is(err, turf.ErrNotAllowed):
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to modify this turf"})
		case errors.Is(err, turf.ErrInvalidTurf):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to modify turf"})
		}
		return
	}

	c.IndentedJSON(http.StatusOK, updated)
}

func (h *TurfHandler) Delete(c *gin.Context) {
	authUser := c.MustGet("user").(user.AuthUser)
	id := c.Param("id")

	err := h.service.DeleteTurf(c.Request.Context(), id, authUser.ID)

	if err != nil {
		c.Error(err)
		switch {
		case errors.Is(err, turf.ErrTurfNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "turf not found"})
		case errors.Is(err, turf.ErrNotAllowed):
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to delete this turf"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete turf"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
