package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pitchside/turf-booking-backend/user"
)

//go:generate mockgen -source=user_handler.go -destination=mocks/user_handler_mocks.go -package=mock_api

type UserService interface {
	Register(ctx context.Context, params user.RegisterParams) (user.User, string, error)
	Login(ctx context.Context, username, password string) (user.User, string, error)
}

type UserHandler struct {
	service UserService
}

func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/register", h.SignUp)
	rg.POST("/login", h.Login)
}

func (h *UserHandler) SignUp(c *gin.Context) {
	var params user.RegisterParams

	if err := c.BindJSON(&params); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	registered, token, err := h.service.Register(c.Request.Context(), params)

	if err != nil {
		c.Error(err)
		switch {
		case errors.Is(err, user.ErrInvalidUser):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, user.ErrUserExists):
			c.JSON(http.StatusConflict, gin.H{"error": "username or email already taken"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": registered, "token": token})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	logged, token, err := h.service.Login(c.Request.Context(), req.Username, req.Password)

	if err != nil {
		c.Error(err)
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log in"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": logged, "token": token})
}
