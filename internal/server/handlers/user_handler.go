package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/orionbeers/planting-backend/internal/domain/models"
	"github.com/orionbeers/planting-backend/internal/repository/mongodb"
)

// UserStore is the persistence surface the user endpoints need.
type UserStore interface {
	InsertUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	UpdateUserByEmail(ctx context.Context, email string, update models.UserUpdate) error
}

// UserHandler serves the user CRUD endpoints.
type UserHandler struct {
	store  UserStore
	logger *zap.Logger
}

// NewUserHandler constructs the HTTP handler adapter.
func NewUserHandler(store UserStore, logger *zap.Logger) *UserHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserHandler{store: store, logger: logger}
}

type createUserRequest struct {
	Email  string `json:"email" binding:"required,email"`
	Name   string `json:"name" binding:"required"`
	UID    string `json:"uid" binding:"required"`
	Avatar string `json:"avatar"`
}

type updateUserRequest struct {
	Email  string  `json:"email" binding:"required,email"`
	Name   *string `json:"name"`
	Avatar *string `json:"avatar"`
}

// Get returns the user matching the email query parameter.
func (h *UserHandler) Get(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email query parameter is required"})
		return
	}

	user, err := h.store.FindUserByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		h.logger.Error("failed loading user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load user"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// Create registers a new user.
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid user payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.store.InsertUser(c.Request.Context(), models.User{
		Email:    req.Email,
		Name:     req.Name,
		Avatar:   req.Avatar,
		IDGoogle: req.UID,
	})
	if err != nil {
		h.logger.Error("failed creating user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Update patches the mutable profile fields of an existing user. An update
// that touches nothing is an error, never a silent success.
func (h *UserHandler) Update(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid user update payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := h.store.UpdateUserByEmail(c.Request.Context(), req.Email, models.UserUpdate{
		Name:   req.Name,
		Avatar: req.Avatar,
	})
	if err != nil {
		switch {
		case errors.Is(err, mongodb.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, mongodb.ErrNoChanges):
			c.JSON(http.StatusNotFound, gin.H{"error": "no changes applied"})
		default:
			h.logger.Error("failed updating user", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user"})
		}
		return
	}

	user, err := h.store.FindUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		h.logger.Error("failed reloading user after update", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load user"})
		return
	}

	c.JSON(http.StatusOK, user)
}
