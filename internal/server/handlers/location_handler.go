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

// LocationStore is the persistence surface the location endpoints need.
type LocationStore interface {
	InsertLocation(ctx context.Context, location models.Location) (models.Location, error)
	FindLocation(ctx context.Context, idUser, idLocation string) (models.Location, error)
	ListLocationsByUser(ctx context.Context, idUser string) ([]models.Location, error)
	DeleteLocation(ctx context.Context, idUser, idLocation string) error
}

// LocationHandler serves the saved-location endpoints.
type LocationHandler struct {
	store  LocationStore
	logger *zap.Logger
}

// NewLocationHandler constructs the HTTP handler adapter.
func NewLocationHandler(store LocationStore, logger *zap.Logger) *LocationHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LocationHandler{store: store, logger: logger}
}

type createLocationRequest struct {
	DisplayName string  `json:"display_name" binding:"required"`
	Latitude    float64 `json:"latitude" binding:"gte=-90,lte=90"`
	Longitude   float64 `json:"longitude" binding:"gte=-180,lte=180"`
	IDUser      string  `json:"id_user" binding:"required"`
}

// Get returns one location when location_id is given, otherwise every
// location the user has saved.
func (h *LocationHandler) Get(c *gin.Context) {
	idUser := c.Query("id_user")
	if idUser == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id_user query parameter is required"})
		return
	}

	if idLocation := c.Query("location_id"); idLocation != "" {
		location, err := h.store.FindLocation(c.Request.Context(), idUser, idLocation)
		if err != nil {
			if errors.Is(err, mongodb.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
				return
			}
			h.logger.Error("failed loading location", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load location"})
			return
		}
		c.JSON(http.StatusOK, location)
		return
	}

	locations, err := h.store.ListLocationsByUser(c.Request.Context(), idUser)
	if err != nil {
		h.logger.Error("failed listing locations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list locations"})
		return
	}
	if len(locations) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
		return
	}

	c.JSON(http.StatusOK, locations)
}

// Create saves a new location for a user.
func (h *LocationHandler) Create(c *gin.Context) {
	var req createLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid location payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	location, err := h.store.InsertLocation(c.Request.Context(), models.Location{
		DisplayName: req.DisplayName,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		IDUser:      req.IDUser,
	})
	if err != nil {
		h.logger.Error("failed creating location", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create location"})
		return
	}

	c.JSON(http.StatusCreated, location)
}

// Delete removes one location owned by the user.
func (h *LocationHandler) Delete(c *gin.Context) {
	idUser := c.Query("id_user")
	idLocation := c.Query("id_location")
	if idUser == "" || idLocation == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id_user and id_location query parameters are required"})
		return
	}

	if err := h.store.DeleteLocation(c.Request.Context(), idUser, idLocation); err != nil {
		if errors.Is(err, mongodb.ErrNoChanges) {
			c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
			return
		}
		h.logger.Error("failed deleting location", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete location"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "location deleted"})
}
