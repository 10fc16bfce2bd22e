package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/orionbeers/planting-backend/internal/domain/models"
	"github.com/orionbeers/planting-backend/internal/queue"
	"github.com/orionbeers/planting-backend/internal/repository/mongodb"
	"github.com/orionbeers/planting-backend/internal/service/dashboard"
)

// PredictionHandler serves the prediction submit and result endpoints.
type PredictionHandler struct {
	publisher  queue.Publisher
	dashboards *dashboard.Service
	logger     *zap.Logger
}

// NewPredictionHandler constructs the HTTP handler adapter.
func NewPredictionHandler(publisher queue.Publisher, dashboards *dashboard.Service, logger *zap.Logger) *PredictionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PredictionHandler{publisher: publisher, dashboards: dashboards, logger: logger}
}

type startPredictionRequest struct {
	IDUser     string  `json:"id_user" binding:"required"`
	CropType   string  `json:"crop_type" binding:"required"`
	Latitude   float64 `json:"latitude" binding:"gte=-90,lte=90"`
	Longitude  float64 `json:"longitude" binding:"gte=-180,lte=180"`
	StartMonth string  `json:"start_month" binding:"required,oneof=January February March April May June July August September October November December"`
}

// Start validates the request and enqueues a prediction run. The pipeline
// itself runs in the queue consumer; the response only acknowledges intake.
func (h *PredictionHandler) Start(c *gin.Context) {
	var req startPredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid prediction payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	msg := models.PredictionMessage{
		SchemaVersion:       models.MessageSchemaVersion,
		IDUser:              req.IDUser,
		IDRequest:           uuid.NewString(),
		Latitude:            req.Latitude,
		Longitude:           req.Longitude,
		CropType:            req.CropType,
		StartMonth:          req.StartMonth,
		PredictionDays:      "full",
		ContinueToNextMonth: true,
	}

	if err := h.publisher.PublishPrediction(c.Request.Context(), msg); err != nil {
		h.logger.Error("failed publishing prediction request", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to start prediction"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"message": "prediction started", "id_request": msg.IDRequest})
}

// Result normalizes the stored prediction records for a (user, request) pair
// into a new dashboard summary and returns it.
func (h *PredictionHandler) Result(c *gin.Context) {
	idUser := c.Query("id_user")
	idRequest := c.Query("id_request")
	if idUser == "" || idRequest == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id_user and id_request query parameters are required"})
		return
	}

	summary, err := h.dashboards.BuildSummary(c.Request.Context(), idUser, idRequest)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed building prediction result", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build prediction result"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
