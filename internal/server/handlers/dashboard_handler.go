package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/orionbeers/planting-backend/internal/repository/mongodb"
	"github.com/orionbeers/planting-backend/internal/service/dashboard"
)

// DashboardHandler serves dashboard read-back queries.
type DashboardHandler struct {
	dashboards *dashboard.Service
	logger     *zap.Logger
}

// NewDashboardHandler constructs the HTTP handler adapter.
func NewDashboardHandler(dashboards *dashboard.Service, logger *zap.Logger) *DashboardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardHandler{dashboards: dashboards, logger: logger}
}

// Get returns one full summary when history_id is given, otherwise the
// user's summary list with the calendar hidden.
func (h *DashboardHandler) Get(c *gin.Context) {
	idUser := c.Query("uid")
	if idUser == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "uid query parameter is required"})
		return
	}

	summaries, err := h.dashboards.Read(c.Request.Context(), idUser, c.Query("history_id"))
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "dashboard not found"})
			return
		}
		h.logger.Error("failed reading dashboard", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read dashboard"})
		return
	}

	c.JSON(http.StatusOK, summaries)
}
