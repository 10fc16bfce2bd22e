package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/orionbeers/planting-backend/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(users *handlers.UserHandler, locations *handlers.LocationHandler, predictions *handlers.PredictionHandler, dashboards *handlers.DashboardHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/users", users.Get)
	r.POST("/users", users.Create)
	r.PATCH("/users", users.Update)

	r.GET("/locations", locations.Get)
	r.POST("/locations", locations.Create)
	r.DELETE("/locations", locations.Delete)

	r.GET("/prediction", predictions.Result)
	r.POST("/prediction", predictions.Start)

	r.GET("/dashboard", dashboards.Get)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
