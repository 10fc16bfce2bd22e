package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/orionbeers/planting-backend/internal/config"
	"github.com/orionbeers/planting-backend/internal/queue"
	"github.com/orionbeers/planting-backend/internal/repository/mongodb"
	"github.com/orionbeers/planting-backend/internal/scheduler"
	"github.com/orionbeers/planting-backend/internal/server/handlers"
	"github.com/orionbeers/planting-backend/internal/server/router"
	baselinesvc "github.com/orionbeers/planting-backend/internal/service/baseline"
	dashboardsvc "github.com/orionbeers/planting-backend/internal/service/dashboard"
	predictionsvc "github.com/orionbeers/planting-backend/internal/service/prediction"
	"github.com/orionbeers/planting-backend/pkg/clients/nasapower"
	"github.com/orionbeers/planting-backend/pkg/clients/openai"
	"github.com/orionbeers/planting-backend/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	repo, err := mongodb.New(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := repo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	bus, err := queue.New(context.Background(), cfg.PubSub, baseLogger.Named("queue.pubsub"))
	if err != nil {
		baseLogger.Fatal("failed to init pubsub transport", zap.Error(err))
	}
	defer func() {
		if err := bus.Close(); err != nil {
			baseLogger.Error("failed to close pubsub client", zap.Error(err))
		}
	}()

	weatherClient := nasapower.NewClient(cfg.NASA.BaseURL)
	aiClient := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model)

	baselineResolver := baselinesvc.NewResolver(repo, aiClient, baseLogger.Named("svc.baseline"))
	pipeline := predictionsvc.NewService(baselineResolver, weatherClient, aiClient, repo, bus, baseLogger.Named("svc.prediction"))
	dashboardSvc := dashboardsvc.NewService(repo, repo, baseLogger.Named("svc.dashboard"))

	userHandler := handlers.NewUserHandler(repo, baseLogger.Named("handlers.users"))
	locationHandler := handlers.NewLocationHandler(repo, baseLogger.Named("handlers.locations"))
	predictionHandler := handlers.NewPredictionHandler(bus, dashboardSvc, baseLogger.Named("handlers.prediction"))
	dashboardHandler := handlers.NewDashboardHandler(dashboardSvc, baseLogger.Named("handlers.dashboard"))

	engine := router.New(userHandler, locationHandler, predictionHandler, dashboardHandler, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Retention, repo, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		if err := bus.Listen(ctx, pipeline); err != nil {
			baseLogger.Fatal("prediction subscriber crashed", zap.Error(err))
		}
	}()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
