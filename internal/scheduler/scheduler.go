package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/orionbeers/planting-backend/internal/config"
)

// Purger deletes prediction records older than the cutoff.
type Purger interface {
	DeletePredictionRecordsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Scheduler runs the prediction-record retention job.
type Scheduler struct {
	cron   *cron.Cron
	purger Purger
	cfg    config.RetentionConfig
	logger *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.RetentionConfig, purger Purger, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:   cron.New(),
		purger: purger,
		cfg:    cfg,
		logger: logger,
	}
}

// Start registers the retention job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.purgeOldPredictions); err != nil {
		s.logger.Error("failed to schedule prediction retention job", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) purgeOldPredictions() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cutoff := time.Now().AddDate(0, 0, -s.cfg.MaxAgeDays)

	deleted, err := s.purger.DeletePredictionRecordsBefore(ctx, cutoff)
	if err != nil {
		s.logger.Error("prediction retention job failed", zap.Error(err))
		return
	}

	s.logger.Info("prediction retention job completed",
		zap.Time("cutoff", cutoff),
		zap.Int64("deleted", deleted))
}
