package dashboard

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/orionbeers/planting-backend/internal/domain/models"
	"github.com/orionbeers/planting-backend/internal/repository/mongodb"
)

// RecordLister reads the prediction runs a summary is built from.
type RecordLister interface {
	ListPredictionRecords(ctx context.Context, idUser, idRequest string) ([]models.PredictionRecord, error)
}

// SummaryStore persists and reads dashboard summaries.
type SummaryStore interface {
	InsertDashboard(ctx context.Context, summary models.DashboardSummary) (models.DashboardSummary, error)
	FindDashboard(ctx context.Context, idUser, idSummary string) (models.DashboardSummary, error)
	ListDashboardsByUser(ctx context.Context, idUser string) ([]models.DashboardSummary, error)
}

// Service builds dashboard summaries out of prediction records and serves
// read-back queries.
type Service struct {
	records   RecordLister
	summaries SummaryStore
	logger    *zap.Logger
}

// NewService wires a new dashboard service instance.
func NewService(records RecordLister, summaries SummaryStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{records: records, summaries: summaries, logger: logger}
}

// BuildSummary normalizes every prediction record for the (user, request)
// pair into a calendar-keyed summary and persists it as a new document.
func (s *Service) BuildSummary(ctx context.Context, idUser, idRequest string) (models.DashboardSummary, error) {
	records, err := s.records.ListPredictionRecords(ctx, idUser, idRequest)
	if err != nil {
		return models.DashboardSummary{}, fmt.Errorf("load prediction records: %w", err)
	}
	if len(records) == 0 {
		return models.DashboardSummary{}, fmt.Errorf("no predictions for user %s request %s: %w", idUser, idRequest, mongodb.ErrNotFound)
	}

	normalized := Normalize(records)

	summary, err := s.summaries.InsertDashboard(ctx, models.DashboardSummary{
		IDUser: normalized.IDUser,
		Crop:   normalized.Crop,
		DateRange: models.DateRange{
			StartDate: FormatMonthYear(normalized.StartDate),
			EndDate:   FormatMonthYear(normalized.EndDate),
		},
		Calendar: normalized.Calendar,
	})
	if err != nil {
		return models.DashboardSummary{}, err
	}

	s.logger.Info("dashboard summary saved",
		zap.String("id", summary.ID),
		zap.String("id_user", summary.IDUser),
		zap.Int("records", len(records)))

	return summary, nil
}

// Read returns either the single summary matching the id, with every field
// included, or all summaries for the user with the calendar projected out.
func (s *Service) Read(ctx context.Context, idUser, idSummary string) ([]models.DashboardSummary, error) {
	if idSummary != "" {
		summary, err := s.summaries.FindDashboard(ctx, idUser, idSummary)
		if err != nil {
			return nil, err
		}
		return []models.DashboardSummary{summary}, nil
	}

	return s.summaries.ListDashboardsByUser(ctx, idUser)
}
