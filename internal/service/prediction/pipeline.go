package prediction

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/orionbeers/planting-backend/internal/domain/models"
	"github.com/orionbeers/planting-backend/pkg/clients/nasapower"
	"github.com/orionbeers/planting-backend/pkg/clients/openai"
)

const dateLayout = "20060102"

// continuationEnabled guards the experimental multi-month path. The message
// fields exist on the wire but re-publishing stays off until the product
// decides how far a run should extend.
const continuationEnabled = false

// BaselineResolver returns the growing-condition baseline for a crop.
type BaselineResolver interface {
	Resolve(ctx context.Context, cropKey string) (models.CropBaseline, error)
}

// Forecaster is the LLM delegate producing the scored daily forecast.
type Forecaster interface {
	MonthForecast(ctx context.Context, req openai.ForecastRequest) ([]models.ForecastDay, error)
}

// RecordStore persists completed pipeline runs.
type RecordStore interface {
	InsertPredictionRecord(ctx context.Context, record models.PredictionRecord) (models.PredictionRecord, error)
}

// Republisher re-enqueues continuation messages for the next month.
type Republisher interface {
	PublishPrediction(ctx context.Context, msg models.PredictionMessage) error
}

// Service runs the prediction pipeline for queue messages:
// fetch historical data, filter by month, delegate forecast+scoring, persist.
// Each message is one fresh, synchronous pass; nothing is retried.
type Service struct {
	baselines BaselineResolver
	weather   nasapower.Client
	ai        Forecaster
	records   RecordStore
	publisher Republisher
	logger    *zap.Logger
}

// NewService wires a new pipeline service instance.
func NewService(baselines BaselineResolver, weather nasapower.Client, ai Forecaster, records RecordStore, publisher Republisher, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		baselines: baselines,
		weather:   weather,
		ai:        ai,
		records:   records,
		publisher: publisher,
		logger:    logger,
	}
}

// LookbackRange computes the fixed five-full-year historical window ending
// December 31st of last year: [current year - 6 .. current year - 1].
func LookbackRange(now time.Time) (startDate, endDate string) {
	startDate = fmt.Sprintf("%d0101", now.Year()-6)
	endDate = fmt.Sprintf("%d1231", now.Year()-1)
	return startDate, endDate
}

// HandlePredictionMessage executes one full pipeline run. On any failure the
// run aborts without writing a record; an already-created baseline stays
// persisted, which is fine since baselines are idempotent by crop key.
func (s *Service) HandlePredictionMessage(ctx context.Context, msg models.PredictionMessage) error {
	log := s.logger.With(
		zap.String("id_user", msg.IDUser),
		zap.String("id_request", msg.IDRequest),
		zap.String("crop", msg.CropType),
		zap.String("start_month", msg.StartMonth))

	log.Info("prediction run started")

	crop, err := s.baselines.Resolve(ctx, msg.CropType)
	if err != nil {
		return err
	}

	if _, ok := MonthNumber(msg.StartMonth); !ok {
		return fmt.Errorf("unknown start month %q", msg.StartMonth)
	}

	nowTime := time.Now()
	startDate, endDate := LookbackRange(nowTime)

	log.Info("fetching historical data",
		zap.String("start_date", startDate),
		zap.String("end_date", endDate))

	dataset, err := s.weather.FetchDailyData(ctx, nasapower.DailyDataRequest{
		Latitude:  msg.Latitude,
		Longitude: msg.Longitude,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		return fmt.Errorf("historical data fetch failed: %w", err)
	}

	filtered := FilterDatasetByMonth(dataset, msg.StartMonth)
	if DatasetIsEmpty(filtered) {
		return fmt.Errorf("no historical data for month %q in window %s..%s", msg.StartMonth, startDate, endDate)
	}

	datasetJSON, err := json.Marshal(filtered)
	if err != nil {
		return fmt.Errorf("encode filtered dataset: %w", err)
	}

	monthNumber, _ := MonthNumber(msg.StartMonth)
	forecast, err := s.ai.MonthForecast(ctx, openai.ForecastRequest{
		Baseline:    crop,
		DatasetJSON: datasetJSON,
		MonthNumber: monthNumber,
		Year:        nowTime.Year(),
	})
	if err != nil {
		return fmt.Errorf("forecast delegate failed: %w", err)
	}

	forecast = normalizeStatuses(crop, forecast)

	record := models.PredictionRecord{
		IDUser:        msg.IDUser,
		IDRequest:     msg.IDRequest,
		Latitude:      msg.Latitude,
		Longitude:     msg.Longitude,
		StartDate:     mustParseDate(startDate),
		EndDate:       mustParseDate(endDate),
		CropType:      msg.CropType,
		BestCondition: crop,
		Timestamps:    forecast,
		StepBlock:     stepBlock(msg.PredictionDays),
	}

	stored, err := s.records.InsertPredictionRecord(ctx, record)
	if err != nil {
		return fmt.Errorf("persist prediction record: %w", err)
	}

	log.Info("prediction run completed",
		zap.String("record_id", stored.ID),
		zap.Int("forecast_days", len(forecast)))

	if continuationEnabled && msg.ContinueToNextMonth {
		next := msg
		next.StartMonth = NextMonth(msg.StartMonth)
		next.PredictionDays = "half"
		next.ContinueToNextMonth = false
		if err := s.publisher.PublishPrediction(ctx, next); err != nil {
			log.Error("failed to enqueue continuation", zap.Error(err))
		}
	}

	return nil
}

// normalizeStatuses clamps every delegate-provided status to [0,1] rounded to
// two decimals, recomputing it locally when the model left it out.
func normalizeStatuses(crop models.CropBaseline, forecast []models.ForecastDay) []models.ForecastDay {
	for i := range forecast {
		if forecast[i].Status <= 0 {
			forecast[i].Status = SuitabilityStatus(crop, forecast[i].PredictionData)
			continue
		}
		forecast[i].Status = ClampStatus(forecast[i].Status)
	}
	return forecast
}

func stepBlock(predictionDays string) int {
	if predictionDays == "half" {
		return 1
	}
	return 0
}

func mustParseDate(value string) time.Time {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}
	}
	return t
}
