package baseline

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/orionbeers/planting-backend/internal/domain/models"
	"github.com/orionbeers/planting-backend/internal/repository/mongodb"
	"github.com/orionbeers/planting-backend/pkg/clients/openai"
)

// Store is the baseline persistence surface the resolver needs.
type Store interface {
	FindBaselineByCropKey(ctx context.Context, cropKey string) (models.CropBaseline, error)
	InsertBaseline(ctx context.Context, baseline models.CropBaseline) (models.CropBaseline, error)
}

// Synthesizer produces baselines for crops the store has never seen.
type Synthesizer interface {
	BestConditions(ctx context.Context, cropKey string) (*openai.CropConditions, error)
}

// Resolver returns the growing-condition baseline for a crop, creating it on
// first use. Repeated lookups hit the store, never the model.
type Resolver struct {
	store  Store
	ai     Synthesizer
	logger *zap.Logger
}

// NewResolver wires a new resolver instance.
func NewResolver(store Store, ai Synthesizer, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{store: store, ai: ai, logger: logger}
}

// Resolve looks up the baseline for the crop key, synthesizing and persisting
// one when absent. Two concurrent first requests may both miss and both
// insert; baselines are idempotent by crop key so the race is accepted.
func (r *Resolver) Resolve(ctx context.Context, cropKey string) (models.CropBaseline, error) {
	if cropKey == "" {
		return models.CropBaseline{}, fmt.Errorf("crop key must not be empty")
	}

	existing, err := r.store.FindBaselineByCropKey(ctx, cropKey)
	if err == nil {
		r.logger.Info("crop baseline found", zap.String("crop_key", cropKey), zap.String("id", existing.ID))
		return existing, nil
	}
	if !errors.Is(err, mongodb.ErrNotFound) {
		return models.CropBaseline{}, fmt.Errorf("lookup crop baseline: %w", err)
	}

	r.logger.Info("crop baseline missing, synthesizing", zap.String("crop_key", cropKey))

	conditions, err := r.ai.BestConditions(ctx, cropKey)
	if err != nil {
		return models.CropBaseline{}, fmt.Errorf("no baseline available for crop %s: %w", cropKey, err)
	}
	if conditions == nil {
		return models.CropBaseline{}, fmt.Errorf("no baseline available for crop %s", cropKey)
	}

	// The crop key always stays the requested one, whatever the model named it.
	created, err := r.store.InsertBaseline(ctx, models.CropBaseline{
		CropKey:           cropKey,
		CropName:          conditions.CropName,
		Temperature:       conditions.Temperature,
		Humidity:          conditions.Humidity,
		RootSoilMoisture:  conditions.RootSoilMoisture,
		TopSoilMoisture:   conditions.TopSoilMoisture,
		SoilTemperature:   conditions.SoilTemperature,
		RainPrecipitation: conditions.RainPrecipitation,
		SnowPrecipitation: conditions.SnowPrecipitation,
	})
	if err != nil {
		return models.CropBaseline{}, fmt.Errorf("persist crop baseline: %w", err)
	}

	r.logger.Info("crop baseline created", zap.String("crop_key", cropKey), zap.String("id", created.ID))
	return created, nil
}
