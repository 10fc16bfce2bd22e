package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/orionbeers/planting-backend/internal/domain/models"
)

// FindBaselineByCropKey returns the stored growing-condition baseline for a crop.
func (r *Repository) FindBaselineByCropKey(ctx context.Context, cropKey string) (models.CropBaseline, error) {
	var baseline models.CropBaseline
	err := r.collection(cropsCollection).
		FindOne(ctx, bson.M{"crop_key": cropKey}).
		Decode(&baseline)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.CropBaseline{}, ErrNotFound
		}
		return models.CropBaseline{}, fmt.Errorf("find crop baseline: %w", err)
	}
	return baseline, nil
}

// InsertBaseline stores a freshly synthesized crop baseline.
func (r *Repository) InsertBaseline(ctx context.Context, baseline models.CropBaseline) (models.CropBaseline, error) {
	baseline.ID = NewDocumentID()
	baseline.CreatedAt = now()
	baseline.UpdatedAt = baseline.CreatedAt

	if _, err := r.collection(cropsCollection).InsertOne(ctx, baseline); err != nil {
		return models.CropBaseline{}, fmt.Errorf("insert crop baseline: %w", err)
	}
	return baseline, nil
}
