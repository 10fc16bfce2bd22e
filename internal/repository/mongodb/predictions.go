package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/orionbeers/planting-backend/internal/domain/models"
)

// InsertPredictionRecord stores one completed pipeline run.
func (r *Repository) InsertPredictionRecord(ctx context.Context, record models.PredictionRecord) (models.PredictionRecord, error) {
	record.ID = NewDocumentID()
	record.CreatedAt = now()
	record.UpdatedAt = record.CreatedAt

	if _, err := r.collection(predictionsCollection).InsertOne(ctx, record); err != nil {
		return models.PredictionRecord{}, fmt.Errorf("insert prediction record: %w", err)
	}
	return record, nil
}

// ListPredictionRecords returns every run stored for a (user, request) pair,
// oldest first so the first record stays the canonical metadata source.
func (r *Repository) ListPredictionRecords(ctx context.Context, idUser, idRequest string) ([]models.PredictionRecord, error) {
	cursor, err := r.collection(predictionsCollection).
		Find(ctx, bson.M{"id_user": idUser, "id_request": idRequest})
	if err != nil {
		return nil, fmt.Errorf("list prediction records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.PredictionRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode prediction records: %w", err)
	}
	return records, nil
}

// DeletePredictionRecordsBefore purges runs created before the cutoff.
// Returns the number of deleted documents; zero matches is not an error here
// since the retention job runs unconditionally.
func (r *Repository) DeletePredictionRecordsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.collection(predictionsCollection).
		DeleteMany(ctx, bson.M{"created_at": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, fmt.Errorf("purge prediction records: %w", err)
	}
	return result.DeletedCount, nil
}
