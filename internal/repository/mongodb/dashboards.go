package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/orionbeers/planting-backend/internal/domain/models"
)

// dashboardListProjection is the explicit field selection used when listing
// summaries. The calendar payload is large and only needed when a single
// summary is fetched by id.
var dashboardListProjection = bson.D{{Key: "calendar", Value: 0}}

// InsertDashboard stores a new dashboard summary and returns it with its
// generated id. Summaries are never updated in place.
func (r *Repository) InsertDashboard(ctx context.Context, summary models.DashboardSummary) (models.DashboardSummary, error) {
	summary.ID = NewDocumentID()
	summary.CreatedAt = now()
	summary.UpdatedAt = summary.CreatedAt

	if _, err := r.collection(dashboardsCollection).InsertOne(ctx, summary); err != nil {
		return models.DashboardSummary{}, fmt.Errorf("insert dashboard summary: %w", err)
	}
	return summary, nil
}

// FindDashboard returns one summary owned by the user, all fields included.
func (r *Repository) FindDashboard(ctx context.Context, idUser, idSummary string) (models.DashboardSummary, error) {
	var summary models.DashboardSummary
	err := r.collection(dashboardsCollection).
		FindOne(ctx, bson.M{"_id": idSummary, "id_user": idUser}).
		Decode(&summary)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.DashboardSummary{}, ErrNotFound
		}
		return models.DashboardSummary{}, fmt.Errorf("find dashboard summary: %w", err)
	}
	return summary, nil
}

// ListDashboardsByUser returns every summary for a user with the calendar
// field projected out.
func (r *Repository) ListDashboardsByUser(ctx context.Context, idUser string) ([]models.DashboardSummary, error) {
	opts := options.Find().SetProjection(dashboardListProjection)
	cursor, err := r.collection(dashboardsCollection).Find(ctx, bson.M{"id_user": idUser}, opts)
	if err != nil {
		return nil, fmt.Errorf("list dashboard summaries: %w", err)
	}
	defer cursor.Close(ctx)

	var summaries []models.DashboardSummary
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, fmt.Errorf("decode dashboard summaries: %w", err)
	}
	return summaries, nil
}
