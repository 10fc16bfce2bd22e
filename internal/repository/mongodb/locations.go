package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/orionbeers/planting-backend/internal/domain/models"
)

// InsertLocation stores a new saved location for a user.
func (r *Repository) InsertLocation(ctx context.Context, location models.Location) (models.Location, error) {
	location.ID = NewDocumentID()
	location.CreatedAt = now()
	location.UpdatedAt = location.CreatedAt

	if _, err := r.collection(locationsCollection).InsertOne(ctx, location); err != nil {
		return models.Location{}, fmt.Errorf("insert location: %w", err)
	}
	return location, nil
}

// FindLocation returns one location owned by the given user.
func (r *Repository) FindLocation(ctx context.Context, idUser, idLocation string) (models.Location, error) {
	var location models.Location
	err := r.collection(locationsCollection).
		FindOne(ctx, bson.M{"_id": idLocation, "id_user": idUser}).
		Decode(&location)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Location{}, ErrNotFound
		}
		return models.Location{}, fmt.Errorf("find location: %w", err)
	}
	return location, nil
}

// ListLocationsByUser returns every location the user has saved.
func (r *Repository) ListLocationsByUser(ctx context.Context, idUser string) ([]models.Location, error) {
	cursor, err := r.collection(locationsCollection).Find(ctx, bson.M{"id_user": idUser})
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer cursor.Close(ctx)

	var locations []models.Location
	if err := cursor.All(ctx, &locations); err != nil {
		return nil, fmt.Errorf("decode locations: %w", err)
	}
	return locations, nil
}

// DeleteLocation removes one location owned by the given user.
func (r *Repository) DeleteLocation(ctx context.Context, idUser, idLocation string) error {
	result, err := r.collection(locationsCollection).
		DeleteOne(ctx, bson.M{"_id": idLocation, "id_user": idUser})
	if err != nil {
		return fmt.Errorf("delete location: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNoChanges
	}
	return nil
}
