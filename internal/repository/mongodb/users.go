package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/orionbeers/planting-backend/internal/domain/models"
)

// InsertUser stores a new user, stamping id and timestamps.
func (r *Repository) InsertUser(ctx context.Context, user models.User) (models.User, error) {
	user.ID = NewDocumentID()
	user.CreatedAt = now()
	user.UpdatedAt = user.CreatedAt

	if _, err := r.collection(usersCollection).InsertOne(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

// FindUserByEmail returns the user with the given email.
func (r *Repository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := r.collection(usersCollection).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, fmt.Errorf("find user by email: %w", err)
	}
	return user, nil
}

// UpdateUserByEmail applies the provided profile changes. An update matching
// or modifying no documents returns ErrNoChanges.
func (r *Repository) UpdateUserByEmail(ctx context.Context, email string, update models.UserUpdate) error {
	if update.IsEmpty() {
		return ErrNoChanges
	}

	set := bson.M{"updated_at": now()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Avatar != nil {
		set["avatar"] = *update.Avatar
	}

	result, err := r.collection(usersCollection).UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	if result.ModifiedCount == 0 {
		return ErrNoChanges
	}
	return nil
}
