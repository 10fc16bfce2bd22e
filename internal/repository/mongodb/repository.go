package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names used by the repository.
const (
	usersCollection       = "users"
	locationsCollection   = "locations"
	cropsCollection       = "crops_conditions"
	predictionsCollection = "predictions"
	dashboardsCollection  = "dashboards"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("document not found")

// ErrNoChanges is returned when an update or delete touches no documents.
// A no-op write is an error, not a silent success.
var ErrNoChanges = errors.New("no documents changed")

// Repository is the MongoDB-backed document store. A single instance holds
// the client handle; it is constructed once in main and injected everywhere.
type Repository struct {
	client *mongo.Client
	dbName string
}

// New connects to MongoDB and verifies the connection with a ping.
func New(ctx context.Context, uri string, dbName string) (*Repository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Repository{client: client, dbName: dbName}, nil
}

// Close closes the MongoDB connection.
func (r *Repository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func (r *Repository) collection(name string) *mongo.Collection {
	return r.client.Database(r.dbName).Collection(name)
}

// NewDocumentID generates a fresh document identifier.
func NewDocumentID() string {
	return primitive.NewObjectID().Hex()
}

func now() time.Time {
	return time.Now().UTC()
}
