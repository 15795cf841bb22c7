package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	apperrors "retail/internal/errors"
)

// Database exposes the connectivity probes used by the diagnostic endpoint.
type Database struct {
	db *mongo.Database
}

func NewDatabase(db *mongo.Database) *Database {
	return &Database{db: db}
}

func (d *Database) Name() string {
	return d.db.Name()
}

func (d *Database) Ping(ctx context.Context) error {
	if err := d.db.Client().Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("pinging mongodb: %w", err)
	}
	return nil
}

func (d *Database) CollectionNames(ctx context.Context) ([]string, error) {
	names, err := d.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("listing collections: %w", err)
	}
	return names, nil
}

// ParseObjectID converts a public id into a store identifier. A malformed id
// is reported as a validation error.
func ParseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.NewValidationError("Invalid ID format", apperrors.ValidationDetail{
			Field:   "id",
			Message: "id must be a 24 character hex string",
		})
	}
	return oid, nil
}
