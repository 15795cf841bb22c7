package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// SetupTestDB connects to the MongoDB at MONGO_TEST_URL (default
// mongodb://localhost:27017) and returns a database unique to the test.
// The test is skipped when no server is reachable.
func SetupTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	url := os.Getenv("MONGO_TEST_URL")
	if url == "" {
		url = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(url).
		SetServerSelectionTimeout(2*time.Second))
	if err != nil {
		t.Fatalf("failed to create mongo client: %v", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		t.Skipf("test database not available: %v", err)
	}

	name := fmt.Sprintf("retail_test_%d", time.Now().UnixNano())
	return client.Database(name)
}

// CleanupTestDB drops the test database and closes the client.
func CleanupTestDB(t *testing.T, db *mongo.Database) {
	t.Helper()
	if db == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Drop(ctx); err != nil {
		t.Logf("failed to drop database %s: %v", db.Name(), err)
	}
	_ = db.Client().Disconnect(ctx)
}
