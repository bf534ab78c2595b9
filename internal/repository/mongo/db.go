package mongo

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const defaultTimeout = 10 * time.Second

// ConnectDB connects to MongoDB and pings the primary before returning.
func ConnectDB(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()

	if err = client.Ping(pingCtx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, err
	}
	return client, nil
}

// DisconnectDB gracefully disconnects the MongoDB client.
func DisconnectDB(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes of every collection used by the app.
// Failures are logged per collection and never abort startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) {
	EnsureUserIndexes(ctx, db.Collection(userCollectionName))
	EnsureDailyLogIndexes(ctx, db.Collection(dailyLogCollectionName))
	EnsurePhysiqueLogIndexes(ctx, db.Collection(physiqueLogCollectionName))
	EnsureProgressPhotoIndexes(ctx, db.Collection(progressPhotoCollectionName))
	EnsureSheetIndexes(ctx, db.Collection(sheetCollectionName))
	EnsureSheetProblemIndexes(ctx, db.Collection(sheetProblemCollectionName))
	EnsureProblemIndexes(ctx, db.Collection(problemCollectionName))
	EnsureBucketIndexes(ctx, db.Collection(bucketCollectionName))
	log.Println("INFO: Index creation process completed.")
}
