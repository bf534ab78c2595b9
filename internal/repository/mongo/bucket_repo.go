package mongo

import (
	"context"
	"errors"
	"log"
	"time"

	"alcyxob/challenge75/internal/domain"
	"alcyxob/challenge75/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const bucketCollectionName = "sheet_buckets"

type mongoBucketRepository struct {
	collection *mongo.Collection
}

func NewMongoBucketRepository(db *mongo.Database) repository.BucketRepository {
	return &mongoBucketRepository{
		collection: db.Collection(bucketCollectionName),
	}
}

// ListActive returns bucket summaries without their problem lists, most
// popular first.
func (r *mongoBucketRepository) ListActive(ctx context.Context) ([]domain.Bucket, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "popularity", Value: -1}, {Key: "name", Value: 1}}).
		SetProjection(bson.M{"problems": 0})

	cursor, err := r.collection.Find(ctx, bson.M{"isActive": true}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	buckets := []domain.Bucket{}
	if err = cursor.All(ctx, &buckets); err != nil {
		return nil, err
	}
	return buckets, nil
}

func (r *mongoBucketRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Bucket, error) {
	var b domain.Bucket
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// UpsertByName creates or replaces the curated content of the bucket named
// b.Name. Popularity and createdAt survive an update.
func (r *mongoBucketRepository) UpsertByName(ctx context.Context, b *domain.Bucket) (*domain.Bucket, error) {
	if b.Name == "" {
		return nil, errors.New("bucket name is required")
	}
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"description":         b.Description,
			"category":            b.Category,
			"icon":                b.Icon,
			"color":               b.Color,
			"problems":            b.Problems,
			"totalProblems":       b.TotalProblems,
			"difficultyBreakdown": b.DifficultyBreakdown,
			"topics":              b.Topics,
			"isActive":            b.IsActive,
			"updatedAt":           now,
		},
		"$setOnInsert": bson.M{
			"popularity": 0,
			"createdAt":  now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var saved domain.Bucket
	if err := r.collection.FindOneAndUpdate(ctx, bson.M{"name": b.Name}, update, opts).Decode(&saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *mongoBucketRepository) IncrementPopularity(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.UpdateByID(ctx, id, bson.M{"$inc": bson.M{"popularity": 1}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func EnsureBucketIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "isActive", Value: 1}, {Key: "popularity", Value: -1}},
			Options: options.Index(),
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
