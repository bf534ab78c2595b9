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

const physiqueLogCollectionName = "physique_logs"

type mongoPhysiqueLogRepository struct {
	collection *mongo.Collection
}

func NewMongoPhysiqueLogRepository(db *mongo.Database) repository.PhysiqueLogRepository {
	return &mongoPhysiqueLogRepository{
		collection: db.Collection(physiqueLogCollectionName),
	}
}

func (r *mongoPhysiqueLogRepository) GetByUserAndDate(ctx context.Context, userID primitive.ObjectID, date time.Time) (*domain.PhysiqueLog, error) {
	return r.findOne(ctx, bson.M{"userId": userID, "date": domain.Day(date)})
}

func (r *mongoPhysiqueLogRepository) GetByID(ctx context.Context, id, userID primitive.ObjectID) (*domain.PhysiqueLog, error) {
	return r.findOne(ctx, bson.M{"_id": id, "userId": userID})
}

func (r *mongoPhysiqueLogRepository) findOne(ctx context.Context, filter bson.M) (*domain.PhysiqueLog, error) {
	var pl domain.PhysiqueLog
	if err := r.collection.FindOne(ctx, filter).Decode(&pl); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &pl, nil
}

// Upsert replaces the weigh-in for (userId, date), inserting it when absent.
func (r *mongoPhysiqueLogRepository) Upsert(ctx context.Context, pl *domain.PhysiqueLog) (*domain.PhysiqueLog, error) {
	if pl.UserID == primitive.NilObjectID {
		return nil, errors.New("physique log requires userId")
	}
	pl.Date = domain.Day(pl.Date)
	now := time.Now().UTC()
	if pl.CreatedAt.IsZero() {
		pl.CreatedAt = now
	}
	pl.UpdatedAt = now

	filter := bson.M{"userId": pl.UserID, "date": pl.Date}
	opts := options.FindOneAndReplace().SetUpsert(true).SetReturnDocument(options.After)

	var saved domain.PhysiqueLog
	if err := r.collection.FindOneAndReplace(ctx, filter, pl, opts).Decode(&saved); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, repository.ErrDuplicate
		}
		return nil, err
	}
	return &saved, nil
}

func (r *mongoPhysiqueLogRepository) ListByUser(ctx context.Context, userID primitive.ObjectID, ascending bool) ([]domain.PhysiqueLog, error) {
	order := -1
	if ascending {
		order = 1
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: order}})

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	logs := []domain.PhysiqueLog{}
	if err = cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *mongoPhysiqueLogRepository) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsurePhysiqueLogIndexes enforces one weigh-in per user per day.
func EnsurePhysiqueLogIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
