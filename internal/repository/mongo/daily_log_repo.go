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

const dailyLogCollectionName = "daily_logs"

type mongoDailyLogRepository struct {
	collection *mongo.Collection
}

// NewMongoDailyLogRepository creates a DailyLog repository backed by MongoDB.
func NewMongoDailyLogRepository(db *mongo.Database) repository.DailyLogRepository {
	return &mongoDailyLogRepository{
		collection: db.Collection(dailyLogCollectionName),
	}
}

func (r *mongoDailyLogRepository) GetByUserAndDate(ctx context.Context, userID primitive.ObjectID, date time.Time) (*domain.DailyLog, error) {
	var dl domain.DailyLog
	filter := bson.M{"userId": userID, "date": domain.Day(date)}

	err := r.collection.FindOne(ctx, filter).Decode(&dl)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &dl, nil
}

// Upsert replaces the document for (userId, date). CreatedAt survives a replace.
func (r *mongoDailyLogRepository) Upsert(ctx context.Context, dl *domain.DailyLog) (*domain.DailyLog, error) {
	if dl.UserID == primitive.NilObjectID {
		return nil, errors.New("daily log requires userId")
	}
	dl.Date = domain.Day(dl.Date)
	now := time.Now().UTC()
	if dl.CreatedAt.IsZero() {
		dl.CreatedAt = now
	}
	dl.UpdatedAt = now

	// A nil ID is omitted so an upsert keeps the stored _id or lets the server assign one.
	filter := bson.M{"userId": dl.UserID, "date": dl.Date}
	opts := options.FindOneAndReplace().SetUpsert(true).SetReturnDocument(options.After)

	var saved domain.DailyLog
	err := r.collection.FindOneAndReplace(ctx, filter, dl, opts).Decode(&saved)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Lost a race with a concurrent first save of the same day.
			return nil, repository.ErrDuplicate
		}
		return nil, err
	}
	return &saved, nil
}

func (r *mongoDailyLogRepository) ListByUser(ctx context.Context, userID primitive.ObjectID, dr repository.DateRange, limit int64) ([]domain.DailyLog, error) {
	filter := bson.M{"userId": userID}
	if dateFilter := dateRangeFilter(dr); dateFilter != nil {
		filter["date"] = dateFilter
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	if limit > 0 {
		findOptions.SetLimit(limit)
	}
	return r.find(ctx, filter, findOptions)
}

func (r *mongoDailyLogRepository) ListAllByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.DailyLog, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	return r.find(ctx, bson.M{"userId": userID}, findOptions)
}

func (r *mongoDailyLogRepository) ListByUserBetween(ctx context.Context, userID primitive.ObjectID, from, to time.Time) ([]domain.DailyLog, error) {
	filter := bson.M{
		"userId": userID,
		"date":   dateRangeFilter(repository.DateRange{From: from, To: to}),
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	return r.find(ctx, filter, findOptions)
}

func (r *mongoDailyLogRepository) DeleteByUserAndDate(ctx context.Context, userID primitive.ObjectID, date time.Time) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"userId": userID, "date": domain.Day(date)})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var solvedCounterField = map[domain.Platform]string{
	domain.PlatformLeetCode:   "leetcode.problemsSolved",
	domain.PlatformCodeChef:   "codechef.problemsSolved",
	domain.PlatformCodeforces: "codeforces.problemsSolved",
}

// IncrementProblemsSolved uses $inc so concurrent problem creations on the
// same day do not lose updates. Platforms without a counter only resolve the log id.
func (r *mongoDailyLogRepository) IncrementProblemsSolved(ctx context.Context, userID primitive.ObjectID, date time.Time, platform domain.Platform, n int) (primitive.ObjectID, error) {
	filter := bson.M{"userId": userID, "date": domain.Day(date)}

	field, ok := solvedCounterField[platform]
	if !ok || n == 0 {
		dl, err := r.GetByUserAndDate(ctx, userID, date)
		if err != nil {
			return primitive.NilObjectID, err
		}
		return dl.ID, nil
	}

	update := bson.M{
		"$inc": bson.M{field: n},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	}
	opts := options.FindOneAndUpdate().SetProjection(bson.M{"_id": 1})

	var res struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&res); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return primitive.NilObjectID, repository.ErrNotFound
		}
		return primitive.NilObjectID, err
	}
	return res.ID, nil
}

func (r *mongoDailyLogRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.DailyLog, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	logs := []domain.DailyLog{}
	if err = cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// dateRangeFilter turns an inclusive day range into a $gte/$lte document,
// or nil when both ends are open.
func dateRangeFilter(dr repository.DateRange) bson.M {
	f := bson.M{}
	if !dr.From.IsZero() {
		f["$gte"] = domain.Day(dr.From)
	}
	if !dr.To.IsZero() {
		f["$lte"] = domain.Day(dr.To)
	}
	if len(f) == 0 {
		return nil
	}
	return f
}

// EnsureDailyLogIndexes enforces one log per user per day.
func EnsureDailyLogIndexes(ctx context.Context, collection *mongo.Collection) {
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
