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

const problemCollectionName = "problems"

type mongoProblemRepository struct {
	collection *mongo.Collection
}

func NewMongoProblemRepository(db *mongo.Database) repository.ProblemRepository {
	return &mongoProblemRepository{
		collection: db.Collection(problemCollectionName),
	}
}

func (r *mongoProblemRepository) Create(ctx context.Context, p *domain.Problem) (primitive.ObjectID, error) {
	if p.UserID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("problem requires userId")
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	p.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.SolvedAt.IsZero() {
		p.SolvedAt = now
	}

	result, err := r.collection.InsertOne(ctx, p)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

func (r *mongoProblemRepository) GetByID(ctx context.Context, id, userID primitive.ObjectID) (*domain.Problem, error) {
	var p domain.Problem
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "userId": userID}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func problemFilter(userID primitive.ObjectID, f repository.ProblemFilter) bson.M {
	filter := bson.M{"userId": userID}
	if f.Platform != "" {
		filter["platform"] = f.Platform
	}
	if f.Difficulty != "" {
		filter["difficulty"] = f.Difficulty
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.SheetID != nil {
		filter["sheetId"] = *f.SheetID
	}
	if f.Tag != "" {
		filter["tags"] = f.Tag
	}
	return filter
}

func (r *mongoProblemRepository) List(ctx context.Context, userID primitive.ObjectID, f repository.ProblemFilter, skip, limit int64) ([]domain.Problem, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "solvedAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)
	return r.find(ctx, problemFilter(userID, f), findOptions)
}

func (r *mongoProblemRepository) Count(ctx context.Context, userID primitive.ObjectID, f repository.ProblemFilter) (int64, error) {
	return r.collection.CountDocuments(ctx, problemFilter(userID, f))
}

// ListSolvedBetween returns problems whose solvedAt falls in [from, to), newest first.
func (r *mongoProblemRepository) ListSolvedBetween(ctx context.Context, userID primitive.ObjectID, from, to time.Time) ([]domain.Problem, error) {
	filter := bson.M{
		"userId":   userID,
		"solvedAt": bson.M{"$gte": from, "$lt": to},
	}
	return r.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "solvedAt", Value: -1}}))
}

func (r *mongoProblemRepository) ListAllByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Problem, error) {
	return r.find(ctx, bson.M{"userId": userID}, options.Find())
}

func (r *mongoProblemRepository) ListBySheet(ctx context.Context, sheetID, userID primitive.ObjectID) ([]domain.Problem, error) {
	filter := bson.M{"userId": userID, "sheetId": sheetID}
	return r.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "solvedAt", Value: -1}}))
}

// UpsertForSheetProblem keeps at most one problem per sheet problem; the
// unique sparse index on sheetProblemId backs this up.
func (r *mongoProblemRepository) UpsertForSheetProblem(ctx context.Context, p *domain.Problem) error {
	if p.SheetProblemID == nil {
		return errors.New("problem is not linked to a sheet problem")
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	now := time.Now().UTC()
	filter := bson.M{"userId": p.UserID, "sheetProblemId": *p.SheetProblemID}
	update := bson.M{
		"$set": bson.M{
			"title":      p.Title,
			"link":       p.Link,
			"platform":   p.Platform,
			"difficulty": p.Difficulty,
			"status":     p.Status,
			"tags":       p.Tags,
			"sheetId":    p.SheetID,
			"sheetTopic": p.SheetTopic,
			"notes":      p.Notes,
			"code":       p.Code,
			"language":   p.Language,
			"solvedAt":   p.SolvedAt,
			"updatedAt":  now,
		},
		"$setOnInsert": bson.M{
			"timeSpent": 0,
			"createdAt": now,
		},
	}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *mongoProblemRepository) DeleteForSheetProblem(ctx context.Context, sheetProblemID, userID primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"userId": userID, "sheetProblemId": sheetProblemID})
	return err
}

func (r *mongoProblemRepository) Update(ctx context.Context, p *domain.Problem) error {
	p.UpdatedAt = time.Now().UTC()
	if p.Tags == nil {
		p.Tags = []string{}
	}
	filter := bson.M{"_id": p.ID, "userId": p.UserID}
	update := bson.M{
		"$set": bson.M{
			"title":      p.Title,
			"link":       p.Link,
			"code":       p.Code,
			"language":   p.Language,
			"notes":      p.Notes,
			"platform":   p.Platform,
			"difficulty": p.Difficulty,
			"status":     p.Status,
			"tags":       p.Tags,
			"timeSpent":  p.TimeSpent,
			"solvedAt":   p.SolvedAt,
			"updatedAt":  p.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoProblemRepository) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoProblemRepository) SetDailyLog(ctx context.Context, id, userID, dailyLogID primitive.ObjectID) error {
	update := bson.M{"$set": bson.M{"dailyLogId": dailyLogID, "updatedAt": time.Now().UTC()}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id, "userId": userID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoProblemRepository) UnlinkSheet(ctx context.Context, sheetID primitive.ObjectID) error {
	update := bson.M{
		"$unset": bson.M{"sheetId": "", "sheetTopic": ""},
		"$set":   bson.M{"updatedAt": time.Now().UTC()},
	}
	_, err := r.collection.UpdateMany(ctx, bson.M{"sheetId": sheetID}, update)
	return err
}

func (r *mongoProblemRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.Problem, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	problems := []domain.Problem{}
	if err = cursor.All(ctx, &problems); err != nil {
		return nil, err
	}
	return problems, nil
}

func EnsureProblemIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "solvedAt", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "platform", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "tags", Value: 1}},
			Options: options.Index(),
		},
		{
			// Only sheet-synced problems carry sheetProblemId.
			Keys:    bson.D{{Key: "sheetProblemId", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
