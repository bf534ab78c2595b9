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

const sheetProblemCollectionName = "sheet_problems"

type mongoSheetProblemRepository struct {
	collection *mongo.Collection
}

func NewMongoSheetProblemRepository(db *mongo.Database) repository.SheetProblemRepository {
	return &mongoSheetProblemRepository{
		collection: db.Collection(sheetProblemCollectionName),
	}
}

func prepareSheetProblem(p *domain.SheetProblem, now time.Time) {
	p.ID = primitive.NewObjectID()
	if p.Tags == nil {
		p.Tags = []string{}
	}
	p.CreatedAt = now
	p.UpdatedAt = now
}

func (r *mongoSheetProblemRepository) Create(ctx context.Context, p *domain.SheetProblem) (primitive.ObjectID, error) {
	if p.SheetID == primitive.NilObjectID || p.UserID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("sheet problem requires sheetId and userId")
	}
	prepareSheetProblem(p, time.Now().UTC())

	result, err := r.collection.InsertOne(ctx, p)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// CreateMany bulk-inserts entries, assigning ids and timestamps in place.
func (r *mongoSheetProblemRepository) CreateMany(ctx context.Context, ps []domain.SheetProblem) (int, error) {
	if len(ps) == 0 {
		return 0, nil
	}
	now := time.Now().UTC()
	docs := make([]interface{}, len(ps))
	for i := range ps {
		prepareSheetProblem(&ps[i], now)
		docs[i] = ps[i]
	}

	result, err := r.collection.InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}
	return len(result.InsertedIDs), nil
}

func (r *mongoSheetProblemRepository) GetByID(ctx context.Context, id, userID primitive.ObjectID) (*domain.SheetProblem, error) {
	var p domain.SheetProblem
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "userId": userID}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *mongoSheetProblemRepository) ListBySheet(ctx context.Context, sheetID, userID primitive.ObjectID) ([]domain.SheetProblem, error) {
	filter := bson.M{"sheetId": sheetID, "userId": userID}
	findOptions := options.Find().SetSort(bson.D{{Key: "topic", Value: 1}, {Key: "order", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	problems := []domain.SheetProblem{}
	if err = cursor.All(ctx, &problems); err != nil {
		return nil, err
	}
	return problems, nil
}

// Update writes the descriptive fields. Status, revision bookkeeping and
// ordering have their own write paths.
func (r *mongoSheetProblemRepository) Update(ctx context.Context, p *domain.SheetProblem) error {
	p.UpdatedAt = time.Now().UTC()
	filter := bson.M{"_id": p.ID, "userId": p.UserID}
	update := bson.M{
		"$set": bson.M{
			"title":       p.Title,
			"topic":       p.Topic,
			"difficulty":  p.Difficulty,
			"problemLink": p.ProblemLink,
			"articleLink": p.ArticleLink,
			"youtubeLink": p.YoutubeLink,
			"notes":       p.Notes,
			"code":        p.Code,
			"language":    p.Language,
			"platform":    p.Platform,
			"tags":        p.Tags,
			"updatedAt":   p.UpdatedAt,
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

func (r *mongoSheetProblemRepository) UpdateStatus(ctx context.Context, id, userID primitive.ObjectID, status domain.SheetProblemStatus, at *time.Time) (*domain.SheetProblem, error) {
	set := bson.M{"status": status, "updatedAt": time.Now().UTC()}
	if at != nil {
		set["lastAttemptedAt"] = at.UTC()
	}
	update := bson.M{"$set": set}
	if status == domain.SheetStatusRevision {
		update["$inc"] = bson.M{"revisionCount": 1}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p domain.SheetProblem
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id, "userId": userID}, update, opts).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Delete removes the entry and returns what was removed so callers can
// recount its sheet.
func (r *mongoSheetProblemRepository) Delete(ctx context.Context, id, userID primitive.ObjectID) (*domain.SheetProblem, error) {
	var p domain.SheetProblem
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id, "userId": userID}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *mongoSheetProblemRepository) DeleteBySheet(ctx context.Context, sheetID, userID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"sheetId": sheetID, "userId": userID})
	return err
}

func (r *mongoSheetProblemRepository) CountBySheet(ctx context.Context, sheetID primitive.ObjectID) (int, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{"sheetId": sheetID})
	return int(n), err
}

func (r *mongoSheetProblemRepository) MaxOrderInTopic(ctx context.Context, sheetID primitive.ObjectID, topic string) (int, error) {
	opts := options.FindOne().
		SetSort(bson.D{{Key: "order", Value: -1}}).
		SetProjection(bson.M{"order": 1})

	var res struct {
		Order int `bson:"order"`
	}
	err := r.collection.FindOne(ctx, bson.M{"sheetId": sheetID, "topic": topic}, opts).Decode(&res)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return -1, nil
		}
		return 0, err
	}
	return res.Order, nil
}

// CountStatusBySheet recounts total and solved entries with a single $group.
func (r *mongoSheetProblemRepository) CountStatusBySheet(ctx context.Context, sheetID primitive.ObjectID) (repository.StatusCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"sheetId": sheetID}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": 1},
			"solved": bson.M{"$sum": bson.M{
				"$cond": bson.A{bson.M{"$eq": bson.A{"$status", domain.SheetStatusSolved}}, 1, 0},
			}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return repository.StatusCount{}, err
	}
	defer cursor.Close(ctx)

	var rows []repository.StatusCount
	if err = cursor.All(ctx, &rows); err != nil {
		return repository.StatusCount{}, err
	}
	if len(rows) == 0 {
		return repository.StatusCount{}, nil
	}
	return rows[0], nil
}

func EnsureSheetProblemIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "sheetId", Value: 1}, {Key: "topic", Value: 1}, {Key: "order", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index(),
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
