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

const sheetCollectionName = "sheets"

type mongoSheetRepository struct {
	collection *mongo.Collection
}

func NewMongoSheetRepository(db *mongo.Database) repository.SheetRepository {
	return &mongoSheetRepository{
		collection: db.Collection(sheetCollectionName),
	}
}

func (r *mongoSheetRepository) Create(ctx context.Context, sheet *domain.Sheet) (primitive.ObjectID, error) {
	if sheet.UserID == primitive.NilObjectID || sheet.Name == "" {
		return primitive.NilObjectID, errors.New("sheet requires userId and name")
	}
	if sheet.Topics == nil {
		sheet.Topics = []domain.Topic{}
	}

	sheet.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	sheet.CreatedAt = now
	sheet.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, sheet)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

func (r *mongoSheetRepository) GetByID(ctx context.Context, id, userID primitive.ObjectID) (*domain.Sheet, error) {
	var sheet domain.Sheet
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "userId": userID}).Decode(&sheet)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &sheet, nil
}

// ListActiveByUser returns the user's active sheets, newest first.
func (r *mongoSheetRepository) ListActiveByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Sheet, error) {
	filter := bson.M{"userId": userID, "isActive": true}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	sheets := []domain.Sheet{}
	if err = cursor.All(ctx, &sheets); err != nil {
		return nil, err
	}
	return sheets, nil
}

// Update writes the editable fields. Owner and the problem counters are left alone.
func (r *mongoSheetRepository) Update(ctx context.Context, sheet *domain.Sheet) error {
	if sheet.ID == primitive.NilObjectID {
		return errors.New("sheet ID is required for update")
	}
	sheet.UpdatedAt = time.Now().UTC()

	filter := bson.M{"_id": sheet.ID, "userId": sheet.UserID}
	update := bson.M{
		"$set": bson.M{
			"name":        sheet.Name,
			"description": sheet.Description,
			"category":    sheet.Category,
			"color":       sheet.Color,
			"icon":        sheet.Icon,
			"topics":      sheet.Topics,
			"isActive":    sheet.IsActive,
			"targetDate":  sheet.TargetDate,
			"updatedAt":   sheet.UpdatedAt,
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

func (r *mongoSheetRepository) SetTotals(ctx context.Context, id primitive.ObjectID, total, solved int) error {
	update := bson.M{
		"$set": bson.M{
			"totalProblems":  total,
			"solvedProblems": solved,
			"updatedAt":      time.Now().UTC(),
		},
	}
	result, err := r.collection.UpdateByID(ctx, id, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoSheetRepository) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func EnsureSheetIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "isActive", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
