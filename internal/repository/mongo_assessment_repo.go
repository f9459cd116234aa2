package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jobquest/internal/model"
)

type mongoAssessmentRepo struct {
	collection *mongo.Collection
}

// NewMongoAssessmentRepo creates a MongoDB-backed assessment repository
func NewMongoAssessmentRepo(db *mongo.Database) AssessmentRepo {
	return &mongoAssessmentRepo{
		collection: db.Collection("assessments"),
	}
}

func (r *mongoAssessmentRepo) Create(ctx context.Context, a *model.Assessment) (string, error) {
	stamp(a)
	if _, err := r.collection.InsertOne(ctx, a); err != nil {
		return "", fmt.Errorf("insert assessment: %w", err)
	}
	return a.ID, nil
}

func (r *mongoAssessmentRepo) GetByID(ctx context.Context, id string) (*model.Assessment, error) {
	var a model.Assessment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find assessment: %w", err)
	}
	return &a, nil
}

func (r *mongoAssessmentRepo) List(ctx context.Context, limit int) ([]*model.Assessment, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(ClampLimit(limit)))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*model.Assessment
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode assessments: %w", err)
	}
	return out, nil
}

// Migrate creates the listing index
func (r *mongoAssessmentRepo) Migrate(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("create created_at index: %w", err)
	}
	return nil
}
