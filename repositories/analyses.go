package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"lunarly/models"
)

type AnalysisRepository struct {
	col *mongo.Collection
}

func NewAnalysisRepository(db *mongo.Database) *AnalysisRepository {
	return &AnalysisRepository{col: db.Collection("analyses")}
}

// Insert persists an analysis. Analyses are immutable after creation, so
// this is the only write this repository offers.
func (r *AnalysisRepository) Insert(ctx context.Context, a *models.Analysis) (primitive.ObjectID, error) {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	if _, err := r.col.InsertOne(ctx, a); err != nil {
		return primitive.NilObjectID, err
	}
	return a.ID, nil
}

// FindByID returns the analysis only when it belongs to uid.
func (r *AnalysisRepository) FindByID(ctx context.Context, uid string, id primitive.ObjectID) (*models.Analysis, error) {
	var a models.Analysis
	err := r.col.FindOne(ctx, bson.M{"_id": id, "uid": uid}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CountByUser returns the authoritative analysis count for uid.
func (r *AnalysisRepository) CountByUser(ctx context.Context, uid string) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"uid": uid})
}
