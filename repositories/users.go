package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"lunarly/models"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("users")}
}

// IncStats adds the deltas to the user's counters as one server-side
// atomic $inc against the stored value, never an application-side
// read-modify-write. The profile document is upserted on first touch.
func (r *UserRepository) IncStats(ctx context.Context, uid string, totalDreams, analysesUsed int64) error {
	inc := bson.M{}
	if totalDreams != 0 {
		inc["stats.totalDreams"] = totalDreams
	}
	if analysesUsed != 0 {
		inc["stats.analysesUsed"] = analysesUsed
	}
	if len(inc) == 0 {
		return nil
	}

	now := time.Now()
	_, err := r.col.UpdateOne(ctx,
		bson.M{"uid": uid},
		bson.M{
			"$inc":         inc,
			"$set":         bson.M{"updatedAt": now},
			"$setOnInsert": bson.M{"uid": uid, "createdAt": now},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

// Stats returns the user's counters, zero-valued when the profile
// document does not exist yet.
func (r *UserRepository) Stats(ctx context.Context, uid string) (models.Stats, error) {
	var u models.User
	err := r.col.FindOne(ctx, bson.M{"uid": uid}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Stats{}, nil
	}
	if err != nil {
		return models.Stats{}, err
	}
	return u.Stats, nil
}

// SetStats overwrites the counters with recomputed authoritative values.
// Used by the reconciler worker, not by request handlers.
func (r *UserRepository) SetStats(ctx context.Context, uid string, stats models.Stats) error {
	now := time.Now()
	_, err := r.col.UpdateOne(ctx,
		bson.M{"uid": uid},
		bson.M{
			"$set":         bson.M{"stats": stats, "updatedAt": now},
			"$setOnInsert": bson.M{"uid": uid, "createdAt": now},
		},
		options.Update().SetUpsert(true),
	)
	return err
}
