package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"lunarly/models"
)

type DreamRepository struct {
	col *mongo.Collection
}

func NewDreamRepository(db *mongo.Database) *DreamRepository {
	return &DreamRepository{col: db.Collection("dreams")}
}

// Insert creates a dream with a fresh id, timestamps, and a null
// analysisId.
func (r *DreamRepository) Insert(ctx context.Context, d *models.Dream) (primitive.ObjectID, error) {
	now := time.Now()
	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
	}
	d.CreatedAt = now
	d.UpdatedAt = now
	d.AnalysisID = nil
	if _, err := r.col.InsertOne(ctx, d); err != nil {
		return primitive.NilObjectID, err
	}
	return d.ID, nil
}

// FindByID returns the dream only when it belongs to uid.
func (r *DreamRepository) FindByID(ctx context.Context, uid string, id primitive.ObjectID) (*models.Dream, error) {
	var d models.Dream
	err := r.col.FindOne(ctx, bson.M{"_id": id, "uid": uid}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// FindByUser returns all dreams of uid, newest date first.
func (r *DreamRepository) FindByUser(ctx context.Context, uid string) ([]models.Dream, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"uid": uid}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var dreams []models.Dream
	if err := cur.All(ctx, &dreams); err != nil {
		return nil, err
	}
	return dreams, nil
}

// FindByUserAndDay returns dreams whose date falls on the given calendar
// day in the day's location.
func (r *DreamRepository) FindByUserAndDay(ctx context.Context, uid string, day time.Time) ([]models.Dream, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	cur, err := r.col.Find(ctx, bson.M{
		"uid":  uid,
		"date": bson.M{"$gte": start, "$lt": end},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var dreams []models.Dream
	if err := cur.All(ctx, &dreams); err != nil {
		return nil, err
	}
	return dreams, nil
}

// DreamUpdate carries the user-editable fields. Nil means unchanged.
type DreamUpdate struct {
	Title *string
	Body  *string
	Date  *time.Time
}

// Update applies the edit and bumps updatedAt. Returns false when no
// owned dream matched.
func (r *DreamRepository) Update(ctx context.Context, uid string, id primitive.ObjectID, upd DreamUpdate) (bool, error) {
	set := bson.M{"updatedAt": time.Now()}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Body != nil {
		set["body"] = *upd.Body
	}
	if upd.Date != nil {
		set["date"] = *upd.Date
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id, "uid": uid}, bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// Delete removes an owned dream. Returns false when nothing matched.
func (r *DreamRepository) Delete(ctx context.Context, uid string, id primitive.ObjectID) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "uid": uid})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// LinkAnalysis sets analysisId on the dream, conditional on it being
// currently null. The compare-and-swap makes linking effectively
// exactly-once per dream even under concurrent analysis requests.
func (r *DreamRepository) LinkAnalysis(ctx context.Context, uid string, dreamID, analysisID primitive.ObjectID) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": dreamID, "uid": uid, "analysisId": nil},
		bson.M{"$set": bson.M{"analysisId": analysisID, "updatedAt": time.Now()}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// CountByUser returns the authoritative dream count for uid.
func (r *DreamRepository) CountByUser(ctx context.Context, uid string) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"uid": uid})
}
