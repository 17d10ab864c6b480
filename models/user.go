package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Stats is the per-user counter map. Counters are maintained with
// server-side atomic increments and periodically reconciled against
// authoritative counts, so short-lived skew is possible.
type Stats struct {
	TotalDreams  int64 `bson:"totalDreams" json:"totalDreams"`
	AnalysesUsed int64 `bson:"analysesUsed" json:"analysesUsed"`
}

// User is the profile document keyed by the identity provider uid.
// Collection: users
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UID       string             `bson:"uid" json:"uid"`
	Stats     Stats              `bson:"stats" json:"stats"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
