package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Dream is a user-authored journal entry.
// Collection: dreams
//
// Field names are kept camelCase for compatibility with data written by
// earlier releases of the product.
type Dream struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UID       string             `bson:"uid" json:"-"`
	Title     string             `bson:"title" json:"title"`
	Body      string             `bson:"body" json:"body"`
	Date      time.Time          `bson:"date" json:"date"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`

	// AnalysisID is null until exactly one analysis is linked. A dream
	// has at most one analysis at a time; linking is a conditional write
	// on this field being null.
	AnalysisID *primitive.ObjectID `bson:"analysisId" json:"analysisId"`
}
