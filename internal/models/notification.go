package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification is an in-app message for a user. Append-only; only the read
// flag is ever mutated.
type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    int64              `bson:"userId" json:"userId"`
	Message   string             `bson:"message" json:"message"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	Read      bool               `bson:"read" json:"read"`
}
