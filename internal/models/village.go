package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Village is a denormalized lookup entry, auto-created the first time a user
// referencing it is added.
type Village struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name string             `bson:"name" json:"name"`
}
