package models

import (
	"time"
)

// User represents a store customer. The ID is assigned by the caller
// (the store's own customer number), not by MongoDB.
type User struct {
	ID          int64      `bson:"_id" json:"userId"`
	Name        string     `bson:"name" json:"name"`
	Village     string     `bson:"village" json:"village"`
	Category    string     `bson:"category" json:"category"`
	Phone       string     `bson:"phone" json:"phone"`
	Language    string     `bson:"language" json:"language"`
	DeviceToken string     `bson:"deviceToken,omitempty" json:"deviceToken,omitempty"`
	IsDeleted   bool       `bson:"isDeleted" json:"isDeleted"`
	DeletedAt   *time.Time `bson:"deletedAt,omitempty" json:"deletedAt,omitempty"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// UserWithPayments is a User joined with the number of payments on record,
// as returned by the listing endpoints.
type UserWithPayments struct {
	User         `bson:",inline"`
	PaymentCount int64 `json:"paymentCount"`
}
