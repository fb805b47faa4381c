package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment statuses shared by Payment and Transaction documents.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Payment is a ledger entry for a recorded payment. It is created directly
// when an admin records a cash payment, or when a payment request is approved
// (in which case TransactionID links back to the request).
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID        int64              `bson:"userId" json:"userId"`
	Date          time.Time          `bson:"date" json:"date"`
	Month         string             `bson:"month" json:"month"`
	Amount        float64            `bson:"amount" json:"amount"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Status        string             `bson:"status" json:"status"`
}

// PaymentWithCustomer is a Payment joined with the owning customer's name.
type PaymentWithCustomer struct {
	ID     primitive.ObjectID `bson:"_id" json:"id"`
	UserID int64              `bson:"userId" json:"userId"`
	Month  string             `bson:"month" json:"month"`
	Amount float64            `bson:"amount" json:"amount"`
	Name   string             `bson:"name" json:"name"`
}
