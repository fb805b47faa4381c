package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Transaction is a payment request awaiting an admin decision. It is distinct
// from a Payment, which is the ledger entry written once the request is
// approved. TransactionID is supplied by the caller and globally unique.
type Transaction struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	UserID        int64              `bson:"userId" json:"userId"`
	Month         string             `bson:"month" json:"month"`
	Amount        float64            `bson:"amount" json:"amount"`
	Status        string             `bson:"status" json:"status"`
}
