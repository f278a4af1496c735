// internal/domain/models/payment.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is an append-only record of a completed transaction. There is no
// update or delete path; history is written once per confirmed charge.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email         string             `bson:"email" json:"email"`
	Amount        float64            `bson:"amount" json:"amount"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`

	// PaymentMethod is opaque pass-through: processors report it as a
	// string or a list depending on the flow, and it is stored exactly
	// as received.
	PaymentMethod any `bson:"paymentMethod,omitempty" json:"paymentMethod,omitempty"`

	Type string    `bson:"type,omitempty" json:"type,omitempty"`
	Date time.Time `bson:"date" json:"date"`
}
