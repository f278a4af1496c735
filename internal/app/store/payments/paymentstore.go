// internal/app/store/payments/paymentstore.go
package paymentstore

import (
	"context"
	"time"

	"github.com/dalemusser/forumhub/internal/app/system/normalize"
	"github.com/dalemusser/forumhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("payments")}
}

// Insert records a completed payment. Every call appends a new record;
// payment history is never overwritten.
func (s *Store) Insert(ctx context.Context, p models.Payment) (models.Payment, error) {
	p.ID = primitive.NewObjectID()
	p.Email = normalize.Email(p.Email)
	if p.Date.IsZero() {
		p.Date = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.Payment{}, err
	}
	return p, nil
}

// ListByEmail returns the payment history for an email, newest first.
// An empty email returns all payments.
func (s *Store) ListByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	filter := bson.M{}
	if email != "" {
		filter["email"] = normalize.Email(email)
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	payments := []models.Payment{}
	if err := cur.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
