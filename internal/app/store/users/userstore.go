// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"time"

	"github.com/dalemusser/forumhub/internal/app/system/normalize"
	"github.com/dalemusser/forumhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// GetByEmail looks up a user by normalized email. Returns
// mongo.ErrNoDocuments if not found.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// RegisterIfAbsent inserts the user unless a user with the same email
// already exists. It returns the stored user and whether this call
// created it. A duplicate-key error from a concurrent insert is treated
// the same as finding the existing user.
func (s *Store) RegisterIfAbsent(ctx context.Context, u models.User) (models.User, bool, error) {
	u.Email = normalize.Email(u.Email)
	u.Name = normalize.Name(u.Name)

	existing, err := s.GetByEmail(ctx, u.Email)
	if err == nil {
		return *existing, false, nil
	}
	if err != mongo.ErrNoDocuments {
		return models.User{}, false, err
	}

	u.ID = primitive.NewObjectID()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	if u.Role == "" {
		u.Role = "user"
	}

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			// Lost the race: someone else registered this email first.
			existing, ferr := s.GetByEmail(ctx, u.Email)
			if ferr != nil {
				return models.User{}, false, ferr
			}
			return *existing, false, nil
		}
		return models.User{}, false, err
	}
	return u, true, nil
}

// SetMember marks the user with the given email as a member, creating a
// minimal user record when none exists yet.
func (s *Store) SetMember(ctx context.Context, email string) error {
	email = normalize.Email(email)

	update := bson.M{
		"$set": bson.M{"is_member": true},
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID(),
			"email":      email,
			"role":       "user",
			"created_at": time.Now().UTC(),
		},
	}
	_, err := s.c.UpdateOne(ctx, bson.M{"email": email}, update, options.Update().SetUpsert(true))
	return err
}
