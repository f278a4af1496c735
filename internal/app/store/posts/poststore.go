// Package poststore owns the posts collection: post documents together
// with their embedded comment and voter sequences. Every mutation targets
// a single document so the store never needs multi-document coordination.
package poststore

import (
	"context"
	"errors"
	"time"

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
	return &Store{c: db.Collection("posts")}
}

var (
	// ErrNotFound is returned when no post matches the given id.
	ErrNotFound = errors.New("post not found")
	// ErrCommentNotFound is returned when the post exists but holds no
	// comment with the given id.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrNotCommentOwner is returned when a caller tries to delete a
	// comment that belongs to a different user.
	ErrNotCommentOwner = errors.New("comment belongs to another user")
	// ErrAlreadyVoted is returned when the user already has a voter record
	// on the post. Votes are immutable once cast.
	ErrAlreadyVoted = errors.New("user has already voted on this post")
	// ErrInvalidVoteType is returned for a vote type outside {up, down}.
	ErrInvalidVoteType = errors.New(`vote type must be "up" or "down"`)
)

// List returns posts ordered by createdAt descending. A non-empty
// createdBy restricts the result to posts with that exact author email.
// The result is never nil.
func (s *Store) List(ctx context.Context, createdBy string) ([]models.Post, error) {
	filter := bson.M{}
	if createdBy != "" {
		filter["created_by"] = createdBy
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	posts := []models.Post{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Create inserts a new post and returns it with the generated id. A zero
// createdAt is defaulted server-side so list ordering never sees a zero
// timestamp; everything else is stored as the caller provided it.
func (s *Store) Create(ctx context.Context, p models.Post) (models.Post, error) {
	p.ID = primitive.NewObjectID()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.Post{}, err
	}
	return p, nil
}

// GetByID loads a full post including comments and voters.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	var p models.Post
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Delete removes a post by id. Comments and voter records travel with the
// document, so no cascade is needed.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
