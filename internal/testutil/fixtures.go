package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/forumhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a user document and returns it with its generated ID.
func (f *Fixtures) CreateUser(ctx context.Context, email string) models.User {
	f.t.Helper()

	user := models.User{
		ID:        primitive.NewObjectID(),
		Email:     email,
		Name:      "Test User",
		CreatedAt: time.Now().UTC(),
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreatePost inserts a post authored by the given email with zero votes and
// no comments.
func (f *Fixtures) CreatePost(ctx context.Context, createdBy, title string) models.Post {
	f.t.Helper()
	return f.CreatePostAt(ctx, createdBy, title, time.Now().UTC())
}

// CreatePostAt is CreatePost with an explicit creation time, for tests that
// assert ordering.
func (f *Fixtures) CreatePostAt(ctx context.Context, createdBy, title string, createdAt time.Time) models.Post {
	f.t.Helper()

	post := models.Post{
		ID:        primitive.NewObjectID(),
		Title:     title,
		Content:   "test content",
		CreatedBy: createdBy,
		CreatedAt: createdAt,
	}

	if _, err := f.db.Collection("posts").InsertOne(ctx, post); err != nil {
		f.t.Fatalf("failed to create test post: %v", err)
	}
	return post
}

// AddComment appends a comment document directly, bypassing the store.
func (f *Fixtures) AddComment(ctx context.Context, postID primitive.ObjectID, userID, text string) models.Comment {
	f.t.Helper()

	comment := models.Comment{
		ID:        primitive.NewObjectID(),
		Text:      text,
		UserID:    userID,
		UserName:  "Test User",
		CreatedAt: time.Now().UTC(),
	}

	_, err := f.db.Collection("posts").UpdateByID(ctx, postID,
		bson.M{"$push": bson.M{"comments": comment}})
	if err != nil {
		f.t.Fatalf("failed to add test comment: %v", err)
	}
	return comment
}
