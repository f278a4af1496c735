// internal/domain/models/post.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a forum post. Comments and voter records are embedded so that
// every mutation (comment append/removal, vote) stays inside one document
// and rides on Mongo's per-document atomicity.
type Post struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	Title   string `bson:"title,omitempty" json:"title,omitempty"`
	Content string `bson:"content,omitempty" json:"content,omitempty"`
	Tag     string `bson:"tag,omitempty" json:"tag,omitempty"`

	CreatedBy   string `bson:"created_by" json:"created_by"`
	AuthorName  string `bson:"author_name,omitempty" json:"author_name,omitempty"`
	AuthorImage string `bson:"author_image,omitempty" json:"author_image,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`

	UpVote   int `bson:"upVote" json:"upVote"`
	DownVote int `bson:"downVote" json:"downVote"`

	// Voters holds one record per user that voted; a userId appears at
	// most once and the record never changes after it is appended.
	Voters []VoteRecord `bson:"voters,omitempty" json:"voters,omitempty"`

	Comments []Comment `bson:"comments,omitempty" json:"comments,omitempty"`
}

// VoteRecord marks a single cast vote on a post.
type VoteRecord struct {
	UserID string `bson:"userId" json:"userId"`
	Type   string `bson:"type" json:"type"` // "up" or "down"
}

// Comment is embedded in its post; it has no standalone collection.
type Comment struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Text      string             `bson:"text" json:"text"`
	UserID    string             `bson:"userId" json:"userId"`
	UserName  string             `bson:"userName,omitempty" json:"userName,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
