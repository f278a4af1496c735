// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered forum user.
//
// Email is the unique key: registration is idempotent on it, and the
// membership upsert addresses users by email rather than by id. Profile
// fields beyond email are pass-through from the client and are stored as
// received.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email    string             `bson:"email" json:"email"`
	Name     string             `bson:"name,omitempty" json:"name,omitempty"`
	PhotoURL string             `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	Role     string             `bson:"role,omitempty" json:"role,omitempty"`

	// IsMember is flipped by the membership upsert after a successful
	// client-side payment confirmation.
	IsMember bool `bson:"is_member" json:"isMember"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
