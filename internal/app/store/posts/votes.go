// internal/app/store/posts/votes.go
package poststore

import (
	"context"

	"github.com/dalemusser/forumhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// VoteCounts is the post's tally after a vote lands.
type VoteCounts struct {
	UpVote   int `bson:"upVote" json:"upVote"`
	DownVote int `bson:"downVote" json:"downVote"`
}

// CastVote records a single up/down vote for userID on the post.
//
// The already-voted check and the write are ONE conditional update: the
// filter only matches when no voter record for userID exists, and the
// update increments the count and appends the record together. Mongo
// applies the compound update atomically per document, so two concurrent
// voters can never lose an increment and the same user can never slip in
// twice.
//
// Failures rank in the order the API promises them: ErrNotFound when the
// post is absent, then ErrAlreadyVoted, then ErrInvalidVoteType. The
// ranking is resolved by a follow-up read, which is safe because a voter
// record is never removed once appended.
func (s *Store) CastVote(ctx context.Context, postID primitive.ObjectID, userID, voteType string) (VoteCounts, error) {
	var field string
	switch voteType {
	case "up":
		field = "upVote"
	case "down":
		field = "downVote"
	}

	if field != "" {
		filter := bson.M{
			"_id":           postID,
			"voters.userId": bson.M{"$ne": userID},
		}
		update := bson.M{
			"$inc":  bson.M{field: 1},
			"$push": bson.M{"voters": models.VoteRecord{UserID: userID, Type: voteType}},
		}

		opts := options.FindOneAndUpdate().
			SetReturnDocument(options.After).
			SetProjection(bson.M{"upVote": 1, "downVote": 1})

		var counts VoteCounts
		err := s.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&counts)
		if err == nil {
			return counts, nil
		}
		if err != mongo.ErrNoDocuments {
			return VoteCounts{}, err
		}
	}

	// Nothing was written. Load the post's voter record for userID (if
	// any) to rank the failure.
	var existing struct {
		Voters []models.VoteRecord `bson:"voters"`
	}
	err := s.c.FindOne(ctx, bson.M{"_id": postID},
		options.FindOne().SetProjection(bson.M{
			"voters": bson.M{"$elemMatch": bson.M{"userId": userID}},
		})).Decode(&existing)
	if err == mongo.ErrNoDocuments {
		return VoteCounts{}, ErrNotFound
	}
	if err != nil {
		return VoteCounts{}, err
	}
	if len(existing.Voters) > 0 {
		return VoteCounts{}, ErrAlreadyVoted
	}
	if field == "" {
		return VoteCounts{}, ErrInvalidVoteType
	}
	// Voters are never removed, so a missed conditional update with a
	// valid type means the record landed between the two reads.
	return VoteCounts{}, ErrAlreadyVoted
}
