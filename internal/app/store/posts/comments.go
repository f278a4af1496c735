// internal/app/store/posts/comments.go
package poststore

import (
	"context"
	"time"

	"github.com/dalemusser/forumhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AddComment appends a comment to the post's embedded sequence. The
// comment id and timestamp are generated here, never taken from the
// client. Returns ErrNotFound when the push matched no post; in that case
// nothing was written.
func (s *Store) AddComment(ctx context.Context, postID primitive.ObjectID, text, userID, userName string) (models.Comment, error) {
	comment := models.Comment{
		ID:        primitive.NewObjectID(),
		Text:      text,
		UserID:    userID,
		UserName:  userName,
		CreatedAt: time.Now().UTC(),
	}

	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$push": bson.M{"comments": comment}})
	if err != nil {
		return models.Comment{}, err
	}
	if res.MatchedCount == 0 {
		return models.Comment{}, ErrNotFound
	}
	return comment, nil
}

// DeleteComment removes a comment after verifying ownership. The check
// order is part of the API contract: post lookup, then comment lookup,
// then owner comparison. The stored userId is authoritative; the caller's
// claim is only compared against it, never trusted on its own.
func (s *Store) DeleteComment(ctx context.Context, postID, commentID primitive.ObjectID, userID string) error {
	post, err := s.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	var comment *models.Comment
	for i := range post.Comments {
		if post.Comments[i].ID == commentID {
			comment = &post.Comments[i]
			break
		}
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.UserID != userID {
		return ErrNotCommentOwner
	}

	_, err = s.c.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$pull": bson.M{"comments": bson.M{"_id": commentID}}})
	return err
}
