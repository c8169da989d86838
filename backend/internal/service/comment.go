package service

import (
	"context"
	"fmt"

	"github.com/forum-api/forum/shared/domain"
	"github.com/forum-api/forum/shared/errors"
)

type CommentService interface {
	Add(ctx context.Context, creationData domain.CommentCreationData) (domain.AddedComment, error)
	Delete(ctx context.Context, input DeleteCommentInput) error
	ToggleLike(ctx context.Context, input ToggleLikeInput) error
}

type DeleteCommentInput struct {
	ThreadId  domain.ThreadId
	CommentId domain.CommentId
	Owner     domain.UserId
}

type ToggleLikeInput struct {
	ThreadId  domain.ThreadId
	CommentId domain.CommentId
	UserId    domain.UserId
}

type Comment struct {
	threads  ThreadStorage
	comments CommentStorage
}

func NewComment(threads ThreadStorage, comments CommentStorage) *Comment {
	return &Comment{threads: threads, comments: comments}
}

func (c *Comment) Add(ctx context.Context, creationData domain.CommentCreationData) (domain.AddedComment, error) {
	err := requireFields("ADD_COMMENT",
		field{"threadId", creationData.ThreadId},
		field{"content", creationData.Content},
		field{"owner", creationData.Owner},
	)
	if err != nil {
		return domain.AddedComment{}, err
	}
	if err := threadMustExist(ctx, c.threads, creationData.ThreadId); err != nil {
		return domain.AddedComment{}, err
	}
	added, err := c.comments.AddComment(ctx, creationData)
	if err != nil {
		return domain.AddedComment{}, err
	}
	if err := added.Validate(); err != nil {
		return domain.AddedComment{}, fmt.Errorf("storage returned %v", err)
	}
	return added, nil
}

// Delete soft-deletes a comment. Only its owner may do so.
// Deleting an already deleted comment succeeds.
func (c *Comment) Delete(ctx context.Context, input DeleteCommentInput) error {
	err := requireFields("DELETE_COMMENT",
		field{"threadId", input.ThreadId},
		field{"commentId", input.CommentId},
		field{"owner", input.Owner},
	)
	if err != nil {
		return err
	}
	if err := threadMustExist(ctx, c.threads, input.ThreadId); err != nil {
		return err
	}
	if err := commentMustExist(ctx, c.comments, input.CommentId); err != nil {
		return err
	}

	owner, err := c.comments.CommentOwner(ctx, input.CommentId)
	if err != nil {
		return err
	}
	if owner != input.Owner {
		return errors.NewNotAuthorized("you are not the owner of this comment")
	}

	return c.comments.DeleteComment(ctx, input.CommentId)
}

// ToggleLike likes the comment for the user, or removes the like if it is already there.
func (c *Comment) ToggleLike(ctx context.Context, input ToggleLikeInput) error {
	err := requireFields("TOGGLE_COMMENT_LIKE",
		field{"threadId", input.ThreadId},
		field{"commentId", input.CommentId},
		field{"userId", input.UserId},
	)
	if err != nil {
		return err
	}
	if err := threadMustExist(ctx, c.threads, input.ThreadId); err != nil {
		return err
	}
	if err := commentMustExist(ctx, c.comments, input.CommentId); err != nil {
		return err
	}

	liked, err := c.comments.CheckUserLikedComment(ctx, input.UserId, input.CommentId)
	if err != nil {
		return err
	}
	if liked {
		return c.comments.UnlikeComment(ctx, input.UserId, input.CommentId)
	}
	return c.comments.LikeComment(ctx, input.UserId, input.CommentId)
}

func threadMustExist(ctx context.Context, threads ThreadStorage, id domain.ThreadId) error {
	ok, err := threads.VerifyThreadExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return errors.NewThreadNotFound()
	}
	return nil
}

func commentMustExist(ctx context.Context, comments CommentStorage, id domain.CommentId) error {
	ok, err := comments.VerifyCommentExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return errors.NewCommentNotFound()
	}
	return nil
}
