package service

import (
	"context"
	"fmt"

	"github.com/forum-api/forum/shared/domain"
)

type ReplyService interface {
	Add(ctx context.Context, input AddReplyInput) (domain.AddedReply, error)
	Delete(ctx context.Context, input DeleteReplyInput) error
}

type AddReplyInput struct {
	ThreadId  domain.ThreadId
	CommentId domain.CommentId
	Content   domain.ReplyContent
	Owner     domain.UserId
}

type DeleteReplyInput struct {
	ThreadId  domain.ThreadId
	CommentId domain.CommentId
	ReplyId   domain.ReplyId
	Owner     domain.UserId
}

type Reply struct {
	threads  ThreadStorage
	comments CommentStorage
	replies  ReplyStorage
}

func NewReply(threads ThreadStorage, comments CommentStorage, replies ReplyStorage) *Reply {
	return &Reply{threads: threads, comments: comments, replies: replies}
}

func (r *Reply) Add(ctx context.Context, input AddReplyInput) (domain.AddedReply, error) {
	err := requireFields("ADD_REPLY",
		field{"threadId", input.ThreadId},
		field{"commentId", input.CommentId},
		field{"content", input.Content},
		field{"owner", input.Owner},
	)
	if err != nil {
		return domain.AddedReply{}, err
	}
	if err := threadMustExist(ctx, r.threads, input.ThreadId); err != nil {
		return domain.AddedReply{}, err
	}
	if err := commentMustExist(ctx, r.comments, input.CommentId); err != nil {
		return domain.AddedReply{}, err
	}
	added, err := r.replies.AddReply(ctx, domain.ReplyCreationData{
		CommentId: input.CommentId,
		Content:   input.Content,
		Owner:     input.Owner,
	})
	if err != nil {
		return domain.AddedReply{}, err
	}
	if err := added.Validate(); err != nil {
		return domain.AddedReply{}, fmt.Errorf("storage returned %v", err)
	}
	return added, nil
}

// Delete soft-deletes a reply after checking the whole path down to it and its ownership.
func (r *Reply) Delete(ctx context.Context, input DeleteReplyInput) error {
	err := requireFields("DELETE_REPLY",
		field{"threadId", input.ThreadId},
		field{"commentId", input.CommentId},
		field{"replyId", input.ReplyId},
		field{"owner", input.Owner},
	)
	if err != nil {
		return err
	}
	if err := threadMustExist(ctx, r.threads, input.ThreadId); err != nil {
		return err
	}
	if err := commentMustExist(ctx, r.comments, input.CommentId); err != nil {
		return err
	}
	if err := r.replies.VerifyReplyExists(ctx, input.ReplyId); err != nil {
		return err
	}
	if err := r.replies.VerifyReplyOwnership(ctx, input.ReplyId, input.Owner); err != nil {
		return err
	}
	return r.replies.DeleteReplyById(ctx, input.ReplyId)
}
