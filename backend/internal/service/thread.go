package service

import (
	"context"
	"fmt"

	"github.com/forum-api/forum/shared/domain"
	"github.com/forum-api/forum/shared/errors"
	"github.com/forum-api/forum/shared/logger"
	"github.com/samber/lo"
)

type ThreadService interface {
	Add(ctx context.Context, creationData domain.ThreadCreationData) (domain.AddedThread, error)
	GetDetail(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error)
}

type Thread struct {
	threads  ThreadStorage
	comments CommentStorage
	replies  ReplyStorage
}

func NewThread(threads ThreadStorage, comments CommentStorage, replies ReplyStorage) *Thread {
	return &Thread{threads: threads, comments: comments, replies: replies}
}

func (t *Thread) Add(ctx context.Context, creationData domain.ThreadCreationData) (domain.AddedThread, error) {
	err := requireFields("ADD_THREAD",
		field{"title", creationData.Title},
		field{"body", creationData.Body},
		field{"owner", creationData.Owner},
	)
	if err != nil {
		return domain.AddedThread{}, err
	}
	added, err := t.threads.AddThread(ctx, creationData)
	if err != nil {
		return domain.AddedThread{}, err
	}
	// incomplete storage result is an internal error
	if err := added.Validate(); err != nil {
		return domain.AddedThread{}, fmt.Errorf("storage returned %v", err)
	}
	return added, nil
}

// GetDetail assembles a thread with its comments and their replies, oldest first.
// Deleted comments and replies keep their place but have their content masked.
func (t *Thread) GetDetail(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error) {
	if id == "" {
		return domain.ThreadDetail{}, errors.NewMissingField("GET_THREAD_DETAIL", "required fields missing: threadId")
	}

	thread, err := t.threads.GetThreadById(ctx, id)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	comments, err := t.comments.CommentsByThreadId(ctx, id)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	likes := map[domain.CommentId]int{}
	if len(comments) > 0 {
		ids := lo.Map(comments, func(c domain.Comment, _ int) domain.CommentId { return c.Id })
		likes, err = t.comments.LikeCounts(ctx, ids)
		if err != nil {
			return domain.ThreadDetail{}, err
		}
	}

	details := make([]domain.CommentDetail, 0, len(comments))
	for _, c := range comments {
		replies, err := t.replies.RepliesByCommentId(ctx, c.Id)
		if err != nil {
			return domain.ThreadDetail{}, err
		}
		replyDetails := lo.Map(replies, func(r domain.Reply, _ int) domain.ReplyDetail { return domain.NewReplyDetail(r) })
		details = append(details, domain.NewCommentDetail(c, likes[c.Id], replyDetails))
	}

	logger.From(ctx).Debug("thread detail assembled", "thread_id", id, "comments", len(details))

	return domain.ThreadDetail{
		Id:       thread.Id,
		Title:    thread.Title,
		Body:     thread.Body,
		Date:     thread.CreatedAt,
		Username: thread.Username,
		Comments: details,
	}, nil
}
