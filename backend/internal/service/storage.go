package service

//go:generate mockgen -source=storage.go -destination=mocks/storage.go -package=mocks

import (
	"context"

	"github.com/forum-api/forum/shared/domain"
)

type ThreadStorage interface {
	AddThread(ctx context.Context, creationData domain.ThreadCreationData) (domain.AddedThread, error)
	VerifyThreadExists(ctx context.Context, id domain.ThreadId) (bool, error)
	// GetThreadById returns a NotFoundError when the thread does not exist.
	GetThreadById(ctx context.Context, id domain.ThreadId) (domain.Thread, error)
}

type CommentStorage interface {
	AddComment(ctx context.Context, creationData domain.CommentCreationData) (domain.AddedComment, error)
	VerifyCommentExists(ctx context.Context, id domain.CommentId) (bool, error)
	// CommentOwner returns a NotFoundError when the comment does not exist.
	CommentOwner(ctx context.Context, id domain.CommentId) (domain.UserId, error)
	// CommentsByThreadId returns comments oldest first, deleted ones included.
	CommentsByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.Comment, error)
	DeleteComment(ctx context.Context, id domain.CommentId) error

	CheckUserLikedComment(ctx context.Context, userId domain.UserId, commentId domain.CommentId) (bool, error)
	LikeComment(ctx context.Context, userId domain.UserId, commentId domain.CommentId) error
	UnlikeComment(ctx context.Context, userId domain.UserId, commentId domain.CommentId) error
	LikeCount(ctx context.Context, commentId domain.CommentId) (int, error)
	// LikeCounts omits comments without likes.
	LikeCounts(ctx context.Context, commentIds []domain.CommentId) (map[domain.CommentId]int, error)
}

type ReplyStorage interface {
	AddReply(ctx context.Context, creationData domain.ReplyCreationData) (domain.AddedReply, error)
	// RepliesByCommentId returns replies oldest first, deleted ones included.
	RepliesByCommentId(ctx context.Context, commentId domain.CommentId) ([]domain.Reply, error)
	// VerifyReplyExists returns a NotFoundError when the reply does not exist.
	VerifyReplyExists(ctx context.Context, id domain.ReplyId) error
	ReplyOwner(ctx context.Context, id domain.ReplyId) (domain.UserId, error)
	// VerifyReplyOwnership returns an AuthorizationError when owner did not write the reply.
	VerifyReplyOwnership(ctx context.Context, id domain.ReplyId, owner domain.UserId) error
	DeleteReplyById(ctx context.Context, id domain.ReplyId) error
}

type UserStorage interface {
	AddUser(ctx context.Context, creationData domain.UserCreationData) (domain.User, error)
	// UserByUsername returns a NotFoundError when no such user exists.
	UserByUsername(ctx context.Context, username domain.Username) (domain.User, error)
	UsernameExists(ctx context.Context, username domain.Username) (bool, error)
}
