package domain

import (
	"time"

	"github.com/forum-api/forum/shared/errors"
)

// DeletedCommentContent replaces the content of a soft-deleted comment on every read.
const DeletedCommentContent = "**komentar telah dihapus**"

// to iterate thru layers: handler -> service -> storage
type CommentCreationData struct {
	ThreadId ThreadId
	Content  CommentContent
	Owner    UserId
}

// Comment is a stored comment. Content holds the original text even when IsDeleted is set.
type Comment struct {
	Id        CommentId
	ThreadId  ThreadId
	Content   CommentContent
	Owner     UserId
	Username  Username // resolved from Owner by storage
	CreatedAt time.Time
	IsDeleted bool
}

type AddedComment struct {
	Id      CommentId      `json:"id"`
	Content CommentContent `json:"content"`
	Owner   UserId         `json:"owner"`
}

func (a AddedComment) Validate() error {
	if a.Id == "" || a.Content == "" || a.Owner == "" {
		return errors.NewMissingField("ADDED_COMMENT", "added comment must have id, content and owner")
	}
	return nil
}

type CommentDetail struct {
	Id        CommentId      `json:"id"`
	Username  Username       `json:"username"`
	Date      time.Time      `json:"date"`
	Content   CommentContent `json:"content"`
	LikeCount int            `json:"likeCount"`
	Replies   []ReplyDetail  `json:"replies"`
}

// NewCommentDetail projects a stored comment into its public view, masking deleted content.
// Replies is always non-nil so that it renders as an empty list.
func NewCommentDetail(c Comment, likeCount int, replies []ReplyDetail) CommentDetail {
	content := c.Content
	if c.IsDeleted {
		content = DeletedCommentContent
	}
	if replies == nil {
		replies = []ReplyDetail{}
	}
	return CommentDetail{
		Id:        c.Id,
		Username:  c.Username,
		Date:      c.CreatedAt,
		Content:   content,
		LikeCount: likeCount,
		Replies:   replies,
	}
}
