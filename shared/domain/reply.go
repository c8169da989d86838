package domain

import (
	"time"

	"github.com/forum-api/forum/shared/errors"
)

// DeletedReplyContent replaces the content of a soft-deleted reply on every read.
const DeletedReplyContent = "**balasan telah dihapus**"

// to iterate thru layers: handler -> service -> storage
type ReplyCreationData struct {
	CommentId CommentId
	Content   ReplyContent
	Owner     UserId
}

type Reply struct {
	Id        ReplyId
	CommentId CommentId
	Content   ReplyContent
	Owner     UserId
	Username  Username
	CreatedAt time.Time
	IsDeleted bool
}

type AddedReply struct {
	Id      ReplyId      `json:"id"`
	Content ReplyContent `json:"content"`
	Owner   UserId       `json:"owner"`
}

func (a AddedReply) Validate() error {
	if a.Id == "" || a.Content == "" || a.Owner == "" {
		return errors.NewMissingField("ADDED_REPLY", "added reply must have id, content and owner")
	}
	return nil
}

type ReplyDetail struct {
	Id       ReplyId      `json:"id"`
	Username Username     `json:"username"`
	Date     time.Time    `json:"date"`
	Content  ReplyContent `json:"content"`
}

func NewReplyDetail(r Reply) ReplyDetail {
	content := r.Content
	if r.IsDeleted {
		content = DeletedReplyContent
	}
	return ReplyDetail{
		Id:       r.Id,
		Username: r.Username,
		Date:     r.CreatedAt,
		Content:  content,
	}
}
