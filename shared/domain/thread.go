package domain

import (
	"time"

	"github.com/forum-api/forum/shared/errors"
)

// to iterate thru layers: handler -> service -> storage
type ThreadCreationData struct {
	Title ThreadTitle
	Body  ThreadBody
	Owner UserId
}

type Thread struct {
	Id        ThreadId
	Title     ThreadTitle
	Body      ThreadBody
	Owner     UserId
	Username  Username // resolved from Owner by storage
	CreatedAt time.Time
}

// AddedThread is the public view returned after a thread is created.
type AddedThread struct {
	Id    ThreadId    `json:"id"`
	Title ThreadTitle `json:"title"`
	Owner UserId      `json:"owner"`
}

func (a AddedThread) Validate() error {
	if a.Id == "" || a.Title == "" || a.Owner == "" {
		return errors.NewMissingField("ADDED_THREAD", "added thread must have id, title and owner")
	}
	return nil
}

// ThreadDetail is the aggregated read model of a thread with its comments and replies.
type ThreadDetail struct {
	Id       ThreadId        `json:"id"`
	Title    ThreadTitle     `json:"title"`
	Body     ThreadBody      `json:"body"`
	Date     time.Time       `json:"date"`
	Username Username        `json:"username"`
	Comments []CommentDetail `json:"comments"`
}
