package api

import (
	"github.com/forum-api/forum/shared/domain"
)

// Request DTOs

// Required fields are checked by the service layer so every caller gets the same MISSING_FIELD error.
type CreateThreadRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type CreateCommentRequest struct {
	Content string `json:"content"`
}

type CreateReplyRequest struct {
	Content string `json:"content"`
}

// Response DTOs

type CreateThreadResponse struct {
	AddedThread domain.AddedThread `json:"addedThread"`
}

type ThreadResponse struct {
	Thread domain.ThreadDetail `json:"thread"`
}

type CreateCommentResponse struct {
	AddedComment domain.AddedComment `json:"addedComment"`
}

type CreateReplyResponse struct {
	AddedReply domain.AddedReply `json:"addedReply"`
}
