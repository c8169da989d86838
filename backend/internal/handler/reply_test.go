package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/forum-api/forum/backend/internal/service"
	"github.com/forum-api/forum/shared/api"
	"github.com/forum-api/forum/shared/domain"
	internal_errors "github.com/forum-api/forum/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReplyHandler(t *testing.T) {
	pattern := "/threads/{threadId}/comments/{commentId}/replies"
	url := "/threads/thread-123/comments/comment-123/replies"

	t.Run("successful request", func(t *testing.T) {
		h := newTestHandler()
		h.reply = &MockReplyService{
			MockAdd: func(_ context.Context, input service.AddReplyInput) (domain.AddedReply, error) {
				assert.Equal(t, service.AddReplyInput{ThreadId: "thread-123", CommentId: "comment-123", Content: "sebuah balasan", Owner: testUser.Id}, input)
				return domain.AddedReply{Id: "reply-123", Content: input.Content, Owner: input.Owner}, nil
			},
		}

		rr := serve(http.MethodPost, pattern, h.CreateReply, createRequest(t, http.MethodPost, url, []byte(`{"content":"sebuah balasan"}`), testUser))

		require.Equal(t, http.StatusCreated, rr.Code)
		var data api.CreateReplyResponse
		decodeEnvelope(t, rr, &data)
		assert.Equal(t, domain.AddedReply{Id: "reply-123", Content: "sebuah balasan", Owner: testUser.Id}, data.AddedReply)
	})

	t.Run("comment not found", func(t *testing.T) {
		h := newTestHandler()
		h.reply = &MockReplyService{
			MockAdd: func(context.Context, service.AddReplyInput) (domain.AddedReply, error) {
				return domain.AddedReply{}, internal_errors.NewCommentNotFound()
			},
		}

		rr := serve(http.MethodPost, pattern, h.CreateReply, createRequest(t, http.MethodPost, url, []byte(`{"content":"r"}`), testUser))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestDeleteReplyHandler(t *testing.T) {
	pattern := "/threads/{threadId}/comments/{commentId}/replies/{replyId}"
	url := "/threads/thread-123/comments/comment-123/replies/reply-123"

	t.Run("successful request", func(t *testing.T) {
		h := newTestHandler()
		h.reply = &MockReplyService{
			MockDelete: func(_ context.Context, input service.DeleteReplyInput) error {
				assert.Equal(t, service.DeleteReplyInput{ThreadId: "thread-123", CommentId: "comment-123", ReplyId: "reply-123", Owner: testUser.Id}, input)
				return nil
			},
		}

		rr := serve(http.MethodDelete, pattern, h.DeleteReply, createRequest(t, http.MethodDelete, url, nil, testUser))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("reply not found", func(t *testing.T) {
		h := newTestHandler()
		h.reply = &MockReplyService{
			MockDelete: func(context.Context, service.DeleteReplyInput) error {
				return internal_errors.NewReplyNotFound()
			},
		}

		rr := serve(http.MethodDelete, pattern, h.DeleteReply, createRequest(t, http.MethodDelete, url, nil, testUser))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("not owner", func(t *testing.T) {
		h := newTestHandler()
		h.reply = &MockReplyService{
			MockDelete: func(context.Context, service.DeleteReplyInput) error {
				return internal_errors.NewNotAuthorized("you are not the owner of this reply")
			},
		}

		rr := serve(http.MethodDelete, pattern, h.DeleteReply, createRequest(t, http.MethodDelete, url, nil, testUser))

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
