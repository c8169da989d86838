package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/forum-api/forum/shared/api"
	"github.com/forum-api/forum/shared/domain"
	internal_errors "github.com/forum-api/forum/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateThreadHandler(t *testing.T) {
	route := "/threads"
	body := []byte(`{"title":"sebuah thread","body":"<script>alert(1)</script>isi sebuah thread"}`)

	t.Run("successful request", func(t *testing.T) {
		h := newTestHandler()
		h.thread = &MockThreadService{
			MockAdd: func(_ context.Context, data domain.ThreadCreationData) (domain.AddedThread, error) {
				assert.Equal(t, domain.ThreadCreationData{Title: "sebuah thread", Body: "isi sebuah thread", Owner: testUser.Id}, data)
				return domain.AddedThread{Id: "thread-123", Title: data.Title, Owner: data.Owner}, nil
			},
		}

		rr := serve(http.MethodPost, route, h.CreateThread, createRequest(t, http.MethodPost, route, body, testUser))

		require.Equal(t, http.StatusCreated, rr.Code)
		var data api.CreateThreadResponse
		decodeEnvelope(t, rr, &data)
		assert.Equal(t, domain.AddedThread{Id: "thread-123", Title: "sebuah thread", Owner: testUser.Id}, data.AddedThread)
	})

	t.Run("no user in context", func(t *testing.T) {
		h := newTestHandler()

		rr := serve(http.MethodPost, route, h.CreateThread, createRequest(t, http.MethodPost, route, body, nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("bad type", func(t *testing.T) {
		h := newTestHandler()

		rr := serve(http.MethodPost, route, h.CreateThread, createRequest(t, http.MethodPost, route, []byte(`{"title":true,"body":"b"}`), testUser))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("missing field", func(t *testing.T) {
		h := newTestHandler()
		h.thread = &MockThreadService{
			MockAdd: func(context.Context, domain.ThreadCreationData) (domain.AddedThread, error) {
				return domain.AddedThread{}, internal_errors.NewMissingField("ADD_THREAD", "required fields missing: body")
			},
		}

		rr := serve(http.MethodPost, route, h.CreateThread, createRequest(t, http.MethodPost, route, []byte(`{"title":"t"}`), testUser))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		env := decodeEnvelope(t, rr, nil)
		assert.Equal(t, "fail", env.Status)
		assert.Contains(t, env.Message, "ADD_THREAD.MISSING_FIELD")
	})
}

func TestGetThreadHandler(t *testing.T) {
	pattern := "/threads/{threadId}"
	date := time.Date(2021, 8, 8, 7, 19, 9, 0, time.UTC)

	t.Run("successful request", func(t *testing.T) {
		h := newTestHandler()
		h.thread = &MockThreadService{
			MockGetDetail: func(_ context.Context, id domain.ThreadId) (domain.ThreadDetail, error) {
				assert.Equal(t, "thread-123", id)
				return domain.ThreadDetail{
					Id:       id,
					Title:    "sebuah thread",
					Body:     "isi sebuah thread",
					Date:     date,
					Username: "dicoding",
					Comments: []domain.CommentDetail{{
						Id:        "comment-1",
						Username:  "johndoe",
						Date:      date,
						Content:   domain.DeletedCommentContent,
						LikeCount: 2,
						Replies:   []domain.ReplyDetail{},
					}},
				}, nil
			},
		}

		rr := serve(http.MethodGet, pattern, h.GetThread, createRequest(t, http.MethodGet, "/threads/thread-123", nil, nil))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"likeCount":2`)
		assert.Contains(t, rr.Body.String(), `"replies":[]`)

		var data api.ThreadResponse
		decodeEnvelope(t, rr, &data)
		assert.Equal(t, "sebuah thread", data.Thread.Title)
		require.Len(t, data.Thread.Comments, 1)
		assert.Equal(t, domain.DeletedCommentContent, data.Thread.Comments[0].Content)
	})

	t.Run("not found", func(t *testing.T) {
		h := newTestHandler()
		h.thread = &MockThreadService{
			MockGetDetail: func(context.Context, domain.ThreadId) (domain.ThreadDetail, error) {
				return domain.ThreadDetail{}, internal_errors.NewThreadNotFound()
			},
		}

		rr := serve(http.MethodGet, pattern, h.GetThread, createRequest(t, http.MethodGet, "/threads/thread-x", nil, nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		env := decodeEnvelope(t, rr, nil)
		assert.Equal(t, "fail", env.Status)
	})
}
