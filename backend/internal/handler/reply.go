package handler

import (
	"net/http"

	"github.com/forum-api/forum/backend/internal/service"
	"github.com/forum-api/forum/shared/api"
	"github.com/forum-api/forum/shared/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) CreateReply(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	var body api.CreateReplyRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	added, err := h.reply.Add(r.Context(), service.AddReplyInput{
		ThreadId:  chi.URLParam(r, "threadId"),
		CommentId: chi.URLParam(r, "commentId"),
		Content:   h.sanitize(body.Content),
		Owner:     user.Id,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.CreateReplyResponse{AddedReply: added})
}

func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	err := h.reply.Delete(r.Context(), service.DeleteReplyInput{
		ThreadId:  chi.URLParam(r, "threadId"),
		CommentId: chi.URLParam(r, "commentId"),
		ReplyId:   chi.URLParam(r, "replyId"),
		Owner:     user.Id,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteStatus(w, http.StatusOK)
}
