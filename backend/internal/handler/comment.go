package handler

import (
	"net/http"

	"github.com/forum-api/forum/backend/internal/service"
	"github.com/forum-api/forum/shared/api"
	"github.com/forum-api/forum/shared/domain"
	"github.com/forum-api/forum/shared/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	var body api.CreateCommentRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	added, err := h.comment.Add(r.Context(), domain.CommentCreationData{
		ThreadId: chi.URLParam(r, "threadId"),
		Content:  h.sanitize(body.Content),
		Owner:    user.Id,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.CreateCommentResponse{AddedComment: added})
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	err := h.comment.Delete(r.Context(), service.DeleteCommentInput{
		ThreadId:  chi.URLParam(r, "threadId"),
		CommentId: chi.URLParam(r, "commentId"),
		Owner:     user.Id,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteStatus(w, http.StatusOK)
}

func (h *Handler) ToggleCommentLike(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	err := h.comment.ToggleLike(r.Context(), service.ToggleLikeInput{
		ThreadId:  chi.URLParam(r, "threadId"),
		CommentId: chi.URLParam(r, "commentId"),
		UserId:    user.Id,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteStatus(w, http.StatusOK)
}
