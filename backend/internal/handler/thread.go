package handler

import (
	"net/http"

	"github.com/forum-api/forum/shared/api"
	"github.com/forum-api/forum/shared/domain"
	"github.com/forum-api/forum/shared/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	var body api.CreateThreadRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	added, err := h.thread.Add(r.Context(), domain.ThreadCreationData{
		Title: h.sanitize(body.Title),
		Body:  h.sanitize(body.Body),
		Owner: user.Id,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.CreateThreadResponse{AddedThread: added})
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	detail, err := h.thread.GetDetail(r.Context(), chi.URLParam(r, "threadId"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.ThreadResponse{Thread: detail})
}
