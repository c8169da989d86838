package handler

import (
	"context"
	"html"
	"net/http"

	"github.com/forum-api/forum/backend/internal/service"
	"github.com/forum-api/forum/shared/config"
	"github.com/forum-api/forum/shared/domain"
	internal_errors "github.com/forum-api/forum/shared/errors"
	mw "github.com/forum-api/forum/shared/middleware"
	"github.com/forum-api/forum/shared/utils"
	"github.com/microcosm-cc/bluemonday"
)

// HealthChecker reports whether backing services are reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	auth    service.AuthService
	thread  service.ThreadService
	comment service.CommentService
	reply   service.ReplyService
	health  HealthChecker
	cfg     *config.Config
	policy  *bluemonday.Policy
}

func New(auth service.AuthService, thread service.ThreadService, comment service.CommentService, reply service.ReplyService, health HealthChecker, cfg *config.Config) *Handler {
	return &Handler{
		auth:    auth,
		thread:  thread,
		comment: comment,
		reply:   reply,
		health:  health,
		cfg:     cfg,
		policy:  bluemonday.StrictPolicy(),
	}
}

// sanitize strips every HTML tag from user supplied text.
// The policy escapes what it keeps, responses are JSON so entities are decoded back.
func (h *Handler) sanitize(s string) string {
	return html.UnescapeString(h.policy.Sanitize(s))
}

// requireUser returns the authenticated user or writes 401.
func requireUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteErrorAndStatusCode(w, &internal_errors.AuthenticationError{Code: internal_errors.InvalidToken, Message: "Missing authentication"})
		return nil, false
	}
	return user, true
}
