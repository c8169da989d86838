package handler

import (
	"net/http"

	"github.com/forum-api/forum/backend/internal/service"
	"github.com/forum-api/forum/shared/api"
	"github.com/forum-api/forum/shared/domain"
	"github.com/forum-api/forum/shared/utils"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var body api.RegisterUserRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	user, err := h.auth.Register(r.Context(), service.RegisterInput{
		Username: body.Username,
		Password: body.Password,
		Fullname: h.sanitize(body.Fullname),
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.RegisterUserResponse{AddedUser: user})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body api.LoginRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	accessToken, err := h.auth.Login(r.Context(), domain.Credentials{Username: body.Username, Password: body.Password})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	// browsers get the token as a cookie as well, the auth middleware accepts both
	http.SetCookie(w, &http.Cookie{
		Path:     "/",
		Name:     "accessToken",
		Value:    accessToken,
		MaxAge:   int(h.cfg.JwtTTL().Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.Public.SecureCookies,
		SameSite: http.SameSiteStrictMode,
	})

	utils.WriteJSON(w, http.StatusCreated, api.LoginResponse{AccessToken: accessToken})
}
