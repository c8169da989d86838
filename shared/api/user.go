package api

import "github.com/forum-api/forum/shared/domain"

// Request DTOs

type RegisterUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Fullname string `json:"fullname" validate:"required"`
}

// Response DTOs

type RegisterUserResponse struct {
	AddedUser domain.RegisteredUser `json:"addedUser"`
}
