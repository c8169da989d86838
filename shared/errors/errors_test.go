package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"validation", NewMissingField("ADD_THREAD", "title is required"), http.StatusBadRequest},
		{"not found", NewThreadNotFound(), http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("storage: %w", NewCommentNotFound()), http.StatusNotFound},
		{"authorization", NewNotAuthorized("not your comment"), http.StatusForbidden},
		{"authentication", &AuthenticationError{Code: InvalidCredentials}, http.StatusUnauthorized},
		{"explicit status", &ErrorWithStatusCode{Message: "too many", StatusCode: http.StatusTooManyRequests}, http.StatusTooManyRequests},
		{"unknown", errors.New("connection refused"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusCode(tt.err))
		})
	}
}

func TestHasCode(t *testing.T) {
	assert.True(t, HasCode(NewThreadNotFound(), ThreadNotFound))
	assert.False(t, HasCode(NewThreadNotFound(), CommentNotFound))
	assert.True(t, HasCode(fmt.Errorf("wrap: %w", NewNotAuthorized("x")), NotAuthorized))
	assert.False(t, HasCode(errors.New("plain"), NotAuthorized))
}

func TestIs(t *testing.T) {
	assert.True(t, Is[*NotFoundError](NewReplyNotFound()))
	assert.False(t, Is[*ValidationError](NewReplyNotFound()))
	assert.True(t, IsNotFound(fmt.Errorf("ctx: %w", NewReplyNotFound())))
}

func TestValidationErrorMessage(t *testing.T) {
	err := NewMissingField("ADD_COMMENT", "content is required")
	assert.Equal(t, "ADD_COMMENT.MISSING_FIELD: content is required", err.Error())
	err.Op = ""
	assert.Equal(t, "MISSING_FIELD: content is required", err.Error())
}
