package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Validation codes
const (
	MissingField                = "MISSING_FIELD"
	BadType                     = "BAD_TYPE"
	UsernameTaken               = "USERNAME_TAKEN"
	UsernameTooLong             = "USERNAME_TOO_LONG"
	UsernameRestrictedCharacter = "USERNAME_RESTRICTED_CHARACTER"
)

// Not found codes
const (
	ThreadNotFound  = "THREAD_NOT_FOUND"
	CommentNotFound = "COMMENT_NOT_FOUND"
	ReplyNotFound   = "REPLY_NOT_FOUND"
	UserNotFound    = "USER_NOT_FOUND"
)

const (
	NotAuthorized      = "NOT_AUTHORIZED"
	InvalidCredentials = "INVALID_CREDENTIALS"
	InvalidToken       = "INVALID_TOKEN"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// ValidationError is returned when the caller sent a missing or malformed field.
// Op namespaces the failing operation, e.g. ADD_COMMENT.
type ValidationError struct {
	Op      string
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s.%s: %s", e.Op, e.Code, e.Message)
}

// NotFoundError is returned when a referenced thread, comment, reply or user does not exist.
type NotFoundError struct {
	Code    string
	Message string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AuthorizationError is returned when the caller is not the owner of the resource.
type AuthorizationError struct {
	Code    string
	Message string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AuthenticationError covers bad credentials and bad tokens.
type AuthenticationError struct {
	Code    string
	Message string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewMissingField(op, message string) *ValidationError {
	return &ValidationError{Op: op, Code: MissingField, Message: message}
}

func NewThreadNotFound() *NotFoundError {
	return &NotFoundError{Code: ThreadNotFound, Message: "thread not found"}
}

func NewCommentNotFound() *NotFoundError {
	return &NotFoundError{Code: CommentNotFound, Message: "comment not found"}
}

func NewReplyNotFound() *NotFoundError {
	return &NotFoundError{Code: ReplyNotFound, Message: "reply not found"}
}

func NewNotAuthorized(message string) *AuthorizationError {
	return &AuthorizationError{Code: NotAuthorized, Message: message}
}

// Is reports whether any error in err's chain is of type T.
func Is[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}

// HasCode reports whether err carries the given domain code.
func HasCode(err error, code string) bool {
	var (
		v  *ValidationError
		nf *NotFoundError
		az *AuthorizationError
		an *AuthenticationError
	)
	switch {
	case errors.As(err, &v):
		return v.Code == code
	case errors.As(err, &nf):
		return nf.Code == code
	case errors.As(err, &az):
		return az.Code == code
	case errors.As(err, &an):
		return an.Code == code
	}
	return false
}

func IsNotFound(err error) bool {
	return Is[*NotFoundError](err)
}

// StatusCode maps an error to the HTTP status the API reports for it.
func StatusCode(err error) int {
	var withCode *ErrorWithStatusCode
	if errors.As(err, &withCode) {
		return withCode.StatusCode
	}
	switch {
	case Is[*ValidationError](err):
		return http.StatusBadRequest
	case Is[*NotFoundError](err):
		return http.StatusNotFound
	case Is[*AuthorizationError](err):
		return http.StatusForbidden
	case Is[*AuthenticationError](err):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}
