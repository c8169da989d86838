package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/forum-api/forum/backend/internal/service"
	"github.com/forum-api/forum/shared/config"
	"github.com/forum-api/forum/shared/domain"
	mw "github.com/forum-api/forum/shared/middleware"
	"github.com/forum-api/forum/shared/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockAuthService struct {
	MockRegister func(ctx context.Context, input service.RegisterInput) (domain.RegisteredUser, error)
	MockLogin    func(ctx context.Context, creds domain.Credentials) (string, error)
}

func (m *MockAuthService) Register(ctx context.Context, input service.RegisterInput) (domain.RegisteredUser, error) {
	if m.MockRegister != nil {
		return m.MockRegister(ctx, input)
	}
	return domain.RegisteredUser{}, nil
}

func (m *MockAuthService) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	if m.MockLogin != nil {
		return m.MockLogin(ctx, creds)
	}
	return "", nil
}

type MockThreadService struct {
	MockAdd       func(ctx context.Context, data domain.ThreadCreationData) (domain.AddedThread, error)
	MockGetDetail func(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error)
}

func (m *MockThreadService) Add(ctx context.Context, data domain.ThreadCreationData) (domain.AddedThread, error) {
	if m.MockAdd != nil {
		return m.MockAdd(ctx, data)
	}
	return domain.AddedThread{}, nil
}

func (m *MockThreadService) GetDetail(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error) {
	if m.MockGetDetail != nil {
		return m.MockGetDetail(ctx, id)
	}
	return domain.ThreadDetail{}, nil
}

type MockCommentService struct {
	MockAdd        func(ctx context.Context, data domain.CommentCreationData) (domain.AddedComment, error)
	MockDelete     func(ctx context.Context, input service.DeleteCommentInput) error
	MockToggleLike func(ctx context.Context, input service.ToggleLikeInput) error
}

func (m *MockCommentService) Add(ctx context.Context, data domain.CommentCreationData) (domain.AddedComment, error) {
	if m.MockAdd != nil {
		return m.MockAdd(ctx, data)
	}
	return domain.AddedComment{}, nil
}

func (m *MockCommentService) Delete(ctx context.Context, input service.DeleteCommentInput) error {
	if m.MockDelete != nil {
		return m.MockDelete(ctx, input)
	}
	return nil
}

func (m *MockCommentService) ToggleLike(ctx context.Context, input service.ToggleLikeInput) error {
	if m.MockToggleLike != nil {
		return m.MockToggleLike(ctx, input)
	}
	return nil
}

type MockReplyService struct {
	MockAdd    func(ctx context.Context, input service.AddReplyInput) (domain.AddedReply, error)
	MockDelete func(ctx context.Context, input service.DeleteReplyInput) error
}

func (m *MockReplyService) Add(ctx context.Context, input service.AddReplyInput) (domain.AddedReply, error) {
	if m.MockAdd != nil {
		return m.MockAdd(ctx, input)
	}
	return domain.AddedReply{}, nil
}

func (m *MockReplyService) Delete(ctx context.Context, input service.DeleteReplyInput) error {
	if m.MockDelete != nil {
		return m.MockDelete(ctx, input)
	}
	return nil
}

type MockHealthChecker struct {
	PingFunc func(ctx context.Context) error
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

// --- Helpers ---

func newTestHandler() *Handler {
	cfg := &config.Config{Public: config.Public{JwtTTL: time.Hour}}
	return New(&MockAuthService{}, &MockThreadService{}, &MockCommentService{}, &MockReplyService{}, &MockHealthChecker{}, cfg)
}

func createRequest(t *testing.T, method, url string, body []byte, user *domain.User) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewBuffer(body))
	if user != nil {
		req = req.WithContext(context.WithValue(req.Context(), mw.UserClaimsKey, user))
	}
	return req
}

// serve routes the request through chi so that URL params are populated.
func serve(method, pattern string, handler http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.MethodFunc(method, pattern, handler)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, data any) utils.Envelope {
	t.Helper()
	var raw struct {
		Status  string          `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw), "body: %s", rr.Body.String())
	if data != nil {
		require.NoError(t, json.Unmarshal(raw.Data, data))
	}
	return utils.Envelope{Status: raw.Status, Message: raw.Message}
}

var testUser = &domain.User{Id: "user-123", Username: "dicoding"}

func TestSanitize(t *testing.T) {
	h := newTestHandler()

	tests := []struct {
		in, want string
	}{
		{"don't", "don't"},
		{"a & b", "a & b"},
		{`say "hi"`, `say "hi"`},
		{"1 < 2", "1 < 2"},
		{"<script>alert(1)</script>ok", "ok"},
		{`<a href="x">link</a>`, "link"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, h.sanitize(tt.in), "input %q", tt.in)
	}
}
