package rest

import (
	"bytes"
	"chatterbox/domain"
	"chatterbox/errors"
	"chatterbox/mocks"
	"chatterbox/observability"
	"chatterbox/services"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	auth     *mocks.MockIAuthService
	users    *mocks.MockIUserService
	chat     *mocks.MockIChatService
	presence *mocks.MockIOrchestrator
	router   *mux.Router
}

func TestRestSuite(t *testing.T) {
	suite.Run(t, new(RestSuite))
}

func (s *RestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.auth = mocks.NewMockIAuthService(s.ctrl)
	s.users = mocks.NewMockIUserService(s.ctrl)
	s.chat = mocks.NewMockIChatService(s.ctrl)
	s.presence = mocks.NewMockIOrchestrator(s.ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := NewServer(logger, s.auth, s.users, s.chat, s.presence, observability.NewMonitoringManager(), "*")
	s.router = server.Router(nil)
}

func (s *RestSuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	r := httptest.NewRequest(method, path, reader)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, r)
	return w
}

func (s *RestSuite) authenticated(id domain.Identity) string {
	s.auth.EXPECT().Authenticate("token-"+string(id)).Return(id, nil).AnyTimes()
	return "token-" + string(id)
}

func (s *RestSuite) message(w *httptest.ResponseRecorder) string {
	var body errorResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body.Message
}

func (s *RestSuite) TestRegister_Created() {
	s.auth.EXPECT().Register(gomock.Any(), "alice", "ComplexPass123!").Return(services.Session{
		User:  domain.Participant{ID: "a1", Username: "alice"},
		Token: "jwt",
	}, nil)

	w := s.do(http.MethodPost, "/api/auth/register", "", credentialsRequest{Username: "alice", Password: "ComplexPass123!"})

	s.Equal(http.StatusCreated, w.Code)
	var body sessionResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal(sessionResponse{ID: "a1", Username: "alice", Token: "jwt"}, body)
}

func (s *RestSuite) TestRegister_Duplicate() {
	s.auth.EXPECT().Register(gomock.Any(), "alice", gomock.Any()).Return(services.Session{}, errors.ErrUserAlreadyExists)

	w := s.do(http.MethodPost, "/api/auth/register", "", credentialsRequest{Username: "alice", Password: "ComplexPass123!"})

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(errors.ErrUserAlreadyExists.Error(), s.message(w))
}

func (s *RestSuite) TestLogin_Invalid_Credentials() {
	s.auth.EXPECT().Login(gomock.Any(), "alice", "nope").Return(services.Session{}, errors.ErrInvalidCredentials)

	w := s.do(http.MethodPost, "/api/auth/login", "", credentialsRequest{Username: "alice", Password: "nope"})

	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *RestSuite) TestLogin_Malformed_Body() {
	w := s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"username": "alice"})

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RestSuite) TestPrivate_Routes_Require_Bearer() {
	for _, path := range []string{"/api/auth/me", "/api/users", "/api/chat/bob", "/api/presence"} {
		w := s.do(http.MethodGet, path, "", nil)
		s.Equal(http.StatusUnauthorized, w.Code, path)
	}

	s.auth.EXPECT().Authenticate("forged").Return(domain.Identity(""), errors.ErrUnauthorized)
	w := s.do(http.MethodGet, "/api/users", "forged", nil)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *RestSuite) TestMe_And_Users() {
	token := s.authenticated("a1")
	s.users.EXPECT().GetUser(gomock.Any(), domain.Identity("a1")).Return(domain.Participant{ID: "a1", Username: "alice"}, nil)
	s.users.EXPECT().ListContacts(gomock.Any(), domain.Identity("a1")).Return(nil, nil)
	s.users.EXPECT().GetUser(gomock.Any(), domain.Identity("zz")).Return(domain.Participant{}, errors.ErrUserNotFound)

	w := s.do(http.MethodGet, "/api/auth/me", token, nil)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"_id":"a1","username":"alice"}`, w.Body.String())

	w = s.do(http.MethodGet, "/api/users", token, nil)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`[]`, w.Body.String())

	w = s.do(http.MethodGet, "/api/users/zz", token, nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *RestSuite) TestSendMessage_Created_With_Resolved_Participants() {
	token := s.authenticated("a1")
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	s.chat.EXPECT().SendMessage(gomock.Any(), domain.Identity("a1"), domain.Identity("b2"), "hello").Return(domain.Message{
		ID:        "m1",
		Sender:    domain.Participant{ID: "a1", Username: "alice"},
		Receiver:  domain.Participant{ID: "b2", Username: "bob"},
		Content:   "hello",
		CreatedAt: at,
	}, nil)

	w := s.do(http.MethodPost, "/api/chat", token, sendMessageRequest{ReceiverID: "b2", Content: "hello"})

	s.Equal(http.StatusCreated, w.Code)
	var got domain.Message
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	s.Equal("bob", got.Receiver.Username)
	s.Equal("alice", got.Sender.Username)
	s.True(at.Equal(got.CreatedAt))
}

func (s *RestSuite) TestSendMessage_Errors() {
	token := s.authenticated("a1")
	s.chat.EXPECT().SendMessage(gomock.Any(), domain.Identity("a1"), domain.Identity("b2"), " ").Return(domain.Message{}, errors.ErrEmptyContent)
	s.chat.EXPECT().SendMessage(gomock.Any(), domain.Identity("a1"), domain.Identity("b2"), "boom").Return(domain.Message{}, fmt.Errorf("badger exploded"))

	w := s.do(http.MethodPost, "/api/chat", token, sendMessageRequest{Content: "no receiver"})
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/chat", token, sendMessageRequest{ReceiverID: "b2", Content: " "})
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/chat", token, sendMessageRequest{ReceiverID: "b2", Content: "boom"})
	s.Equal(http.StatusInternalServerError, w.Code)
	s.Equal("internal error", s.message(w))
}

func (s *RestSuite) TestConversation_And_Search() {
	token := s.authenticated("a1")
	history := []domain.Message{
		{ID: "m1", Content: "first", CreatedAt: time.Unix(1, 0).UTC()},
		{ID: "m2", Content: "second", CreatedAt: time.Unix(2, 0).UTC()},
	}
	s.chat.EXPECT().GetConversation(gomock.Any(), domain.Identity("a1"), domain.Identity("b2")).Return(history, nil)
	s.chat.EXPECT().Search(gomock.Any(), domain.Identity("a1"), domain.Identity("b2"), "sec").Return(history[1:], nil)

	w := s.do(http.MethodGet, "/api/chat/b2", token, nil)
	s.Equal(http.StatusOK, w.Code)
	var got []domain.Message
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	s.Equal([]string{"m1", "m2"}, []string{got[0].ID, got[1].ID})

	w = s.do(http.MethodGet, "/api/chat/b2/search?q=sec", token, nil)
	s.Equal(http.StatusOK, w.Code)
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	s.Len(got, 1)
}

func (s *RestSuite) TestConversation_Aliases() {
	token := s.authenticated("a1")
	s.chat.EXPECT().GetConversation(gomock.Any(), domain.Identity("a1"), domain.Identity("b2")).Return(nil, nil)
	s.chat.EXPECT().SendMessage(gomock.Any(), domain.Identity("a1"), domain.Identity("b2"), "hi").
		Return(domain.Message{ID: "m3", Content: "hi"}, nil)

	w := s.do(http.MethodGet, "/api/conversation/b2", token, nil)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq("[]", w.Body.String())

	w = s.do(http.MethodPost, "/api/conversation", token, sendMessageRequest{ReceiverID: "b2", Content: "hi"})
	s.Equal(http.StatusCreated, w.Code)
}

func (s *RestSuite) TestPresence_And_Health() {
	token := s.authenticated("a1")
	s.presence.EXPECT().Online().Return([]domain.Identity{"a1", "b2"})
	s.presence.EXPECT().Connections().Return(2)

	w := s.do(http.MethodGet, "/api/presence", token, nil)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"userIds":["a1","b2"]}`, w.Body.String())

	w = s.do(http.MethodGet, "/healthz", "", nil)
	s.Equal(http.StatusOK, w.Code)
	var health healthResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &health))
	s.Equal("ok", health.Status)
	s.Equal(2, health.Connections)
}

func (s *RestSuite) TestCors_Preflight() {
	w := s.do(http.MethodOptions, "/api/chat", "", nil)
	s.Equal(http.StatusNoContent, w.Code)
	s.Equal("*", w.Header().Get("Access-Control-Allow-Origin"))
}
