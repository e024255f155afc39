package rest

import (
	"chatterbox/auth"
	"chatterbox/domain"
	"chatterbox/errors"
	"chatterbox/services"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

var validate = validator.New()

type credentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	ID       domain.Identity `json:"_id"`
	Username string          `json:"username"`
	Token    string          `json:"token"`
}

type sendMessageRequest struct {
	ReceiverID domain.Identity `json:"receiverId" validate:"required"`
	Content    string          `json:"content"`
}

type presenceResponse struct {
	UserIDs []domain.Identity `json:"userIds"`
}

type healthResponse struct {
	Status      string  `json:"status"`
	Uptime      string  `json:"uptime"`
	Connections int     `json:"connections"`
	Goroutines  int     `json:"goroutines"`
	RSSBytes    uint64  `json:"rss_bytes"`
	CPUPercent  float64 `json:"cpu_percent"`
}

type errorResponse struct {
	Message string `json:"message"`
}

var errBadRequest = fmt.Errorf("malformed request body")

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var body credentialsRequest
	if err := decode(r, &body); err != nil {
		s.writeBadRequest(w, err)
		return
	}
	session, err := s.authService.Register(r.Context(), body.Username, body.Password)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toSessionResponse(session))
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var body credentialsRequest
	if err := decode(r, &body); err != nil {
		s.writeBadRequest(w, err)
		return
	}
	session, err := s.authService.Login(r.Context(), body.Username, body.Password)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toSessionResponse(session))
}

func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	self, _ := auth.UserIDFromContext(r.Context())
	user, err := s.userService.GetUser(r.Context(), self)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, user)
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	self, _ := auth.UserIDFromContext(r.Context())
	users, err := s.userService.ListContacts(r.Context(), self)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, nonNil(users))
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.userService.GetUser(r.Context(), domain.Identity(mux.Vars(r)["id"]))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, user)
}

// getConversation answers GET /api/chat/{userId} with the history oldest first.
func (s *Server) getConversation(w http.ResponseWriter, r *http.Request) {
	self, _ := auth.UserIDFromContext(r.Context())
	messages, err := s.chatService.GetConversation(r.Context(), self, domain.Identity(mux.Vars(r)["userId"]))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, nonNil(messages))
}

// sendMessage persists only. The caller notifies the receiver over the push channel.
func (s *Server) sendMessage(w http.ResponseWriter, r *http.Request) {
	self, _ := auth.UserIDFromContext(r.Context())
	var body sendMessageRequest
	if err := decode(r, &body); err != nil {
		s.writeBadRequest(w, err)
		return
	}
	message, err := s.chatService.SendMessage(r.Context(), self, body.ReceiverID, body.Content)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, message)
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	self, _ := auth.UserIDFromContext(r.Context())
	messages, err := s.chatService.Search(r.Context(), self, domain.Identity(mux.Vars(r)["userId"]), r.URL.Query().Get("q"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, nonNil(messages))
}

func (s *Server) online(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, presenceResponse{UserIDs: nonNil(s.presence.Online())})
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	stats := s.monitoring.GetLatest()
	s.writeJSON(w, http.StatusOK, healthResponse{
		Status:      "ok",
		Uptime:      s.monitoring.Uptime().Truncate(time.Second).String(),
		Connections: s.presence.Connections(),
		Goroutines:  runtime.NumGoroutine(),
		RSSBytes:    stats.RSSBytes,
		CPUPercent:  stats.CPUPercent,
	})
}

func toSessionResponse(session services.Session) sessionResponse {
	return sessionResponse{ID: session.User.ID, Username: session.User.Username, Token: session.Token}
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Debug("Unable to write response", "error", err)
	}
}

func (s *Server) writeBadRequest(w http.ResponseWriter, err error) {
	s.writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
}

// writeError maps a service error to its status. Internal details never leave the process.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := errors.MapToHTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.log.Error("Request failed", "error", err)
		message = "internal error"
	}
	s.writeJSON(w, status, errorResponse{Message: message})
}
