// Package rest exposes the durable side of the chat over HTTP.
package rest

import (
	"chatterbox/domain"
	"chatterbox/observability"
	"chatterbox/services"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
)

// PresenceReader is the part of the orchestrator the API needs.
type PresenceReader interface {
	Online() []domain.Identity
	Connections() int
}

type Server struct {
	log         *slog.Logger
	authService services.IAuthService
	userService services.IUserService
	chatService services.IChatService
	presence    PresenceReader
	monitoring  *observability.MonitoringManager
	clientURL   string
}

func NewServer(log *slog.Logger,
	authService services.IAuthService,
	userService services.IUserService,
	chatService services.IChatService,
	presence PresenceReader,
	monitoring *observability.MonitoringManager,
	clientURL string) *Server {
	return &Server{
		log:         log,
		authService: authService,
		userService: userService,
		chatService: chatService,
		presence:    presence,
		monitoring:  monitoring,
		clientURL:   clientURL,
	}
}

// Router mounts the API, the health probe and the push endpoint on one mux.
// The push handler is mounted outside the API middlewares as it hijacks the connection.
func (s *Server) Router(push http.Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", s.health).Methods(http.MethodGet)
	if push != nil {
		r.Handle("/ws", push).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api").Subrouter()
	api.Use(s.logging, s.cors)
	api.HandleFunc("/auth/register", s.register).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/auth/login", s.login).Methods(http.MethodPost, http.MethodOptions)

	private := api.NewRoute().Subrouter()
	private.Use(s.authenticate)
	private.HandleFunc("/auth/me", s.me).Methods(http.MethodGet, http.MethodOptions)
	private.HandleFunc("/users", s.listUsers).Methods(http.MethodGet, http.MethodOptions)
	private.HandleFunc("/users/{id}", s.getUser).Methods(http.MethodGet, http.MethodOptions)
	private.HandleFunc("/chat", s.sendMessage).Methods(http.MethodPost, http.MethodOptions)
	private.HandleFunc("/chat/{userId}", s.getConversation).Methods(http.MethodGet, http.MethodOptions)
	private.HandleFunc("/chat/{userId}/search", s.search).Methods(http.MethodGet, http.MethodOptions)
	// Conversation aliases of the chat routes
	private.HandleFunc("/conversation", s.sendMessage).Methods(http.MethodPost, http.MethodOptions)
	private.HandleFunc("/conversation/{userId}", s.getConversation).Methods(http.MethodGet, http.MethodOptions)
	private.HandleFunc("/presence", s.online).Methods(http.MethodGet, http.MethodOptions)
	return r
}
