// Package ws exposes the push channel over websocket.
package ws

import (
	"chatterbox/contract"
	"chatterbox/domain/event"
	"chatterbox/sink"
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const maxFrameSize = 16 * 1024

type Handler struct {
	log          *slog.Logger
	orchestrator contract.IOrchestrator
	filter       contract.ContentFilter
	upgrader     websocket.Upgrader
	bufferSize   int
	pongWait     time.Duration
}

// NewHandler accepts connections from clientURL only, or from anywhere when it is "*" or empty.
// A nil filter relays message content as sent.
func NewHandler(log *slog.Logger, orchestrator contract.IOrchestrator, filter contract.ContentFilter,
	clientURL string, bufferSize int) *Handler {
	return &Handler{
		log:          log,
		orchestrator: orchestrator,
		filter:       filter,
		bufferSize:   bufferSize,
		pongWait:     sink.DefaultPongWait,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin(clientURL),
		},
	}
}

func checkOrigin(clientURL string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		if clientURL == "" || clientURL == "*" {
			return true
		}
		origin := r.Header.Get("Origin")
		return origin == "" || origin == clientURL
	}
}

// ServeHTTP handles GET /ws and blocks for the lifetime of the connection.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("Websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	channel := sink.NewWebsocketSink(h.log, conn, h.bufferSize)
	go channel.WritePump()

	h.readPump(context.WithoutCancel(r.Context()), conn, channel)
}

// readPump reads frames until the connection is lost, then releases the channel.
func (h *Handler) readPump(ctx context.Context, conn *websocket.Conn, channel *sink.WebsocketSink) {
	defer func() {
		h.orchestrator.Leave(ctx, channel)
		channel.Close()
		_ = conn.Close()
	}()

	conn.SetReadLimit(maxFrameSize)
	_ = conn.SetReadDeadline(time.Now().Add(h.pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(h.pongWait))
	})

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Debug("Websocket closed unexpectedly", "channel", channel.ID(), "error", err)
			}
			return
		}
		h.dispatch(ctx, channel, raw)
	}
}

// dispatch ignores anything malformed: a bad frame never closes the connection.
func (h *Handler) dispatch(ctx context.Context, channel contract.Channel, raw []byte) {
	env, err := event.ParseEnvelope(raw)
	if err != nil {
		h.log.Debug("Ignoring malformed frame", "channel", channel.ID(), "error", err)
		return
	}

	switch env.Event {
	case event.Join:
		var p event.JoinPayload
		if h.decode(env, &p) {
			h.orchestrator.Join(ctx, p.UserID, channel)
		}
	case event.Typing, event.StopTyping:
		var p event.TypingPayload
		if !h.decode(env, &p) {
			return
		}
		if p.ReceiverID == "" {
			h.log.Debug("Ignoring typing signal without receiver", "event", env.Event)
			return
		}
		if env.Event == event.Typing {
			h.orchestrator.Typing(ctx, p)
		} else {
			h.orchestrator.StopTyping(ctx, p)
		}
	case event.SendMessage:
		var p event.SendMessagePayload
		if h.decode(env, &p) {
			if h.filter != nil {
				p.Content = h.filter.Censor(p.Content)
			}
			h.orchestrator.SendMessage(ctx, p)
		}
	case event.PresenceSnapshot:
		if err := h.orchestrator.Snapshot(ctx, channel); err != nil {
			h.log.Debug("Presence snapshot not delivered", "channel", channel.ID(), "error", err)
		}
	default:
		h.log.Debug("Ignoring unknown event", "event", env.Event)
	}
}

func (h *Handler) decode(env event.Envelope, v any) bool {
	if err := env.Decode(v); err != nil {
		h.log.Debug("Ignoring invalid payload", "event", env.Event, "error", err)
		return false
	}
	return true
}
