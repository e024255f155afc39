package sink

import (
	"chatterbox/domain/event"
	"chatterbox/errors"
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	DefaultWriteWait  = 10 * time.Second
	DefaultPongWait   = 60 * time.Second
	DefaultPingPeriod = DefaultPongWait * 9 / 10
)

// WebsocketSink is the Channel of one websocket connection.
// Deliver only enqueues; WritePump is the single writer of the connection.
type WebsocketSink struct {
	id         string
	log        *slog.Logger
	conn       *websocket.Conn
	send       chan event.Envelope
	done       chan struct{}
	closeOnce  sync.Once
	writeWait  time.Duration
	pingPeriod time.Duration
}

func NewWebsocketSink(log *slog.Logger, conn *websocket.Conn, bufferSize int) *WebsocketSink {
	return &WebsocketSink{
		id:         uuid.NewString(),
		log:        log,
		conn:       conn,
		send:       make(chan event.Envelope, bufferSize),
		done:       make(chan struct{}),
		writeWait:  DefaultWriteWait,
		pingPeriod: DefaultPingPeriod,
	}
}

func (s *WebsocketSink) ID() string {
	return s.id
}

// Deliver redirects the event to the write pump of the connection.
// A slow consumer gets ErrChannelFull instead of stalling the caller.
func (s *WebsocketSink) Deliver(ctx context.Context, env event.Envelope) error {
	select {
	case <-s.done:
		return errors.ErrChannelClosed
	default:
	}
	select {
	case s.send <- env:
		return nil
	case <-s.done:
		return errors.ErrChannelClosed
	case <-ctx.Done():
		return ctx.Err()
	default:
		return errors.ErrChannelFull
	}
}

// WritePump drains the buffer into the connection and keeps it alive with pings.
// It returns once the sink is closed or a write fails.
func (s *WebsocketSink) WritePump() {
	ticker := time.NewTicker(s.pingPeriod)
	defer func() {
		ticker.Stop()
		s.Close()
		_ = s.conn.Close()
	}()

	for {
		select {
		case <-s.done:
			_ = s.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(s.writeWait))
			return
		case env := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(s.writeWait))
			if err := s.conn.WriteJSON(env); err != nil {
				s.log.Debug("Websocket write failed", "channel", s.id, "error", err)
				return
			}
		case <-ticker.C:
			if err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(s.writeWait)); err != nil {
				s.log.Debug("Websocket ping failed", "channel", s.id, "error", err)
				return
			}
		}
	}
}

// Close is idempotent. The write pump says goodbye to the peer and closes the connection.
func (s *WebsocketSink) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
}

func (s *WebsocketSink) Done() <-chan struct{} {
	return s.done
}
