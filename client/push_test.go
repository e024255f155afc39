package client

import (
	"chatterbox/domain"
	"chatterbox/domain/event"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

// fakePushServer records the first two frames of every connection and
// greets each connection with a userStatus event.
type fakePushServer struct {
	mu          sync.Mutex
	connections int
	frames      [][]event.Name
	conns       []*websocket.Conn
}

func (s *fakePushServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := (&websocket.Upgrader{}).Upgrade(w, r, nil)
	if err != nil {
		return
	}
	var names []event.Name
	for i := 0; i < 2; i++ {
		var env event.Envelope
		if err := conn.ReadJSON(&env); err != nil {
			return
		}
		names = append(names, env.Event)
	}
	s.mu.Lock()
	s.connections++
	s.frames = append(s.frames, names)
	s.conns = append(s.conns, conn)
	s.mu.Unlock()

	greeting, _ := event.NewEnvelope(event.UserStatus, event.StatusPayload{UserID: "bob", Status: domain.StatusOnline})
	_ = conn.WriteJSON(greeting)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *fakePushServer) dropLast() {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.conns[len(s.conns)-1].Close()
}

func (s *fakePushServer) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connections
}

func TestPushClient_Announces_And_Reconnects(t *testing.T) {
	req := require.New(t)
	fake := &fakePushServer{}
	server := httptest.NewServer(fake)
	defer server.Close()

	var greetings atomic.Int32
	handler := func(env event.Envelope) {
		if env.Event == event.UserStatus {
			greetings.Add(1)
		}
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p := NewPushClient(logger, "ws"+strings.TrimPrefix(server.URL, "http"), "alice", handler)
	p.newBackOff = func() backoff.BackOff { return backoff.NewConstantBackOff(10 * time.Millisecond) }

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	// First connection announces itself then asks for a snapshot
	req.Eventually(func() bool { return fake.count() == 1 }, 2*time.Second, 5*time.Millisecond)
	req.Eventually(func() bool { return p.Emit(event.Typing, event.TypingPayload{SenderID: "alice", ReceiverID: "bob"}) == nil }, time.Second, 5*time.Millisecond)

	// When the server drops the connection, the client comes back and announces again
	fake.dropLast()
	req.Eventually(func() bool { return fake.count() == 2 }, 2*time.Second, 5*time.Millisecond)
	req.Eventually(func() bool { return greetings.Load() == 2 }, 2*time.Second, 5*time.Millisecond)

	fake.mu.Lock()
	for _, names := range fake.frames {
		req.Equal([]event.Name{event.Join, event.PresenceSnapshot}, names)
	}
	fake.mu.Unlock()

	cancel()
	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(2 * time.Second):
		req.Fail("push client did not stop")
	}
	req.ErrorIs(p.Emit(event.Typing, event.TypingPayload{SenderID: "alice"}), ErrNotConnected)
}

func TestPushClient_Emit_While_Offline(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p := NewPushClient(logger, "ws://127.0.0.1:1/ws", "alice", func(event.Envelope) {})

	require.ErrorIs(t, p.Emit(event.Join, event.JoinPayload{UserID: "alice"}), ErrNotConnected)
}
