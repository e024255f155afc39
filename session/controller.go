// Package session holds the client side of a conversation: which peer is selected,
// what the view shows, and when typing signals go out.
package session

import (
	"chatterbox/domain"
	"chatterbox/domain/event"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

const DefaultIdleWindow = 2 * time.Second

var (
	ErrNoPeerSelected = fmt.Errorf("no peer selected")
	ErrPeerOffline    = fmt.Errorf("peer is offline")
	ErrEmptyMessage   = fmt.Errorf("message is empty")
	ErrClosed         = fmt.Errorf("session closed")
)

// Controller reconciles durable fetches, local sends and push events into one View.
// Fetch completions, push callbacks and timer callbacks may interleave freely;
// the generation token is the only ordering guard for fetch results.
type Controller struct {
	mu         sync.Mutex
	log        *slog.Logger
	self       domain.Participant
	store      ConversationStore
	push       PushEmitter
	clock      clockwork.Clock
	idleWindow time.Duration
	state      State
	closed     bool

	idleTimer clockwork.Timer
	// timerToken invalidates a timer callback that already fired but lost the race to Stop
	timerToken uint64

	onChange func(View)
	inFlight sync.WaitGroup
}

func NewController(log *slog.Logger, self domain.Participant,
	store ConversationStore, push PushEmitter,
	clock clockwork.Clock, idleWindow time.Duration) *Controller {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if idleWindow <= 0 {
		idleWindow = DefaultIdleWindow
	}
	return &Controller{
		log:        log,
		self:       self,
		store:      store,
		push:       push,
		clock:      clock,
		idleWindow: idleWindow,
		state:      newState(),
	}
}

// OnChange registers the callback run after every state change, outside the lock.
func (c *Controller) OnChange(fn func(View)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = fn
}

func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.view()
}

// SelectPeer switches the conversation and starts the history fetch in the background.
// An empty peer goes back to idle. It returns the generation stamped on this selection.
func (c *Controller) SelectPeer(ctx context.Context, peer domain.Participant) uint64 {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return 0
	}
	c.stopIdleTimerLocked()
	c.state.Generation++
	generation := c.state.Generation
	c.state.Peer = peer
	c.state.Messages = nil
	c.state.PeerTyping = false
	c.state.LastError = ""
	if peer.ID == "" {
		c.state.Phase = PhaseIdle
		c.commitLocked()
		return generation
	}
	c.state.Phase = PhaseLoading
	c.inFlight.Add(1)
	c.commitLocked()

	go func() {
		defer c.inFlight.Done()
		messages, err := c.store.FetchConversation(ctx, peer.ID)
		c.applyFetch(generation, messages, err)
	}()
	return generation
}

// mergeLoaded puts the fetched history first, then keeps what landed while loading:
// provisional entries, and sent messages the history does not contain yet.
func mergeLoaded(history, pending []domain.Message) []domain.Message {
	merged := append([]domain.Message(nil), history...)
	seen := make(map[string]struct{}, len(history))
	for _, m := range history {
		seen[m.ID] = struct{}{}
	}
	for _, m := range pending {
		if _, ok := seen[m.ID]; ok && m.ID != "" {
			continue
		}
		merged = append(merged, m)
	}
	return merged
}

// applyFetch lands a history result, unless another peer was selected meanwhile.
func (c *Controller) applyFetch(generation uint64, messages []domain.Message, err error) {
	c.mu.Lock()
	if c.closed || generation != c.state.Generation {
		c.mu.Unlock()
		c.log.Debug("Discarding stale conversation fetch", "generation", generation)
		return
	}
	if err != nil {
		c.log.Warn("Conversation fetch failed", "peer", c.state.Peer.ID, "error", err)
		c.state.LastError = errFetchFailed
		c.state.Messages = nil
	} else {
		c.state.Messages = mergeLoaded(messages, c.state.Messages)
	}
	c.state.Phase = PhaseReady
	c.commitLocked()
}

// Send persists content for the selected peer, then notifies the peer over push.
// Nothing is attempted when the peer is not known online.
func (c *Controller) Send(ctx context.Context, content string) (domain.Message, error) {
	c.mu.Lock()
	peer := c.state.Peer
	generation := c.state.Generation
	switch {
	case c.closed:
		c.mu.Unlock()
		return domain.Message{}, ErrClosed
	case !c.state.HasPeer():
		c.mu.Unlock()
		return domain.Message{}, ErrNoPeerSelected
	case strings.TrimSpace(content) == "":
		c.mu.Unlock()
		return domain.Message{}, ErrEmptyMessage
	case !c.state.IsOnline(peer.ID):
		c.mu.Unlock()
		return domain.Message{}, ErrPeerOffline
	}
	c.mu.Unlock()

	message, err := c.store.SendMessage(ctx, peer.ID, content)
	if err != nil {
		c.mu.Lock()
		if generation == c.state.Generation {
			c.state.LastError = errSendFailed
			c.commitLocked()
		} else {
			c.mu.Unlock()
		}
		return domain.Message{}, fmt.Errorf("send message: %w", err)
	}

	c.mu.Lock()
	if generation == c.state.Generation {
		c.state.Messages = append(c.state.Messages, message)
		c.state.LastError = ""
		c.stopIdleTimerLocked()
		c.commitLocked()
	} else {
		c.mu.Unlock()
	}

	// Persisted already: a lost notification only delays the peer until its next fetch
	c.emit(event.SendMessage, event.SendMessagePayload{SenderID: c.self.ID, ReceiverID: peer.ID, Content: content})
	c.emit(event.StopTyping, event.TypingPayload{SenderID: c.self.ID, ReceiverID: peer.ID})
	return message, nil
}

// Keystroke signals typing right away and rearms the single idle timer for the selected peer.
// Composing for a peer not known online signals nothing.
func (c *Controller) Keystroke() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if !c.state.HasPeer() {
		c.mu.Unlock()
		return ErrNoPeerSelected
	}
	if !c.state.IsOnline(c.state.Peer.ID) {
		c.mu.Unlock()
		return ErrPeerOffline
	}
	peer := c.state.Peer.ID
	c.stopIdleTimerLocked()
	token := c.timerToken
	c.idleTimer = c.clock.AfterFunc(c.idleWindow, func() {
		c.idleElapsed(token, peer)
	})
	c.mu.Unlock()

	c.emit(event.Typing, event.TypingPayload{SenderID: c.self.ID, ReceiverID: peer})
	return nil
}

func (c *Controller) idleElapsed(token uint64, peer domain.Identity) {
	c.mu.Lock()
	if token != c.timerToken || c.idleTimer == nil {
		c.mu.Unlock()
		return
	}
	c.idleTimer = nil
	c.mu.Unlock()

	c.emit(event.StopTyping, event.TypingPayload{SenderID: c.self.ID, ReceiverID: peer})
}

// stopIdleTimerLocked cancels the outstanding timer without emitting anything.
func (c *Controller) stopIdleTimerLocked() {
	if c.idleTimer != nil {
		c.idleTimer.Stop()
		c.idleTimer = nil
	}
	c.timerToken++
}

// HandleEvent applies one inbound push event. Malformed events are ignored.
func (c *Controller) HandleEvent(env event.Envelope) {
	switch env.Event {
	case event.UserStatus:
		var p event.StatusPayload
		if c.decode(env, &p) {
			c.update(func(s *State) bool {
				if p.Status == domain.StatusOnline {
					s.Online[p.UserID] = struct{}{}
				} else {
					delete(s.Online, p.UserID)
				}
				return true
			})
		}
	case event.PresenceSnapshot:
		var p event.SnapshotPayload
		if c.decode(env, &p) {
			c.update(func(s *State) bool {
				s.Online = make(map[domain.Identity]struct{}, len(p.UserIDs))
				for _, id := range p.UserIDs {
					s.Online[id] = struct{}{}
				}
				return true
			})
		}
	case event.Typing, event.StopTyping:
		var p event.TypingPayload
		if c.decode(env, &p) {
			typing := env.Event == event.Typing
			c.update(func(s *State) bool {
				if !s.HasPeer() || p.SenderID != s.Peer.ID {
					return false
				}
				s.PeerTyping = typing
				return true
			})
		}
	case event.NewMessage:
		var p event.NewMessagePayload
		if c.decode(env, &p) {
			now := c.clock.Now().UTC()
			c.update(func(s *State) bool {
				if !s.HasPeer() || p.SenderID != s.Peer.ID {
					return false
				}
				s.Messages = append(s.Messages, domain.Message{
					Sender:      s.Peer,
					Receiver:    c.self,
					Content:     p.Content,
					CreatedAt:   now,
					Provisional: true,
				})
				return true
			})
		}
	default:
		c.log.Debug("Ignoring unexpected event", "event", env.Event)
	}
}

func (c *Controller) decode(env event.Envelope, v any) bool {
	if err := env.Decode(v); err != nil {
		c.log.Debug("Ignoring malformed event", "event", env.Event, "error", err)
		return false
	}
	return true
}

// update runs fn under the lock and publishes the view when fn reports a change.
func (c *Controller) update(fn func(s *State) bool) {
	c.mu.Lock()
	if c.closed || !fn(&c.state) {
		c.mu.Unlock()
		return
	}
	c.commitLocked()
}

// commitLocked releases the lock and then publishes the new view.
func (c *Controller) commitLocked() {
	view := c.state.view()
	onChange := c.onChange
	c.mu.Unlock()
	if onChange != nil {
		onChange(view)
	}
}

func (c *Controller) emit(name event.Name, payload any) {
	if err := c.push.Emit(name, payload); err != nil {
		c.log.Debug("Push event not emitted", "event", name, "error", err)
	}
}

// Close stops the idle timer without emitting and waits for in-flight fetches.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	c.stopIdleTimerLocked()
	c.mu.Unlock()
	c.inFlight.Wait()
}

// Wait blocks until every fetch started so far has completed.
func (c *Controller) Wait() {
	c.inFlight.Wait()
}
