package session

import (
	"chatterbox/domain"
	"sort"
)

type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseReady   Phase = "ready"
)

const (
	errFetchFailed = "Failed to fetch messages"
	errSendFailed  = "Failed to send message"
)

// State is everything the controller decides on.
// The selected peer and the generation are data, so stale results and foreign events
// are filtered by comparison instead of by whatever a callback captured.
type State struct {
	Phase      Phase
	Peer       domain.Participant
	Generation uint64
	Messages   []domain.Message
	PeerTyping bool
	Online     map[domain.Identity]struct{}
	LastError  string
}

func newState() State {
	return State{Phase: PhaseIdle, Online: make(map[domain.Identity]struct{})}
}

func (s State) IsOnline(id domain.Identity) bool {
	_, ok := s.Online[id]
	return ok
}

func (s State) HasPeer() bool {
	return s.Peer.ID != ""
}

// View is an immutable snapshot of State handed to renderers.
type View struct {
	Phase      Phase
	Peer       domain.Participant
	Generation uint64
	Messages   []domain.Message
	PeerTyping bool
	PeerOnline bool
	Online     []domain.Identity
	LastError  string
}

func (s State) view() View {
	online := make([]domain.Identity, 0, len(s.Online))
	for id := range s.Online {
		online = append(online, id)
	}
	sort.Slice(online, func(i, j int) bool { return online[i] < online[j] })

	return View{
		Phase:      s.Phase,
		Peer:       s.Peer,
		Generation: s.Generation,
		Messages:   append([]domain.Message(nil), s.Messages...),
		PeerTyping: s.PeerTyping,
		PeerOnline: s.HasPeer() && s.IsOnline(s.Peer.ID),
		Online:     online,
		LastError:  s.LastError,
	}
}
