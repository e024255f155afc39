//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chatterbox/domain"
	"chatterbox/domain/event"
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Channel is one live push connection.
// Deliver must never block on the network: implementations enqueue and return.
type Channel interface {
	ID() string
	Deliver(ctx context.Context, env event.Envelope) error
}

// PresenceListener receives every online/offline transition of the registry.
type PresenceListener interface {
	OnPresence(ctx context.Context, p event.Presence)
}

type IRegistry interface {
	Register(ctx context.Context, identity domain.Identity, ch Channel)
	Unregister(ctx context.Context, ch Channel) bool
	Lookup(identity domain.Identity) (Channel, bool)
	Channels() []Channel
	Online() []domain.Identity
	Len() int
}

// IRouter unicasts ephemeral events to the channel of one identity.
type IRouter interface {
	Route(ctx context.Context, receiver domain.Identity, env event.Envelope) bool
	Typing(ctx context.Context, sender, receiver domain.Identity) bool
	StopTyping(ctx context.Context, sender, receiver domain.Identity) bool
	Notify(ctx context.Context, sender, receiver domain.Identity, content string) bool
}

type IOrchestrator interface {
	Join(ctx context.Context, identity domain.Identity, ch Channel)
	Leave(ctx context.Context, ch Channel) bool
	Typing(ctx context.Context, p event.TypingPayload) bool
	StopTyping(ctx context.Context, p event.TypingPayload) bool
	SendMessage(ctx context.Context, p event.SendMessagePayload) bool
	Snapshot(ctx context.Context, ch Channel) error
	Online() []domain.Identity
	Connections() int
	Observe(l PresenceListener) func()
	Start(ctx context.Context) error
	Stop()
}

// MessageIndexer makes persisted messages searchable.
type MessageIndexer interface {
	Index(ctx context.Context, m domain.Message) error
}

// ContentFilter rewrites message content before it is stored or relayed.
type ContentFilter interface {
	Censor(content string) string
}
