// Package event defines the ephemeral events relayed over the push channel.
// None of them is ever persisted.
package event

import (
	"chatterbox/domain"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

type Name string

const (
	Join             Name = "join"
	UserStatus       Name = "userStatus"
	Typing           Name = "typing"
	StopTyping       Name = "stopTyping"
	SendMessage      Name = "sendMessage"
	NewMessage       Name = "newMessage"
	PresenceSnapshot Name = "presenceSnapshot"
)

var validate = validator.New()

// Envelope is the frame exchanged on the push channel: {"event": ..., "data": ...}.
type Envelope struct {
	Event Name            `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// NewEnvelope encodes payload as the data of a named event.
func NewEnvelope(name Name, payload any) (Envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("encode %s payload: %w", name, err)
	}
	return Envelope{Event: name, Data: data}, nil
}

// ParseEnvelope decodes a raw frame. A frame without event name is rejected.
func ParseEnvelope(raw []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Envelope{}, err
	}
	if env.Event == "" {
		return Envelope{}, fmt.Errorf("missing event name")
	}
	return env, nil
}

// Decode unmarshals the data into v and checks its required fields.
func (e Envelope) Decode(v any) error {
	if len(e.Data) == 0 {
		return fmt.Errorf("%s: empty payload", e.Event)
	}
	if err := json.Unmarshal(e.Data, v); err != nil {
		return fmt.Errorf("%s: %w", e.Event, err)
	}
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%s: %w", e.Event, err)
	}
	return nil
}

type JoinPayload struct {
	UserID domain.Identity `json:"userId" validate:"required"`
}

type StatusPayload struct {
	UserID domain.Identity `json:"userId" validate:"required"`
	Status domain.Status   `json:"status" validate:"required,oneof=online offline"`
}

// TypingPayload is used for both typing and stopTyping.
// The receiver is stripped when forwarded to the target.
type TypingPayload struct {
	SenderID   domain.Identity `json:"senderId" validate:"required"`
	ReceiverID domain.Identity `json:"receiverId,omitempty"`
}

type SendMessagePayload struct {
	SenderID   domain.Identity `json:"senderId" validate:"required"`
	ReceiverID domain.Identity `json:"receiverId" validate:"required"`
	Content    string          `json:"content" validate:"required"`
}

type NewMessagePayload struct {
	SenderID domain.Identity `json:"senderId" validate:"required"`
	Content  string          `json:"content" validate:"required"`
}

type SnapshotPayload struct {
	UserIDs []domain.Identity `json:"userIds"`
}

// Presence is emitted by the registry on every register and unregister.
type Presence struct {
	Identity domain.Identity
	Status   domain.Status
	At       time.Time
}

func (p Presence) Envelope() (Envelope, error) {
	return NewEnvelope(UserStatus, StatusPayload{UserID: p.Identity, Status: p.Status})
}
