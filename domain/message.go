// Package domain contains core concepts of the chat system.
// This file defines Message entities and related rules.
// Persisted messages are immutable once stored.
package domain

import "time"

// Message is a chat message exchanged between exactly two participants.
// Provisional messages come from a push notification: they have no ID
// and their CreatedAt is the local reception time.
type Message struct {
	ID          string      `json:"_id,omitempty"`
	Sender      Participant `json:"sender"`
	Receiver    Participant `json:"receiver"`
	Content     string      `json:"content"`
	CreatedAt   time.Time   `json:"createdAt"`
	Provisional bool        `json:"provisional,omitempty"`
}

// Between reports whether the message belongs to the conversation of a and b.
func (m Message) Between(a, b Identity) bool {
	return PairKey(m.Sender.ID, m.Receiver.ID) == PairKey(a, b)
}

// Less orders messages by creation time, ties broken by ID.
func Less(a, b Message) bool {
	if a.CreatedAt.Equal(b.CreatedAt) {
		return a.ID < b.ID
	}
	return a.CreatedAt.Before(b.CreatedAt)
}
