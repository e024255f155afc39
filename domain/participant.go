// Package domain contains core concepts of the chat system.
// This file defines Participant entities and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"sort"
	"strings"
)

// Identity is the stable key of a user, issued at registration.
type Identity string

func (i Identity) String() string {
	return string(i)
}

// Participant is one side of a conversation, resolved with its display name.
type Participant struct {
	ID       Identity `json:"_id"`
	Username string   `json:"username"`
}

// PairKey returns the conversation key shared by both participants.
// The key is symmetrical: PairKey(a, b) == PairKey(b, a).
func PairKey(a, b Identity) string {
	ids := []string{string(a), string(b)}
	sort.Strings(ids)
	return strings.Join(ids, "_")
}
