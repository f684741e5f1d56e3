package chat

import "time"

// Snapshot is a point-in-time copy of a conversation handed to clients.
type Snapshot struct {
	ID        string    `json:"id"`
	Entries   []Entry   `json:"entries"`
	Pending   bool      `json:"pending"`
	CreatedAt time.Time `json:"createdAt"`
}

// EventType tags updates pushed to live subscribers.
type EventType string

const (
	EventEntry  EventType = "entry"
	EventTyping EventType = "typing"
)

// Event is published whenever the log grows or the typing indicator flips.
type Event struct {
	Type           EventType `json:"type"`
	ConversationID string    `json:"conversationId"`
	Entry          *Entry    `json:"entry,omitempty"`
	Pending        bool      `json:"pending"`
}
