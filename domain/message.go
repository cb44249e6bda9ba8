// Package domain contains core concepts of the marketplace client.
// Types mirror the server's JSON shapes; the server stays the source of
// truth and the client treats its copies as projections.
package domain

import "time"

type (
	ConversationID string
	MessageID      string
)

// Message is a single chat message. Identity is the server-assigned ID; a
// conversation's sequence never contains the same ID twice regardless of the
// delivery path (history fetch, request echo, channel push).
type Message struct {
	ID             MessageID      `json:"id"`
	ConversationID ConversationID `json:"conversation"`
	SenderID       string         `json:"sender"`
	SenderEmail    string         `json:"sender_email,omitempty"`
	Content        string         `json:"content"`
	IsRead         bool           `json:"is_read"`
	CreatedAt      time.Time      `json:"created_at"`
}
