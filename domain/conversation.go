package domain

import "time"

// Participant is the "other side" of a conversation as serialized by the
// server in conversation summaries.
type Participant struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LastMessage is the preview embedded in a conversation summary.
type LastMessage struct {
	ID          MessageID `json:"id"`
	Content     string    `json:"content"`
	SenderEmail string    `json:"sender_email,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Conversation is a summary row of the conversation list. It is mutated on
// fetch, on send, on push event and on mark-read; the server copy remains the
// source of truth.
type Conversation struct {
	ID               ConversationID `json:"id"`
	OtherParticipant *Participant   `json:"other_participant,omitempty"`
	JobID            string         `json:"job,omitempty"`
	JobTitle         string         `json:"job_title,omitempty"`
	ContractID       string         `json:"contract,omitempty"`
	LastMessage      *LastMessage   `json:"last_message,omitempty"`
	UnreadCount      int            `json:"unread_count"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	LastMessageAt    *time.Time     `json:"last_message_at,omitempty"`
}
