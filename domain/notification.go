package domain

import "time"

// Notification is one entry of the notification feed. The feed's unread count
// contributes to the aggregated unread total alongside conversation counters.
type Notification struct {
	ID         string     `json:"id"`
	Recipient  string     `json:"recipient"`
	Title      string     `json:"title"`
	Message    string     `json:"message"`
	Link       string     `json:"link"`
	ActorID    *string    `json:"actor,omitempty"`
	ActorEmail *string    `json:"actor_email,omitempty"`
	Read       bool       `json:"read"`
	ReadAt     *time.Time `json:"read_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
