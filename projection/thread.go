// Package projection builds local views from server snapshots and observed
// channel events. Handles ordering and deduplication; it does not talk to
// the network and never emits events itself.
package projection

import "skillspot/domain"

// Thread is the ordered, deduplicated message sequence of one conversation.
// Arrival order as observed by the session is authoritative for display, not
// timestamp order; a message id never appears twice regardless of whether it
// arrived over the channel or a request response.
type Thread struct {
	conversation domain.ConversationID
	messages     []domain.Message
	seen         map[domain.MessageID]struct{}
}

func NewThread(conversation domain.ConversationID) *Thread {
	return &Thread{
		conversation: conversation,
		seen:         make(map[domain.MessageID]struct{}),
	}
}

func (t *Thread) Conversation() domain.ConversationID {
	return t.conversation
}

// Replace swaps the sequence for a fresh server snapshot. Duplicate ids
// inside the snapshot keep their first occurrence.
func (t *Thread) Replace(messages []domain.Message) {
	t.messages = t.messages[:0]
	t.seen = make(map[domain.MessageID]struct{}, len(messages))
	for _, m := range messages {
		t.append(m)
	}
}

// Append adds a message at the tail unless its id is already present.
// Returns true when the message was actually inserted.
func (t *Thread) Append(m domain.Message) bool {
	return t.append(m)
}

func (t *Thread) append(m domain.Message) bool {
	if _, dup := t.seen[m.ID]; dup {
		return false
	}
	t.seen[m.ID] = struct{}{}
	t.messages = append(t.messages, m)
	return true
}

// Messages returns a copy of the sequence in arrival order.
func (t *Thread) Messages() []domain.Message {
	out := make([]domain.Message, len(t.messages))
	copy(out, t.messages)
	return out
}

func (t *Thread) Len() int {
	return len(t.messages)
}
