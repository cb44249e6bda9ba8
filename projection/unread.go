package projection

import (
	"skillspot/domain"

	"github.com/samber/lo"
)

// ConversationSource exposes the current conversation summaries.
type ConversationSource interface {
	Conversations() []domain.Conversation
}

// NotificationSource exposes the notification feed's unread count.
type NotificationSource interface {
	UnreadNotifications() int
}

// UnreadAggregator derives the total unread badge from both feeds. It holds
// no state of its own; every call recomputes from the sources.
type UnreadAggregator struct {
	conversations ConversationSource
	notifications NotificationSource
}

func NewUnreadAggregator(conversations ConversationSource, notifications NotificationSource) *UnreadAggregator {
	return &UnreadAggregator{conversations: conversations, notifications: notifications}
}

// Total is the sum of per-conversation unread counters plus the notification
// feed's unread count.
func (a *UnreadAggregator) Total() int {
	messages := lo.SumBy(a.conversations.Conversations(), func(c domain.Conversation) int {
		return c.UnreadCount
	})
	return messages + a.notifications.UnreadNotifications()
}
