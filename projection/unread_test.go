package projection

import (
	"testing"

	"skillspot/domain"

	"github.com/stretchr/testify/require"
)

type stubConversations []domain.Conversation

func (s stubConversations) Conversations() []domain.Conversation { return s }

type stubNotifications int

func (s stubNotifications) UnreadNotifications() int { return int(s) }

func TestUnreadAggregator_Total(t *testing.T) {
	t.Run("should sum conversation counters and unread notifications", func(t *testing.T) {
		req := require.New(t)
		aggregator := NewUnreadAggregator(stubConversations{
			{ID: "c1", UnreadCount: 3},
			{ID: "c2", UnreadCount: 0},
			{ID: "c3", UnreadCount: 2},
		}, stubNotifications(4))

		req.Equal(9, aggregator.Total())
	})

	t.Run("should report zero on empty feeds", func(t *testing.T) {
		req := require.New(t)
		aggregator := NewUnreadAggregator(stubConversations{}, stubNotifications(0))
		req.Equal(0, aggregator.Total())
	})
}
