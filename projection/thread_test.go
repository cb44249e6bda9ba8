package projection

import (
	"testing"

	"skillspot/domain"

	"github.com/stretchr/testify/require"
)

func entry(id string) domain.Message {
	return domain.Message{ID: domain.MessageID(id), ConversationID: "c1", Content: "content " + id}
}

func TestThread_Append(t *testing.T) {
	t.Run("should keep arrival order", func(t *testing.T) {
		req := require.New(t)
		thread := NewThread("c1")

		req.True(thread.Append(entry("m2")))
		req.True(thread.Append(entry("m1")))
		req.True(thread.Append(entry("m3")))

		messages := thread.Messages()
		req.Equal(domain.MessageID("m2"), messages[0].ID)
		req.Equal(domain.MessageID("m1"), messages[1].ID)
		req.Equal(domain.MessageID("m3"), messages[2].ID)
	})

	t.Run("should drop a duplicate id no matter the delivery path", func(t *testing.T) {
		req := require.New(t)
		thread := NewThread("c1")

		req.True(thread.Append(entry("m1")))
		req.False(thread.Append(entry("m1")))
		req.Equal(1, thread.Len())
	})
}

func TestThread_Replace(t *testing.T) {
	t.Run("should swap the sequence for the snapshot", func(t *testing.T) {
		req := require.New(t)
		thread := NewThread("c1")
		thread.Append(entry("old"))

		thread.Replace([]domain.Message{entry("m1"), entry("m2")})

		messages := thread.Messages()
		req.Len(messages, 2)
		req.Equal(domain.MessageID("m1"), messages[0].ID)
	})

	t.Run("should keep the first occurrence of a duplicated snapshot id", func(t *testing.T) {
		req := require.New(t)
		thread := NewThread("c1")

		first := entry("m1")
		first.Content = "first"
		second := entry("m1")
		second.Content = "second"
		thread.Replace([]domain.Message{first, second})

		messages := thread.Messages()
		req.Len(messages, 1)
		req.Equal("first", messages[0].Content)
	})

	t.Run("should reset the dedup set so old ids can return", func(t *testing.T) {
		req := require.New(t)
		thread := NewThread("c1")
		thread.Append(entry("m1"))

		thread.Replace(nil)
		req.True(thread.Append(entry("m1")))
	})
}
