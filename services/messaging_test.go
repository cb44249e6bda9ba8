package services

import (
	"context"
	"testing"
	"time"

	"skillspot/domain"
	"skillspot/domain/event"
	"skillspot/errors"
	"skillspot/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func message(id, conversation, content string) domain.Message {
	return domain.Message{
		ID:             domain.MessageID(id),
		ConversationID: domain.ConversationID(conversation),
		SenderID:       "user-2",
		Content:        content,
		CreatedAt:      time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestMessagingSession_OpenConversation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("should load history and activate the channel", func(t *testing.T) {
		req := require.New(t)
		messagingAPI := mocks.NewMockIMessagingAPI(ctrl)
		channelManager := mocks.NewMockIManager(ctrl)
		svc := NewMessagingSession(messagingAPI, channelManager, testLogger())

		history := []domain.Message{message("m1", "c1", "hello"), message("m2", "c1", "hi")}
		gomock.InOrder(
			messagingAPI.EXPECT().GetMessages(gomock.Any(), domain.ConversationID("c1"), true).Return(history, nil),
			channelManager.EXPECT().Activate(gomock.Any(), domain.ConversationID("c1")).Return(nil),
		)

		req.NoError(svc.OpenConversation(context.Background(), "c1", true))
		req.Len(svc.Messages(), 2)
		active, ok := svc.ActiveConversation()
		req.True(ok)
		req.Equal(domain.ConversationID("c1"), active)
	})

	t.Run("should zero the unread counter of the opened conversation", func(t *testing.T) {
		req := require.New(t)
		messagingAPI := mocks.NewMockIMessagingAPI(ctrl)
		channelManager := mocks.NewMockIManager(ctrl)
		svc := NewMessagingSession(messagingAPI, channelManager, testLogger())

		messagingAPI.EXPECT().ListConversations(gomock.Any()).
			Return([]domain.Conversation{{ID: "c1", UnreadCount: 4}, {ID: "c2", UnreadCount: 2}}, nil)
		messagingAPI.EXPECT().GetMessages(gomock.Any(), domain.ConversationID("c1"), true).
			Return([]domain.Message{}, nil)
		channelManager.EXPECT().Activate(gomock.Any(), domain.ConversationID("c1")).Return(nil)

		req.NoError(svc.LoadConversations(context.Background()))
		req.NoError(svc.OpenConversation(context.Background(), "c1", true))

		conversations := svc.Conversations()
		req.Equal(0, conversations[0].UnreadCount)
		req.Equal(2, conversations[1].UnreadCount)
	})

	t.Run("should mark the session disconnected when the channel cannot open", func(t *testing.T) {
		req := require.New(t)
		messagingAPI := mocks.NewMockIMessagingAPI(ctrl)
		channelManager := mocks.NewMockIManager(ctrl)
		svc := NewMessagingSession(messagingAPI, channelManager, testLogger())

		messagingAPI.EXPECT().GetMessages(gomock.Any(), domain.ConversationID("c1"), false).
			Return([]domain.Message{message("m1", "c1", "hello")}, nil)
		channelManager.EXPECT().Activate(gomock.Any(), domain.ConversationID("c1")).
			Return(errors.NetworkError(context.DeadlineExceeded))

		// History still loads; only the live indicator moves.
		req.NoError(svc.OpenConversation(context.Background(), "c1", false))
		req.True(svc.Disconnected())
		req.Len(svc.Messages(), 1)
	})

	t.Run("should discard a stale fetch superseded by a newer open", func(t *testing.T) {
		req := require.New(t)
		messagingAPI := mocks.NewMockIMessagingAPI(ctrl)
		channelManager := mocks.NewMockIManager(ctrl)
		svc := NewMessagingSession(messagingAPI, channelManager, testLogger())

		// While the fetch for c1 is in flight, the user opens c2. The late c1
		// snapshot must not overwrite the thread.
		messagingAPI.EXPECT().GetMessages(gomock.Any(), domain.ConversationID("c1"), false).
			DoAndReturn(func(ctx context.Context, _ domain.ConversationID, _ bool) ([]domain.Message, error) {
				req.NoError(svc.OpenConversation(ctx, "c2", false))
				return []domain.Message{message("m1", "c1", "old")}, nil
			})
		messagingAPI.EXPECT().GetMessages(gomock.Any(), domain.ConversationID("c2"), false).
			Return([]domain.Message{message("m2", "c2", "new")}, nil)
		channelManager.EXPECT().Activate(gomock.Any(), domain.ConversationID("c2")).Return(nil)

		req.NoError(svc.OpenConversation(context.Background(), "c1", false))

		active, ok := svc.ActiveConversation()
		req.True(ok)
		req.Equal(domain.ConversationID("c2"), active)
		messages := svc.Messages()
		req.Len(messages, 1)
		req.Equal(domain.MessageID("m2"), messages[0].ID)
	})
}

func TestMessagingSession_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("should append the persisted record exactly once despite a channel echo", func(t *testing.T) {
		req := require.New(t)
		messagingAPI := mocks.NewMockIMessagingAPI(ctrl)
		channelManager := mocks.NewMockIManager(ctrl)
		svc := NewMessagingSession(messagingAPI, channelManager, testLogger())

		messagingAPI.EXPECT().GetMessages(gomock.Any(), domain.ConversationID("c1"), false).
			Return([]domain.Message{}, nil)
		channelManager.EXPECT().Activate(gomock.Any(), domain.ConversationID("c1")).Return(nil)
		req.NoError(svc.OpenConversation(context.Background(), "c1", false))

		sent := message("m9", "c1", "are you free tomorrow?")
		messagingAPI.EXPECT().SendMessage(gomock.Any(), domain.ConversationID("c1"), sent.Content).Return(sent, nil)

		got, err := svc.SendViaRequest(context.Background(), sent.Content)
		req.NoError(err)
		req.Equal(sent.ID, got.ID)

		// The server echoes the same record over the channel.
		svc.Consume(event.MessageReceived{Message: sent})
		req.Len(svc.Messages(), 1)
	})

	t.Run("should refuse a request send without an open thread", func(t *testing.T) {
		req := require.New(t)
		messagingAPI := mocks.NewMockIMessagingAPI(ctrl)
		channelManager := mocks.NewMockIManager(ctrl)
		svc := NewMessagingSession(messagingAPI, channelManager, testLogger())

		_, err := svc.SendViaRequest(context.Background(), "hello")
		req.ErrorIs(err, errors.ErrNoActiveThread)
	})

	t.Run("should forward a channel send to the manager", func(t *testing.T) {
		req := require.New(t)
		messagingAPI := mocks.NewMockIMessagingAPI(ctrl)
		channelManager := mocks.NewMockIManager(ctrl)
		svc := NewMessagingSession(messagingAPI, channelManager, testLogger())

		channelManager.EXPECT().Send("ping").Return(nil)
		req.NoError(svc.SendViaChannel("ping"))
	})
}

func TestMessagingSession_Consume(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("should bump the summary when a push targets an inactive conversation", func(t *testing.T) {
		req := require.New(t)
		messagingAPI := mocks.NewMockIMessagingAPI(ctrl)
		channelManager := mocks.NewMockIManager(ctrl)
		svc := NewMessagingSession(messagingAPI, channelManager, testLogger())

		messagingAPI.EXPECT().ListConversations(gomock.Any()).
			Return([]domain.Conversation{{ID: "c1"}, {ID: "c2", UnreadCount: 1}}, nil)
		req.NoError(svc.LoadConversations(context.Background()))

		pushed := message("m5", "c2", "new offer on your job")
		svc.Consume(event.MessageReceived{Message: pushed})

		conversations := svc.Conversations()
		req.Equal(2, conversations[1].UnreadCount)
		req.NotNil(conversations[1].LastMessage)
		req.Equal(pushed.Content, conversations[1].LastMessage.Content)
		req.NotNil(conversations[1].LastMessageAt)
	})

	t.Run("should track the channel lifecycle through the disconnected indicator", func(t *testing.T) {
		req := require.New(t)
		messagingAPI := mocks.NewMockIMessagingAPI(ctrl)
		channelManager := mocks.NewMockIManager(ctrl)
		svc := NewMessagingSession(messagingAPI, channelManager, testLogger())

		svc.Consume(event.ChannelErrored{ID: "c1", Err: context.DeadlineExceeded})
		req.True(svc.Disconnected())

		svc.Consume(event.ChannelOpened{ID: "c1"})
		req.False(svc.Disconnected())

		svc.Consume(event.ChannelClosed{ID: "c1"})
		req.True(svc.Disconnected())
	})
}

func TestMessagingSession_MarkRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("should keep the optimistic zero when the confirmation fails", func(t *testing.T) {
		req := require.New(t)
		messagingAPI := mocks.NewMockIMessagingAPI(ctrl)
		channelManager := mocks.NewMockIManager(ctrl)
		svc := NewMessagingSession(messagingAPI, channelManager, testLogger())

		messagingAPI.EXPECT().ListConversations(gomock.Any()).
			Return([]domain.Conversation{{ID: "c1", UnreadCount: 7}}, nil)
		messagingAPI.EXPECT().MarkRead(gomock.Any(), domain.ConversationID("c1")).
			Return(errors.NetworkError(context.DeadlineExceeded))
		req.NoError(svc.LoadConversations(context.Background()))

		svc.MarkRead(context.Background(), "c1")
		req.Equal(0, svc.Conversations()[0].UnreadCount)
	})
}
