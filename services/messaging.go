package services

import (
	"context"
	"log/slog"
	"sync"

	"skillspot/api"
	"skillspot/channel"
	"skillspot/domain"
	"skillspot/domain/event"
	"skillspot/errors"
	"skillspot/projection"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IMessagingSession interface {
	LoadConversations(ctx context.Context) error
	OpenConversation(ctx context.Context, id domain.ConversationID, markRead bool) error
	CreateConversation(ctx context.Context, req api.CreateConversationRequest) (domain.Conversation, error)
	SendViaRequest(ctx context.Context, content string) (domain.Message, error)
	SendViaChannel(content string) error
	MarkRead(ctx context.Context, id domain.ConversationID)
	Consume(e event.ChannelEvent)
	Conversations() []domain.Conversation
	Messages() []domain.Message
	ActiveConversation() (domain.ConversationID, bool)
	Disconnected() bool
}

// MessagingSession merges REST-fetched history and channel pushes into one
// ordered, deduplicated sequence per conversation. The channel manager is
// its only source of push events; both delivery paths meet in the thread's
// dedup-by-id rule.
type MessagingSession struct {
	messagingAPI api.IMessagingAPI
	channel      channel.IManager
	log          *slog.Logger

	mu            sync.Mutex
	conversations []domain.Conversation
	active        domain.ConversationID
	thread        *projection.Thread
	openToken     uuid.UUID
	disconnected  bool
}

func NewMessagingSession(messagingAPI api.IMessagingAPI, channelManager channel.IManager, log *slog.Logger) *MessagingSession {
	return &MessagingSession{
		messagingAPI: messagingAPI,
		channel:      channelManager,
		log:          log,
	}
}

// LoadConversations replaces the summary list with the latest server
// snapshot. On failure the cached list stays untouched.
func (s *MessagingSession) LoadConversations(ctx context.Context) error {
	conversations, err := s.messagingAPI.ListConversations(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.conversations = conversations
	s.mu.Unlock()
	return nil
}

// OpenConversation fetches the history for id, replaces the local sequence
// and activates the push channel. A stale fetch superseded by a newer open
// never overwrites the thread: each call claims a fresh request token and
// only the holder of the current token may commit its snapshot.
func (s *MessagingSession) OpenConversation(ctx context.Context, id domain.ConversationID, markRead bool) error {
	s.mu.Lock()
	token := uuid.New()
	s.openToken = token
	s.mu.Unlock()

	messages, err := s.messagingAPI.GetMessages(ctx, id, markRead)
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.openToken != token {
		s.mu.Unlock()
		s.log.Debug("stale conversation fetch discarded", slog.String("conversation", string(id)))
		return nil
	}
	s.active = id
	s.thread = projection.NewThread(id)
	s.thread.Replace(messages)
	if markRead {
		s.zeroUnreadLocked(id)
	}
	s.mu.Unlock()

	// Channel failures degrade to a disconnected indicator, they never block
	// the conversation view.
	if err := s.channel.Activate(ctx, id); err != nil {
		s.mu.Lock()
		s.disconnected = true
		s.mu.Unlock()
	}
	return nil
}

// CreateConversation starts a new conversation and appends its summary.
func (s *MessagingSession) CreateConversation(ctx context.Context, req api.CreateConversationRequest) (domain.Conversation, error) {
	conversation, err := s.messagingAPI.CreateConversation(ctx, req)
	if err != nil {
		return domain.Conversation{}, err
	}
	s.mu.Lock()
	s.conversations = append(s.conversations, conversation)
	s.mu.Unlock()
	return conversation, nil
}

// SendViaRequest persists the message over REST and appends the canonical
// record immediately, without waiting for a channel echo. The echo, if it
// arrives, is deduplicated by id.
func (s *MessagingSession) SendViaRequest(ctx context.Context, content string) (domain.Message, error) {
	s.mu.Lock()
	id := s.active
	hasThread := s.thread != nil
	s.mu.Unlock()
	if !hasThread {
		return domain.Message{}, errors.ErrNoActiveThread
	}

	message, err := s.messagingAPI.SendMessage(ctx, id, content)
	if err != nil {
		return domain.Message{}, err
	}

	s.mu.Lock()
	if s.thread != nil && s.active == id {
		s.thread.Append(message)
		s.refreshPreviewLocked(message)
	}
	s.mu.Unlock()
	return message, nil
}

// SendViaChannel pushes the content over the live channel. The server echo
// appends the persisted record.
func (s *MessagingSession) SendViaChannel(content string) error {
	return s.channel.Send(content)
}

// MarkRead optimistically zeroes the local counter, then confirms with the
// server. A failed confirmation is logged but not rolled back; the server
// snapshot reconciles on the next fetch.
func (s *MessagingSession) MarkRead(ctx context.Context, id domain.ConversationID) {
	s.mu.Lock()
	s.zeroUnreadLocked(id)
	s.mu.Unlock()

	if err := s.messagingAPI.MarkRead(ctx, id); err != nil {
		s.log.Warn("mark-read confirmation failed",
			slog.String("conversation", string(id)),
			slog.String("error", err.Error()))
	}
}

// Consume applies one channel event. MessageReceived feeds the dedup append;
// lifecycle events only move the disconnected indicator.
func (s *MessagingSession) Consume(e event.ChannelEvent) {
	switch evt := e.(type) {
	case event.MessageReceived:
		s.appendFromChannel(evt.Message)
	case event.ChannelOpened:
		s.mu.Lock()
		s.disconnected = false
		s.mu.Unlock()
	case event.ChannelClosed, event.ChannelErrored:
		s.mu.Lock()
		s.disconnected = true
		s.mu.Unlock()
	}
}

// appendFromChannel appends a pushed message to the active thread under the
// dedup rule, or bumps the summary of an inactive conversation.
func (s *MessagingSession) appendFromChannel(message domain.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.thread != nil && message.ConversationID == s.active {
		if s.thread.Append(message) {
			s.refreshPreviewLocked(message)
		}
		return
	}

	// Push for a conversation that is not on screen: reflect it in the
	// summary so the unread badge moves without a refetch.
	_, idx, found := lo.FindIndexOf(s.conversations, func(c domain.Conversation) bool {
		return c.ID == message.ConversationID
	})
	if !found {
		return
	}
	s.conversations[idx].UnreadCount++
	s.conversations[idx].LastMessage = &domain.LastMessage{
		ID:          message.ID,
		Content:     message.Content,
		SenderEmail: message.SenderEmail,
		CreatedAt:   message.CreatedAt,
	}
	s.conversations[idx].LastMessageAt = &message.CreatedAt
}

func (s *MessagingSession) Conversations() []domain.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Conversation, len(s.conversations))
	copy(out, s.conversations)
	return out
}

func (s *MessagingSession) Messages() []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.thread == nil {
		return nil
	}
	return s.thread.Messages()
}

func (s *MessagingSession) ActiveConversation() (domain.ConversationID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.thread == nil {
		return "", false
	}
	return s.active, true
}

// Disconnected reports whether the push channel is currently down. Purely an
// indicator; reconnection stays an explicit OpenConversation call.
func (s *MessagingSession) Disconnected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disconnected
}

func (s *MessagingSession) zeroUnreadLocked(id domain.ConversationID) {
	for i := range s.conversations {
		if s.conversations[i].ID == id {
			s.conversations[i].UnreadCount = 0
			return
		}
	}
}

func (s *MessagingSession) refreshPreviewLocked(message domain.Message) {
	for i := range s.conversations {
		if s.conversations[i].ID == message.ConversationID {
			s.conversations[i].LastMessage = &domain.LastMessage{
				ID:          message.ID,
				Content:     message.Content,
				SenderEmail: message.SenderEmail,
				CreatedAt:   message.CreatedAt,
			}
			s.conversations[i].LastMessageAt = &message.CreatedAt
			return
		}
	}
}
