// Package event defines the typed events emitted by the conversation
// channel. Consumers receive them from a stream rather than registering
// ambient callbacks, so channel lifecycle and inbound messages flow through
// one ordered queue.
package event

import "skillspot/domain"

// ChannelEvent is implemented by every event emitted by the channel manager.
type ChannelEvent interface {
	Conversation() domain.ConversationID
}

// ChannelOpened signals that the channel for a conversation reached Open.
type ChannelOpened struct {
	ID domain.ConversationID
}

func (e ChannelOpened) Conversation() domain.ConversationID { return e.ID }

// ChannelClosed signals an explicit close, either by deactivation or by the
// single-active-channel rule when another conversation is activated.
type ChannelClosed struct {
	ID domain.ConversationID
}

func (e ChannelClosed) Conversation() domain.ConversationID { return e.ID }

// ChannelErrored signals that the connection failed. The connection reference
// is already dropped when this event is observed; reactivation is explicit.
type ChannelErrored struct {
	ID  domain.ConversationID
	Err error
}

func (e ChannelErrored) Conversation() domain.ConversationID { return e.ID }

// MessageReceived carries a full message record pushed by the server.
type MessageReceived struct {
	Message domain.Message
}

func (e MessageReceived) Conversation() domain.ConversationID {
	return e.Message.ConversationID
}
