//go:generate go run go.uber.org/mock/mockgen -source=manager.go -destination=../mocks/mock_channel.go -package=mocks

// Package channel manages the single live push connection bound to the
// active conversation. Activation is explicit, reconnection is explicit, and
// every lifecycle change or inbound message surfaces as a typed event on one
// stream.
package channel

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"

	"skillspot/api"
	"skillspot/domain"
	"skillspot/domain/event"
	"skillspot/errors"
)

type IManager interface {
	Activate(ctx context.Context, id domain.ConversationID) error
	Deactivate()
	Send(content string) error
	Events() <-chan event.ChannelEvent
	State() domain.ChannelState
	ActiveConversation() (domain.ConversationID, bool)
}

// Conn is the minimal surface the manager needs from a websocket connection.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteJSON(v any) error
	Close() error
}

// Dialer opens a websocket connection to the given URL.
type Dialer interface {
	Dial(ctx context.Context, rawURL string) (Conn, error)
}

// outboundEnvelope is the only frame the client sends over the channel.
type outboundEnvelope struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// eventBuffer bounds the stream so a stalled consumer cannot wedge the
// reader goroutine; overflow is dropped with a warning.
const eventBuffer = 64

type Manager struct {
	wsBaseURL string
	tokens    api.TokenProvider
	dialer    Dialer
	log       *slog.Logger
	events    chan event.ChannelEvent

	mu     sync.Mutex
	state  domain.ChannelState
	active domain.ConversationID
	conn   Conn
	gen    uint64
}

func NewManager(wsBaseURL string, tokens api.TokenProvider, dialer Dialer, log *slog.Logger) *Manager {
	return &Manager{
		wsBaseURL: strings.TrimRight(wsBaseURL, "/"),
		tokens:    tokens,
		dialer:    dialer,
		log:       log,
		events:    make(chan event.ChannelEvent, eventBuffer),
		state:     domain.ChannelClosed,
	}
}

// Activate opens the channel for the given conversation. Any prior
// connection is closed first, so at most one connection is ever Open or
// Connecting. Without a session token this is a no-op: there is no channel
// without a session. A dial failure leaves the manager Errored with the
// connection reference dropped; retrying is the caller's explicit decision.
func (m *Manager) Activate(ctx context.Context, id domain.ConversationID) error {
	token, ok := m.tokens.AccessToken()
	if !ok {
		m.log.Debug("channel activation skipped, no session")
		return nil
	}

	m.mu.Lock()
	m.closeCurrentLocked()
	gen := m.nextGenLocked()
	m.state = domain.ChannelConnecting
	m.active = id
	m.mu.Unlock()

	conn, err := m.dialer.Dial(ctx, m.channelURL(id, token))

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.gen != gen {
		// Superseded by another Activate or a Deactivate while dialing.
		if conn != nil {
			_ = conn.Close()
		}
		return nil
	}
	if err != nil {
		m.state = domain.ChannelErrored
		m.conn = nil
		m.emit(event.ChannelErrored{ID: id, Err: err})
		m.log.Warn("channel dial failed",
			slog.String("conversation", string(id)),
			slog.String("error", err.Error()))
		return fmt.Errorf("open channel: %w", err)
	}

	m.state = domain.ChannelOpen
	m.conn = conn
	go m.readLoop(gen, id, conn)
	m.emit(event.ChannelOpened{ID: id})
	return nil
}

// Deactivate closes the current connection, if any.
func (m *Manager) Deactivate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeCurrentLocked()
	m.nextGenLocked()
	m.state = domain.ChannelClosed
}

// Send pushes an outbound content envelope. Fire-and-forget: the persisted
// message comes back over the same channel as a server echo, so nothing is
// appended locally here.
func (m *Manager) Send(content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != domain.ChannelOpen || m.conn == nil {
		return errors.ErrChannelNotOpen
	}
	return m.conn.WriteJSON(outboundEnvelope{Type: "send_message", Content: content})
}

func (m *Manager) Events() <-chan event.ChannelEvent {
	return m.events
}

func (m *Manager) State() domain.ChannelState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Manager) ActiveConversation() (domain.ConversationID, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == domain.ChannelOpen || m.state == domain.ChannelConnecting {
		return m.active, true
	}
	return "", false
}

// closeCurrentLocked tears down the live connection and emits ChannelClosed.
// The prior conversation observes Closed before any successor reaches
// Connecting.
func (m *Manager) closeCurrentLocked() {
	if m.conn == nil {
		return
	}
	_ = m.conn.Close()
	m.conn = nil
	prev := m.active
	m.state = domain.ChannelClosed
	m.emit(event.ChannelClosed{ID: prev})
}

// nextGenLocked invalidates the current reader goroutine and any in-flight
// dial so their late results are discarded.
func (m *Manager) nextGenLocked() uint64 {
	m.gen++
	return m.gen
}

func (m *Manager) channelURL(id domain.ConversationID, token string) string {
	return fmt.Sprintf("%s/ws/messaging/%s/?token=%s", m.wsBaseURL, id, url.QueryEscape(token))
}

// readLoop drains inbound frames until the connection dies. It belongs to
// one generation: once superseded it exits without touching manager state.
func (m *Manager) readLoop(gen uint64, id domain.ConversationID, conn Conn) {
	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			m.mu.Lock()
			if m.gen == gen {
				// Unexpected death of the live connection.
				m.state = domain.ChannelErrored
				m.conn = nil
				m.emit(event.ChannelErrored{ID: id, Err: err})
				m.log.Warn("channel read failed",
					slog.String("conversation", string(id)),
					slog.String("error", err.Error()))
			}
			m.mu.Unlock()
			return
		}

		message, ok := decodeInbound(payload)
		if !ok {
			// Malformed payloads must never propagate past the channel
			// boundary.
			m.log.Debug("dropped malformed channel payload",
				slog.String("conversation", string(id)))
			continue
		}

		m.mu.Lock()
		if m.gen == gen {
			m.emit(event.MessageReceived{Message: message})
		}
		m.mu.Unlock()
	}
}

// decodeInbound parses a pushed payload into a full message record. Payloads
// that fail to parse or miss id/content are discarded.
func decodeInbound(payload []byte) (domain.Message, bool) {
	var message domain.Message
	if err := json.Unmarshal(payload, &message); err != nil {
		return domain.Message{}, false
	}
	if message.ID == "" || message.Content == "" {
		return domain.Message{}, false
	}
	return message, true
}

// emit never blocks: a full stream drops the event instead of stalling the
// caller, which keeps channel teardown synchronous.
func (m *Manager) emit(e event.ChannelEvent) {
	select {
	case m.events <- e:
	default:
		m.log.Warn("channel event dropped, stream full",
			slog.String("conversation", string(e.Conversation())))
	}
}
