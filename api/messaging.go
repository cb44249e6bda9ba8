//go:generate go run go.uber.org/mock/mockgen -source=messaging.go -destination=../mocks/mock_messaging_api.go -package=mocks
package api

import (
	"context"
	"fmt"
	"net/http"

	"skillspot/domain"
)

type IMessagingAPI interface {
	ListConversations(ctx context.Context) ([]domain.Conversation, error)
	CreateConversation(ctx context.Context, req CreateConversationRequest) (domain.Conversation, error)
	GetMessages(ctx context.Context, id domain.ConversationID, markRead bool) ([]domain.Message, error)
	SendMessage(ctx context.Context, id domain.ConversationID, content string) (domain.Message, error)
	MarkRead(ctx context.Context, id domain.ConversationID) error
	UnreadCount(ctx context.Context) (int, error)
}

// CreateConversationRequest starts a conversation with another participant,
// optionally bound to a job and seeded with a first message.
type CreateConversationRequest struct {
	Participant2ID string `json:"participant2_id"`
	JobID          string `json:"job_id,omitempty"`
	InitialMessage string `json:"initial_message,omitempty"`
}

type MessagingAPI struct {
	client *Client
}

func NewMessagingAPI(client *Client) IMessagingAPI {
	return &MessagingAPI{client: client}
}

func (m *MessagingAPI) ListConversations(ctx context.Context) ([]domain.Conversation, error) {
	var page paginated[domain.Conversation]
	if err := m.client.do(ctx, http.MethodGet, "/messaging/conversations/", nil, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

func (m *MessagingAPI) CreateConversation(ctx context.Context, req CreateConversationRequest) (domain.Conversation, error) {
	var conversation domain.Conversation
	if err := m.client.do(ctx, http.MethodPost, "/messaging/conversations/", req, &conversation); err != nil {
		return domain.Conversation{}, err
	}
	return conversation, nil
}

func (m *MessagingAPI) GetMessages(ctx context.Context, id domain.ConversationID, markRead bool) ([]domain.Message, error) {
	path := fmt.Sprintf("/messaging/conversations/%s/messages/", id)
	if markRead {
		path += "?mark_read=true"
	}
	var page paginated[domain.Message]
	if err := m.client.do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

func (m *MessagingAPI) SendMessage(ctx context.Context, id domain.ConversationID, content string) (domain.Message, error) {
	path := fmt.Sprintf("/messaging/conversations/%s/messages/", id)
	body := map[string]string{"content": content}
	var message domain.Message
	if err := m.client.do(ctx, http.MethodPost, path, body, &message); err != nil {
		return domain.Message{}, err
	}
	return message, nil
}

func (m *MessagingAPI) MarkRead(ctx context.Context, id domain.ConversationID) error {
	path := fmt.Sprintf("/messaging/conversations/%s/mark-read/", id)
	return m.client.do(ctx, http.MethodPost, path, nil, nil)
}

// UnreadCount returns the total number of unread messages across all
// conversations. Older server versions answer {"count": n} instead of
// {"total_unread": n}; both are accepted.
func (m *MessagingAPI) UnreadCount(ctx context.Context) (int, error) {
	var resp struct {
		TotalUnread *int `json:"total_unread"`
		Count       *int `json:"count"`
	}
	if err := m.client.do(ctx, http.MethodGet, "/messaging/conversations/unread-count/", nil, &resp); err != nil {
		return 0, err
	}
	if resp.TotalUnread != nil {
		return *resp.TotalUnread, nil
	}
	if resp.Count != nil {
		return *resp.Count, nil
	}
	return 0, nil
}
