//go:generate go run go.uber.org/mock/mockgen -source=notifications.go -destination=../mocks/mock_notification_api.go -package=mocks
package api

import (
	"context"
	"fmt"
	"net/http"

	"skillspot/domain"
)

type INotificationAPI interface {
	List(ctx context.Context, page, pageSize int) ([]domain.Notification, int, error)
	MarkRead(ctx context.Context, id string, read bool) (domain.Notification, error)
	MarkAllRead(ctx context.Context) (int, error)
}

type NotificationAPI struct {
	client *Client
}

func NewNotificationAPI(client *Client) INotificationAPI {
	return &NotificationAPI{client: client}
}

// List returns one page of the notification feed plus the feed's total count.
func (n *NotificationAPI) List(ctx context.Context, page, pageSize int) ([]domain.Notification, int, error) {
	path := fmt.Sprintf("/notifications/?page=%d&page_size=%d", page, pageSize)
	var resp paginated[domain.Notification]
	if err := n.client.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, 0, err
	}
	return resp.Results, resp.Count, nil
}

func (n *NotificationAPI) MarkRead(ctx context.Context, id string, read bool) (domain.Notification, error) {
	body := map[string]bool{"read": read}
	var notification domain.Notification
	if err := n.client.do(ctx, http.MethodPatch, "/notifications/"+id+"/", body, &notification); err != nil {
		return domain.Notification{}, err
	}
	return notification, nil
}

func (n *NotificationAPI) MarkAllRead(ctx context.Context) (int, error) {
	var resp struct {
		Marked int `json:"marked"`
	}
	if err := n.client.do(ctx, http.MethodPost, "/notifications/mark-all-read/", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Marked, nil
}
