package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"skillspot/api"
	"skillspot/domain"

	"github.com/samber/lo"
)

// NotificationFeed mirrors the notification list. Its unread count is the
// second input of the aggregated unread badge, next to the per-conversation
// counters.
type NotificationFeed struct {
	notificationAPI api.INotificationAPI
	log             *slog.Logger

	mu         sync.Mutex
	items      []domain.Notification
	totalCount int
}

func NewNotificationFeed(notificationAPI api.INotificationAPI, log *slog.Logger) *NotificationFeed {
	return &NotificationFeed{notificationAPI: notificationAPI, log: log}
}

// Load replaces the feed with one server page.
func (f *NotificationFeed) Load(ctx context.Context, page, pageSize int) error {
	items, total, err := f.notificationAPI.List(ctx, page, pageSize)
	if err != nil {
		return err
	}
	f.mu.Lock()
	f.items = items
	f.totalCount = total
	f.mu.Unlock()
	return nil
}

// MarkRead flips one notification on the server and mirrors the result.
func (f *NotificationFeed) MarkRead(ctx context.Context, id string, read bool) error {
	updated, err := f.notificationAPI.MarkRead(ctx, id, read)
	if err != nil {
		return err
	}
	f.mu.Lock()
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i] = updated
			break
		}
	}
	f.mu.Unlock()
	return nil
}

// MarkAllRead flips every notification and mirrors the change locally.
func (f *NotificationFeed) MarkAllRead(ctx context.Context) error {
	if _, err := f.notificationAPI.MarkAllRead(ctx); err != nil {
		return err
	}
	now := time.Now()
	f.mu.Lock()
	f.items = lo.Map(f.items, func(n domain.Notification, _ int) domain.Notification {
		n.Read = true
		n.ReadAt = &now
		return n
	})
	f.mu.Unlock()
	return nil
}

func (f *NotificationFeed) Items() []domain.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Notification, len(f.items))
	copy(out, f.items)
	return out
}

// UnreadNotifications implements projection.NotificationSource.
func (f *NotificationFeed) UnreadNotifications() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return lo.CountBy(f.items, func(n domain.Notification) bool { return !n.Read })
}
