package adminapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/flicky/ecom-admin-console/internal/model"
)

const notificationsPath = "/admin/notifications"

func (c *Client) ListNotifications(ctx context.Context) ([]model.Notification, error) {
	var out []model.Notification
	if err := c.get(ctx, notificationsPath, nil, &out); err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return out, nil
}

func (c *Client) UnreadNotifications(ctx context.Context) ([]model.Notification, error) {
	var out []model.Notification
	if err := c.get(ctx, notificationsPath+"/unread", nil, &out); err != nil {
		return nil, fmt.Errorf("list unread notifications: %w", err)
	}
	return out, nil
}

func (c *Client) UnreadCount(ctx context.Context) (int64, error) {
	var n int64
	if err := c.get(ctx, notificationsPath+"/count", nil, &n); err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return n, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, id int64) (*model.Notification, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	var n model.Notification
	path := fmt.Sprintf("%s/%d/read", notificationsPath, id)
	if err := c.send(ctx, http.MethodPatch, path, nil, nil, &n); err != nil {
		return nil, fmt.Errorf("mark notification %d read: %w", id, err)
	}
	return &n, nil
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	if err := c.send(ctx, http.MethodPatch, notificationsPath+"/mark-all-read", nil, nil, nil); err != nil {
		return fmt.Errorf("mark all notifications read: %w", err)
	}
	return nil
}
