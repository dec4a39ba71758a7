package hooks

import (
	"context"

	"github.com/flicky/ecom-admin-console/internal/dto"
	"github.com/flicky/ecom-admin-console/internal/model"
)

type NotificationsAPI interface {
	ListNotifications(ctx context.Context) ([]model.Notification, error)
	UnreadNotifications(ctx context.Context) ([]model.Notification, error)
	MarkNotificationRead(ctx context.Context, id int64) (*model.Notification, error)
	MarkAllNotificationsRead(ctx context.Context) error
}

type NotificationsState struct {
	Notifications []model.Notification `json:"notifications"`
	// Unread counts the unread entries among Notifications.
	Unread        int                  `json:"unread"`
	IsLoading     bool                 `json:"isLoading"`
	Error         string               `json:"error"`
}

type Notifications struct {
	api NotificationsAPI
	l   *loader[[]model.Notification, dto.NotificationFilter]
}

func NewNotifications(api NotificationsAPI, filters dto.NotificationFilter, opts ...Option) *Notifications {
	h := &Notifications{api: api}
	h.l = newLoader("notifications", filters, func(ctx context.Context, f dto.NotificationFilter) ([]model.Notification, error) {
		if f.UnreadOnly {
			return api.UnreadNotifications(ctx)
		}
		return api.ListNotifications(ctx)
	}, opts)
	return h
}

func (h *Notifications) Mount(ctx context.Context)  { h.l.mount(ctx) }
func (h *Notifications) Unmount()                   { h.l.unmount() }
func (h *Notifications) Reload(ctx context.Context) { h.l.load(ctx) }

func (h *Notifications) SetFilters(ctx context.Context, f dto.NotificationFilter) {
	h.l.setFilters(ctx, f)
}

func (h *Notifications) State() NotificationsState {
	items, loading, errMsg := h.l.snapshot()
	st := NotificationsState{
		Notifications: append([]model.Notification{}, items...),
		IsLoading:     loading,
		Error:         errMsg,
	}
	for _, n := range items {
		if !n.IsRead {
			st.Unread++
		}
	}
	return st
}

func (h *Notifications) MarkAsRead(ctx context.Context, id int64) error {
	return h.l.mutate(ctx, "mark notification as read", func(ctx context.Context) error {
		_, err := h.api.MarkNotificationRead(ctx, id)
		return err
	})
}

func (h *Notifications) MarkAllAsRead(ctx context.Context) error {
	return h.l.mutate(ctx, "mark all notifications as read", h.api.MarkAllNotificationsRead)
}
