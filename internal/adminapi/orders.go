package adminapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/flicky/ecom-admin-console/internal/dto"
	"github.com/flicky/ecom-admin-console/internal/model"
)

const ordersPath = "/admin/orders"

func orderPath(id int64) string { return fmt.Sprintf("%s/%d", ordersPath, id) }

func (c *Client) ListOrders(ctx context.Context, f dto.OrderFilter) (*dto.OrderList, error) {
	var out dto.OrderList
	if err := c.get(ctx, ordersPath, f.Query(), &out); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return &out, nil
}

func (c *Client) GetOrder(ctx context.Context, id int64) (*model.Order, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	var o model.Order
	if err := c.get(ctx, orderPath(id), nil, &o); err != nil {
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}
	return &o, nil
}

// UpdateOrderStatus requests a status transition. Whether the transition is
// allowed is decided by the backend.
func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	var o model.Order
	body := dto.OrderStatusUpdateRequest{Status: status}
	if err := c.send(ctx, http.MethodPatch, orderPath(id)+"/status", nil, body, &o); err != nil {
		return nil, fmt.Errorf("update status of order %d: %w", id, err)
	}
	return &o, nil
}
