package adminapi

import (
	"context"
	"fmt"

	"github.com/flicky/ecom-admin-console/internal/dto"
	"github.com/flicky/ecom-admin-console/internal/model"
)

func (c *Client) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	var stats model.DashboardStats
	if err := c.get(ctx, "/admin/dashboard/stats", nil, &stats); err != nil {
		return nil, fmt.Errorf("get dashboard stats: %w", err)
	}
	return &stats, nil
}

// SalesData returns one point per day for the last days days (30 when days <= 0).
func (c *Client) SalesData(ctx context.Context, days int) ([]model.SalesDataPoint, error) {
	var out []model.SalesDataPoint
	q := dto.SalesFilter{Days: days}.Query()
	if err := c.get(ctx, "/admin/dashboard/sales", q, &out); err != nil {
		return nil, fmt.Errorf("get sales data: %w", err)
	}
	return out, nil
}
