package adminapi

import (
	"context"
	"fmt"

	"github.com/flicky/ecom-admin-console/internal/model"
)

const categoriesPath = "/admin/categories"

func (c *Client) ListCategories(ctx context.Context) ([]model.Category, error) {
	var out []model.Category
	if err := c.get(ctx, categoriesPath, nil, &out); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return out, nil
}

func (c *Client) GetCategory(ctx context.Context, id int64) (*model.Category, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	var cat model.Category
	if err := c.get(ctx, fmt.Sprintf("%s/%d", categoriesPath, id), nil, &cat); err != nil {
		return nil, fmt.Errorf("get category %d: %w", id, err)
	}
	return &cat, nil
}
