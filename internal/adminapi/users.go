package adminapi

import (
	"context"
	"fmt"

	"github.com/flicky/ecom-admin-console/internal/dto"
	"github.com/flicky/ecom-admin-console/internal/model"
)

const usersPath = "/admin/users"

func (c *Client) ListUsers(ctx context.Context, f dto.UserFilter) ([]model.User, error) {
	var out []model.User
	if err := c.get(ctx, usersPath, f.Query(), &out); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return out, nil
}

func (c *Client) GetUser(ctx context.Context, id int64) (*model.User, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	var u model.User
	if err := c.get(ctx, fmt.Sprintf("%s/%d", usersPath, id), nil, &u); err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &u, nil
}
