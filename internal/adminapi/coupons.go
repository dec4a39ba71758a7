package adminapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/flicky/ecom-admin-console/internal/dto"
	"github.com/flicky/ecom-admin-console/internal/model"
)

const couponsPath = "/admin/coupons"

func couponPath(id int64) string { return fmt.Sprintf("%s/%d", couponsPath, id) }

func (c *Client) ListCoupons(ctx context.Context) ([]model.Coupon, error) {
	var out []model.Coupon
	if err := c.get(ctx, couponsPath, nil, &out); err != nil {
		return nil, fmt.Errorf("list coupons: %w", err)
	}
	return out, nil
}

func (c *Client) GetCoupon(ctx context.Context, id int64) (*model.Coupon, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	var cp model.Coupon
	if err := c.get(ctx, couponPath(id), nil, &cp); err != nil {
		return nil, fmt.Errorf("get coupon %d: %w", id, err)
	}
	return &cp, nil
}

func (c *Client) CreateCoupon(ctx context.Context, req dto.CouponRequest) (*model.Coupon, error) {
	var cp model.Coupon
	if err := c.send(ctx, http.MethodPost, couponsPath, nil, req, &cp); err != nil {
		return nil, fmt.Errorf("create coupon: %w", err)
	}
	return &cp, nil
}

func (c *Client) UpdateCoupon(ctx context.Context, id int64, req dto.CouponRequest) (*model.Coupon, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	var cp model.Coupon
	if err := c.send(ctx, http.MethodPut, couponPath(id), nil, req, &cp); err != nil {
		return nil, fmt.Errorf("update coupon %d: %w", id, err)
	}
	return &cp, nil
}

func (c *Client) DeleteCoupon(ctx context.Context, id int64) error {
	if err := requireID(id); err != nil {
		return err
	}
	if err := c.send(ctx, http.MethodDelete, couponPath(id), nil, nil, nil); err != nil {
		return fmt.Errorf("delete coupon %d: %w", id, err)
	}
	return nil
}
