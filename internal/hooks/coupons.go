package hooks

import (
	"context"
	"log/slog"

	"github.com/flicky/ecom-admin-console/internal/dto"
	"github.com/flicky/ecom-admin-console/internal/model"
)

type CouponsAPI interface {
	ListCoupons(ctx context.Context) ([]model.Coupon, error)
	GetCoupon(ctx context.Context, id int64) (*model.Coupon, error)
	CreateCoupon(ctx context.Context, req dto.CouponRequest) (*model.Coupon, error)
	UpdateCoupon(ctx context.Context, id int64, req dto.CouponRequest) (*model.Coupon, error)
	DeleteCoupon(ctx context.Context, id int64) error
}

type CouponsState struct {
	Coupons   []model.Coupon `json:"coupons"`
	IsLoading bool           `json:"isLoading"`
	Error     string         `json:"error"`
}

type Coupons struct {
	api CouponsAPI
	l   *loader[[]model.Coupon, dto.NoFilter]
	log *slog.Logger
}

func NewCoupons(api CouponsAPI, opts ...Option) *Coupons {
	h := &Coupons{api: api}
	h.l = newLoader("coupons", dto.NoFilter{}, func(ctx context.Context, _ dto.NoFilter) ([]model.Coupon, error) {
		return api.ListCoupons(ctx)
	}, opts)
	h.log = h.l.log
	return h
}

func (h *Coupons) Mount(ctx context.Context)  { h.l.mount(ctx) }
func (h *Coupons) Unmount()                   { h.l.unmount() }
func (h *Coupons) Reload(ctx context.Context) { h.l.load(ctx) }

func (h *Coupons) State() CouponsState {
	items, loading, errMsg := h.l.snapshot()
	return CouponsState{Coupons: append([]model.Coupon{}, items...), IsLoading: loading, Error: errMsg}
}

func (h *Coupons) Get(ctx context.Context, id int64) (*model.Coupon, error) {
	return fetchOne(ctx, h.log, "get coupon", func(ctx context.Context) (*model.Coupon, error) {
		return h.api.GetCoupon(ctx, id)
	})
}

func (h *Coupons) Create(ctx context.Context, req dto.CouponRequest) error {
	return h.l.mutate(ctx, "create coupon", func(ctx context.Context) error {
		_, err := h.api.CreateCoupon(ctx, req)
		return err
	})
}

func (h *Coupons) Update(ctx context.Context, id int64, req dto.CouponRequest) error {
	return h.l.mutate(ctx, "update coupon", func(ctx context.Context) error {
		_, err := h.api.UpdateCoupon(ctx, id, req)
		return err
	})
}

func (h *Coupons) Delete(ctx context.Context, id int64) error {
	return h.l.mutate(ctx, "delete coupon", func(ctx context.Context) error {
		return h.api.DeleteCoupon(ctx, id)
	})
}
