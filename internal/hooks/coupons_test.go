package hooks

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flicky/ecom-admin-console/internal/adminapi"
	"github.com/flicky/ecom-admin-console/internal/dto"
	"github.com/flicky/ecom-admin-console/internal/model"
)

func couponRequest() dto.CouponRequest {
	return dto.CouponRequest{Code: "SPRING", Type: model.CouponTypePercentage, Value: decimal.NewFromInt(15)}
}

func TestCoupons_Mount(t *testing.T) {
	api := &fakeCouponsAPI{}
	h := NewCoupons(api)
	assert.True(t, h.State().IsLoading)
	assert.Zero(t, api.calls(), "constructor must not fetch")

	h.Mount(context.Background())
	h.Mount(context.Background())

	st := h.State()
	assert.Equal(t, 1, api.calls())
	assert.False(t, st.IsLoading)
	assert.Empty(t, st.Error)
	require.Len(t, st.Coupons, 1)
	assert.Equal(t, "WELCOME10", st.Coupons[0].Code)
}

func TestCoupons_MutationSuccessReloadsOnce(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		run  func(h *Coupons) error
	}{
		{"create", func(h *Coupons) error { return h.Create(ctx, couponRequest()) }},
		{"update", func(h *Coupons) error { return h.Update(ctx, 1, couponRequest()) }},
		{"delete", func(h *Coupons) error { return h.Delete(ctx, 1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeCouponsAPI{}
			h := NewCoupons(api)
			h.Mount(ctx)
			require.Equal(t, 1, api.calls())

			require.NoError(t, tt.run(h))

			assert.Equal(t, 2, api.calls())
			assert.Equal(t, []string{tt.name}, api.mutations)
		})
	}
}

func TestCoupons_MutationFailureDoesNotReload(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name   string
		action string
		run    func(h *Coupons) error
	}{
		{"create", "create coupon", func(h *Coupons) error { return h.Create(ctx, couponRequest()) }},
		{"update", "update coupon", func(h *Coupons) error { return h.Update(ctx, 1, couponRequest()) }},
		{"delete", "delete coupon", func(h *Coupons) error { return h.Delete(ctx, 1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeCouponsAPI{}
			h := NewCoupons(api)
			h.Mount(ctx)
			before := h.State()

			api.mutationErr = &adminapi.ApplicationError{Message: "Coupon code already exists"}
			err := tt.run(h)

			var actionErr *ActionError
			require.ErrorAs(t, err, &actionErr)
			assert.Equal(t, tt.action, actionErr.Action)
			assert.EqualError(t, err, "failed to "+tt.action)
			assert.ErrorIs(t, err, adminapi.ErrApplication)

			assert.Equal(t, 1, api.calls(), "failed mutation must not reload")
			assert.Equal(t, before, h.State())
		})
	}
}

func TestCoupons_LoadFailure(t *testing.T) {
	ctx := context.Background()
	api := &fakeCouponsAPI{}
	h := NewCoupons(api)
	h.Mount(ctx)
	require.Len(t, h.State().Coupons, 1)

	api.listErr = serverError()
	h.Reload(ctx)

	st := h.State()
	assert.Equal(t, "Failed to load coupons", st.Error)
	assert.Empty(t, st.Coupons)
	assert.False(t, st.IsLoading)
}
