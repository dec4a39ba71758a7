package hooks

import (
	"context"
	"log/slog"

	"github.com/flicky/ecom-admin-console/internal/dto"
	"github.com/flicky/ecom-admin-console/internal/model"
)

type OrdersAPI interface {
	ListOrders(ctx context.Context, f dto.OrderFilter) (*dto.OrderList, error)
	GetOrder(ctx context.Context, id int64) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error)
}

type OrdersState struct {
	Orders     []model.Order `json:"orders"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
	IsLoading  bool          `json:"isLoading"`
	Error      string        `json:"error"`
}

type Orders struct {
	api OrdersAPI
	l   *loader[*dto.OrderList, dto.OrderFilter]
	log *slog.Logger
}

func NewOrders(api OrdersAPI, filters dto.OrderFilter, opts ...Option) *Orders {
	h := &Orders{api: api}
	h.l = newLoader("orders", filters, api.ListOrders, opts)
	h.log = h.l.log
	return h
}

func (h *Orders) Mount(ctx context.Context)  { h.l.mount(ctx) }
func (h *Orders) Unmount()                   { h.l.unmount() }
func (h *Orders) Reload(ctx context.Context) { h.l.load(ctx) }

func (h *Orders) SetFilters(ctx context.Context, f dto.OrderFilter) { h.l.setFilters(ctx, f) }

func (h *Orders) State() OrdersState {
	list, loading, errMsg := h.l.snapshot()
	st := OrdersState{Orders: []model.Order{}, IsLoading: loading, Error: errMsg}
	if list != nil {
		st.Orders = append(st.Orders, list.Orders...)
		st.Total = list.Total
		st.Page = list.Page
		st.TotalPages = list.TotalPages
	}
	return st
}

func (h *Orders) Get(ctx context.Context, id int64) (*model.Order, error) {
	return fetchOne(ctx, h.log, "get order", func(ctx context.Context) (*model.Order, error) {
		return h.api.GetOrder(ctx, id)
	})
}

// UpdateStatus requests a transition; the backend decides whether it is legal.
func (h *Orders) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	return h.l.mutate(ctx, "update order status", func(ctx context.Context) error {
		_, err := h.api.UpdateOrderStatus(ctx, id, status)
		return err
	})
}
