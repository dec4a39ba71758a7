package hooks

import (
	"context"
	"log/slog"

	"github.com/flicky/ecom-admin-console/internal/dto"
	"github.com/flicky/ecom-admin-console/internal/model"
)

type CategoriesAPI interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	GetCategory(ctx context.Context, id int64) (*model.Category, error)
}

type CategoriesState struct {
	Categories []model.Category `json:"categories"`
	IsLoading  bool             `json:"isLoading"`
	Error      string           `json:"error"`
}

type Categories struct {
	api CategoriesAPI
	l   *loader[[]model.Category, dto.NoFilter]
	log *slog.Logger
}

func NewCategories(api CategoriesAPI, opts ...Option) *Categories {
	h := &Categories{api: api}
	h.l = newLoader("categories", dto.NoFilter{}, func(ctx context.Context, _ dto.NoFilter) ([]model.Category, error) {
		return api.ListCategories(ctx)
	}, opts)
	h.log = h.l.log
	return h
}

func (h *Categories) Mount(ctx context.Context)  { h.l.mount(ctx) }
func (h *Categories) Unmount()                   { h.l.unmount() }
func (h *Categories) Reload(ctx context.Context) { h.l.load(ctx) }

func (h *Categories) State() CategoriesState {
	items, loading, errMsg := h.l.snapshot()
	return CategoriesState{
		Categories: append([]model.Category{}, items...),
		IsLoading:  loading,
		Error:      errMsg,
	}
}

func (h *Categories) Get(ctx context.Context, id int64) (*model.Category, error) {
	return fetchOne(ctx, h.log, "get category", func(ctx context.Context) (*model.Category, error) {
		return h.api.GetCategory(ctx, id)
	})
}
