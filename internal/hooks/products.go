package hooks

import (
	"context"
	"log/slog"

	"github.com/flicky/ecom-admin-console/internal/dto"
	"github.com/flicky/ecom-admin-console/internal/model"
)

// ProductsAPI is the part of the admin API the products hook needs.
type ProductsAPI interface {
	ListProducts(ctx context.Context, f dto.ProductFilter) (*model.Page[model.Product], error)
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
	CreateProduct(ctx context.Context, req dto.ProductCreateRequest) (*model.Product, error)
	UpdateProduct(ctx context.Context, id int64, req dto.ProductUpdateRequest) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	AdjustStock(ctx context.Context, id int64, req dto.StockAdjustRequest) (*model.Product, error)
}

type ProductsState struct {
	Products  []model.Product            `json:"products"`
	PageData  *model.Page[model.Product] `json:"pageData"`
	IsLoading bool                       `json:"isLoading"`
	Error     string                     `json:"error"`
}

type Products struct {
	api ProductsAPI
	l   *loader[*model.Page[model.Product], dto.ProductFilter]
	log *slog.Logger
}

func NewProducts(api ProductsAPI, filters dto.ProductFilter, opts ...Option) *Products {
	h := &Products{api: api}
	h.l = newLoader("products", filters, api.ListProducts, opts)
	h.log = h.l.log
	return h
}

func (h *Products) Mount(ctx context.Context)  { h.l.mount(ctx) }
func (h *Products) Unmount()                   { h.l.unmount() }
func (h *Products) Reload(ctx context.Context) { h.l.load(ctx) }

func (h *Products) SetFilters(ctx context.Context, f dto.ProductFilter) { h.l.setFilters(ctx, f) }

func (h *Products) Filters() dto.ProductFilter { return h.l.currentFilters() }

func (h *Products) State() ProductsState {
	page, loading, errMsg := h.l.snapshot()
	st := ProductsState{Products: []model.Product{}, IsLoading: loading, Error: errMsg}
	if page != nil {
		cp := *page
		cp.Content = append([]model.Product(nil), page.Content...)
		st.PageData = &cp
		st.Products = append(st.Products, page.Content...)
	}
	return st
}

func (h *Products) Get(ctx context.Context, id int64) (*model.Product, error) {
	return fetchOne(ctx, h.log, "get product", func(ctx context.Context) (*model.Product, error) {
		return h.api.GetProduct(ctx, id)
	})
}

func (h *Products) Create(ctx context.Context, req dto.ProductCreateRequest) error {
	return h.l.mutate(ctx, "create product", func(ctx context.Context) error {
		_, err := h.api.CreateProduct(ctx, req)
		return err
	})
}

func (h *Products) Update(ctx context.Context, id int64, req dto.ProductUpdateRequest) error {
	return h.l.mutate(ctx, "update product", func(ctx context.Context) error {
		_, err := h.api.UpdateProduct(ctx, id, req)
		return err
	})
}

func (h *Products) Delete(ctx context.Context, id int64) error {
	return h.l.mutate(ctx, "delete product", func(ctx context.Context) error {
		return h.api.DeleteProduct(ctx, id)
	})
}

func (h *Products) AdjustStock(ctx context.Context, id int64, kind dto.StockAdjustment, quantity int) error {
	return h.l.mutate(ctx, "adjust stock", func(ctx context.Context) error {
		_, err := h.api.AdjustStock(ctx, id, dto.StockAdjustRequest{Type: kind, Quantity: quantity})
		return err
	})
}
