package hooks

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flicky/ecom-admin-console/internal/adminapi"
	"github.com/flicky/ecom-admin-console/internal/dto"
	"github.com/flicky/ecom-admin-console/internal/model"
)

func TestProducts_InitialState(t *testing.T) {
	api := newFakeProductsAPI("A")
	h := NewProducts(api, dto.ProductFilter{})

	st := h.State()
	assert.True(t, st.IsLoading)
	assert.Empty(t, st.Products)
	assert.Nil(t, st.PageData)
	assert.Empty(t, st.Error)
	assert.Empty(t, api.calls(), "constructor must not fetch")
}

func TestProducts_Mount(t *testing.T) {
	api := newFakeProductsAPI("A", "B")
	h := NewProducts(api, dto.ProductFilter{CategoryID: 3})
	h.Mount(context.Background())
	h.Mount(context.Background())

	st := h.State()
	assert.False(t, st.IsLoading)
	assert.Empty(t, st.Error)
	require.Len(t, st.Products, 2)
	require.NotNil(t, st.PageData)
	assert.Equal(t, 0, st.PageData.CurrentPage)
	assert.Equal(t, []dto.ProductFilter{{CategoryID: 3}}, api.calls())
}

func TestProducts_SetFilters_EqualValuesDoNotRefetch(t *testing.T) {
	api := newFakeProductsAPI("A")
	h := NewProducts(api, dto.ProductFilter{CategoryID: 3, Page: dto.Ptr(1), Size: dto.Ptr(10)})
	h.Mount(context.Background())

	// Fresh pointers, same values.
	h.SetFilters(context.Background(), dto.ProductFilter{CategoryID: 3, Page: dto.Ptr(1), Size: dto.Ptr(10)})
	assert.Len(t, api.calls(), 1)

	h.SetFilters(context.Background(), dto.ProductFilter{CategoryID: 3, Page: dto.Ptr(2), Size: dto.Ptr(10)})
	calls := api.calls()
	require.Len(t, calls, 2)
	assert.Equal(t, 2, *calls[1].Page)
}

func TestProducts_SetFiltersBeforeMount(t *testing.T) {
	api := newFakeProductsAPI("A")
	h := NewProducts(api, dto.ProductFilter{})
	h.SetFilters(context.Background(), dto.ProductFilter{Search: "lamp"})
	assert.Empty(t, api.calls())

	h.Mount(context.Background())
	assert.Equal(t, []dto.ProductFilter{{Search: "lamp"}}, api.calls())
	assert.Equal(t, "lamp", h.Filters().Search)
}

func TestProducts_MutationSuccessReloadsOnce(t *testing.T) {
	ctx := context.Background()
	filters := dto.ProductFilter{CategoryID: 2, Size: dto.Ptr(5)}

	tests := []struct {
		name string
		run  func(h *Products) error
	}{
		{"create", func(h *Products) error {
			return h.Create(ctx, dto.ProductCreateRequest{Name: "Widget", CategoryID: 2})
		}},
		{"update", func(h *Products) error {
			return h.Update(ctx, 1, dto.ProductUpdateRequest{Name: dto.Ptr("Gadget")})
		}},
		{"delete", func(h *Products) error { return h.Delete(ctx, 1) }},
		{"stock", func(h *Products) error { return h.AdjustStock(ctx, 1, dto.StockAdd, 5) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newFakeProductsAPI("A")
			h := NewProducts(api, filters)
			h.Mount(ctx)
			require.Len(t, api.calls(), 1)

			require.NoError(t, tt.run(h))

			calls := api.calls()
			require.Len(t, calls, 2)
			assert.True(t, calls[1].Equal(filters), "reload must use the current filters")
			assert.Equal(t, []string{tt.name}, api.mutations)
		})
	}
}

func TestProducts_MutationFailureDoesNotReload(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name   string
		action string
		run    func(h *Products) error
	}{
		{"create", "create product", func(h *Products) error {
			return h.Create(ctx, dto.ProductCreateRequest{Name: "Widget"})
		}},
		{"update", "update product", func(h *Products) error {
			return h.Update(ctx, 1, dto.ProductUpdateRequest{})
		}},
		{"delete", "delete product", func(h *Products) error { return h.Delete(ctx, 1) }},
		{"stock", "adjust stock", func(h *Products) error { return h.AdjustStock(ctx, 1, dto.StockRemove, 500) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newFakeProductsAPI("A", "B")
			h := NewProducts(api, dto.ProductFilter{})
			h.Mount(ctx)
			before := h.State()

			api.mutationErr = &adminapi.ApplicationError{Message: "Insufficient stock"}
			err := tt.run(h)

			require.Error(t, err)
			var actionErr *ActionError
			require.ErrorAs(t, err, &actionErr)
			assert.Equal(t, tt.action, actionErr.Action)
			assert.Equal(t, "failed to "+tt.action, err.Error())
			assert.ErrorIs(t, err, adminapi.ErrApplication)

			assert.Len(t, api.calls(), 1, "failed mutation must not reload")
			assert.Equal(t, before, h.State())
		})
	}
}

func TestProducts_LoadFailureClearsState(t *testing.T) {
	ctx := context.Background()
	api := newFakeProductsAPI("A", "B")
	h := NewProducts(api, dto.ProductFilter{})
	h.Mount(ctx)
	require.Len(t, h.State().Products, 2)

	api.setList(func(context.Context, dto.ProductFilter) (*model.Page[model.Product], error) {
		return nil, serverError()
	})
	h.Reload(ctx)

	st := h.State()
	assert.Equal(t, "Failed to load products", st.Error)
	assert.NotNil(t, st.Products)
	assert.Empty(t, st.Products)
	assert.Nil(t, st.PageData)
	assert.False(t, st.IsLoading)

	api.setList(func(context.Context, dto.ProductFilter) (*model.Page[model.Product], error) {
		return productPage("C"), nil
	})
	h.Reload(ctx)

	st = h.State()
	assert.Empty(t, st.Error)
	require.Len(t, st.Products, 1)
	assert.Equal(t, "C", st.Products[0].Name)
}

func TestProducts_SupersededResponseIsDiscarded(t *testing.T) {
	ctx := context.Background()
	api := newFakeProductsAPI()
	started := make(chan struct{})
	release := make(chan struct{})
	api.setList(func(_ context.Context, f dto.ProductFilter) (*model.Page[model.Product], error) {
		if f.Search == "old" {
			close(started)
			<-release
			return productPage("stale"), nil
		}
		return productPage("fresh"), nil
	})

	h := NewProducts(api, dto.ProductFilter{Search: "old"})
	done := make(chan struct{})
	go func() {
		h.Mount(ctx)
		close(done)
	}()
	<-started

	h.SetFilters(ctx, dto.ProductFilter{Search: "new"})
	close(release)
	<-done

	st := h.State()
	require.Len(t, st.Products, 1)
	assert.Equal(t, "fresh", st.Products[0].Name)
	assert.False(t, st.IsLoading)
	assert.Empty(t, st.Error)
}

func TestProducts_NewLoadCancelsPrevious(t *testing.T) {
	ctx := context.Background()
	api := newFakeProductsAPI()
	started := make(chan struct{})
	var cancelled atomic.Bool
	api.setList(func(ctx context.Context, f dto.ProductFilter) (*model.Page[model.Product], error) {
		if f.Search == "old" {
			close(started)
			<-ctx.Done()
			cancelled.Store(true)
			return nil, ctx.Err()
		}
		return productPage("fresh"), nil
	})

	h := NewProducts(api, dto.ProductFilter{Search: "old"})
	done := make(chan struct{})
	go func() {
		h.Mount(ctx)
		close(done)
	}()
	<-started
	h.SetFilters(ctx, dto.ProductFilter{Search: "new"})
	<-done

	assert.True(t, cancelled.Load())
	st := h.State()
	assert.Empty(t, st.Error, "a cancelled superseded load must not surface an error")
	require.Len(t, st.Products, 1)
	assert.Equal(t, "fresh", st.Products[0].Name)
}

func TestProducts_UnmountDiscardsLateResponse(t *testing.T) {
	ctx := context.Background()
	api := newFakeProductsAPI()
	started := make(chan struct{})
	release := make(chan struct{})
	api.setList(func(context.Context, dto.ProductFilter) (*model.Page[model.Product], error) {
		close(started)
		<-release
		return productPage("late"), nil
	})

	h := NewProducts(api, dto.ProductFilter{})
	done := make(chan struct{})
	go func() {
		h.Mount(ctx)
		close(done)
	}()
	<-started
	h.Unmount()
	close(release)
	<-done

	assert.Empty(t, h.State().Products)

	h.Reload(ctx)
	assert.Len(t, api.calls(), 1, "unmounted hooks do not load")
}

func TestProducts_OnChange(t *testing.T) {
	var loadingSeen []bool
	var h *Products
	api := newFakeProductsAPI("A")
	h = NewProducts(api, dto.ProductFilter{}, WithOnChange(func() {
		loadingSeen = append(loadingSeen, h.State().IsLoading)
	}))
	h.Mount(context.Background())

	assert.Equal(t, []bool{true, false}, loadingSeen)
}

func TestProducts_StateIsSnapshot(t *testing.T) {
	h := NewProducts(newFakeProductsAPI("A"), dto.ProductFilter{})
	h.Mount(context.Background())

	st := h.State()
	st.Products[0].Name = "mutated"
	st.PageData.Content[0].Name = "mutated"

	again := h.State()
	assert.Equal(t, "A", again.Products[0].Name)
	assert.Equal(t, "A", again.PageData.Content[0].Name)
}

func TestProducts_Get(t *testing.T) {
	api := newFakeProductsAPI()
	h := NewProducts(api, dto.ProductFilter{})

	p, err := h.Get(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, int64(4), p.ID)

	api.mutationErr = serverError()
	_, err = h.Get(context.Background(), 4)
	assert.EqualError(t, err, "failed to get product")
	assert.True(t, errors.Is(err, adminapi.ErrTransport))
	assert.Empty(t, api.calls())
}
