package hooks

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/flicky/ecom-admin-console/internal/adminapi"
	"github.com/flicky/ecom-admin-console/internal/dto"
	"github.com/flicky/ecom-admin-console/internal/model"
)

// fakeProductsAPI records calls and lets each test script the list response.
type fakeProductsAPI struct {
	mu        sync.Mutex
	listCalls []dto.ProductFilter
	listFn    func(ctx context.Context, f dto.ProductFilter) (*model.Page[model.Product], error)

	mutationErr error
	mutations   []string
}

func newFakeProductsAPI(names ...string) *fakeProductsAPI {
	page := productPage(names...)
	return &fakeProductsAPI{
		listFn: func(context.Context, dto.ProductFilter) (*model.Page[model.Product], error) {
			return page, nil
		},
	}
}

func (f *fakeProductsAPI) ListProducts(ctx context.Context, filter dto.ProductFilter) (*model.Page[model.Product], error) {
	f.mu.Lock()
	f.listCalls = append(f.listCalls, filter)
	fn := f.listFn
	f.mu.Unlock()
	return fn(ctx, filter)
}

func (f *fakeProductsAPI) calls() []dto.ProductFilter {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]dto.ProductFilter(nil), f.listCalls...)
}

func (f *fakeProductsAPI) setList(fn func(ctx context.Context, f dto.ProductFilter) (*model.Page[model.Product], error)) {
	f.mu.Lock()
	f.listFn = fn
	f.mu.Unlock()
}

func (f *fakeProductsAPI) record(op string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mutations = append(f.mutations, op)
	return f.mutationErr
}

func (f *fakeProductsAPI) GetProduct(_ context.Context, id int64) (*model.Product, error) {
	if err := f.record("get"); err != nil {
		return nil, err
	}
	return &model.Product{ID: id, Name: "Widget"}, nil
}

func (f *fakeProductsAPI) CreateProduct(_ context.Context, req dto.ProductCreateRequest) (*model.Product, error) {
	if err := f.record("create"); err != nil {
		return nil, err
	}
	return &model.Product{ID: 99, Name: req.Name}, nil
}

func (f *fakeProductsAPI) UpdateProduct(_ context.Context, id int64, _ dto.ProductUpdateRequest) (*model.Product, error) {
	if err := f.record("update"); err != nil {
		return nil, err
	}
	return &model.Product{ID: id}, nil
}

func (f *fakeProductsAPI) DeleteProduct(context.Context, int64) error {
	return f.record("delete")
}

func (f *fakeProductsAPI) AdjustStock(_ context.Context, id int64, _ dto.StockAdjustRequest) (*model.Product, error) {
	if err := f.record("stock"); err != nil {
		return nil, err
	}
	return &model.Product{ID: id}, nil
}

func productPage(names ...string) *model.Page[model.Product] {
	content := make([]model.Product, len(names))
	for i, n := range names {
		content[i] = model.Product{ID: int64(i + 1), Name: n, Price: decimal.NewFromInt(10)}
	}
	p := model.NewPage(content, 0, 10)
	return &p
}

func serverError() error {
	return &adminapi.TransportError{StatusCode: 500, StatusText: "Internal Server Error"}
}

type fakeNotificationsAPI struct {
	mu         sync.Mutex
	all        []model.Notification
	allCalls   int
	unreadHits int
	marked     []int64
	markAll    int
}

func (f *fakeNotificationsAPI) ListNotifications(context.Context) ([]model.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.allCalls++
	return append([]model.Notification(nil), f.all...), nil
}

func (f *fakeNotificationsAPI) UnreadNotifications(context.Context) ([]model.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unreadHits++
	var out []model.Notification
	for _, n := range f.all {
		if !n.IsRead {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationsAPI) MarkNotificationRead(_ context.Context, id int64) (*model.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.all {
		if f.all[i].ID == id {
			f.all[i].IsRead = true
			f.marked = append(f.marked, id)
			n := f.all[i]
			return &n, nil
		}
	}
	return nil, &adminapi.ApplicationError{Message: "Notification not found"}
}

func (f *fakeNotificationsAPI) MarkAllNotificationsRead(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.markAll++
	for i := range f.all {
		f.all[i].IsRead = true
	}
	return nil
}

type fakeDashboardAPI struct {
	days     []int
	salesErr error
}

func (f *fakeDashboardAPI) DashboardStats(context.Context) (*model.DashboardStats, error) {
	return &model.DashboardStats{TotalOrders: 7, TotalRevenue: decimal.NewFromInt(700)}, nil
}

func (f *fakeDashboardAPI) SalesData(_ context.Context, days int) ([]model.SalesDataPoint, error) {
	f.days = append(f.days, days)
	if f.salesErr != nil {
		return nil, f.salesErr
	}
	return []model.SalesDataPoint{{Date: "2024-01-01", Orders: 3}}, nil
}

type fakeOrdersAPI struct {
	list   *dto.OrderList
	status []model.OrderStatus
	calls  int
}

func (f *fakeOrdersAPI) ListOrders(context.Context, dto.OrderFilter) (*dto.OrderList, error) {
	f.calls++
	return f.list, nil
}

func (f *fakeOrdersAPI) GetOrder(_ context.Context, id int64) (*model.Order, error) {
	return &model.Order{ID: id}, nil
}

func (f *fakeOrdersAPI) UpdateOrderStatus(_ context.Context, id int64, s model.OrderStatus) (*model.Order, error) {
	f.status = append(f.status, s)
	return &model.Order{ID: id, Status: s}, nil
}

type fakeCategoriesAPI struct{ err error }

func (f *fakeCategoriesAPI) ListCategories(context.Context) ([]model.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []model.Category{{ID: 1, Name: "Electronics"}}, nil
}

func (f *fakeCategoriesAPI) GetCategory(context.Context, int64) (*model.Category, error) {
	return nil, &adminapi.ApplicationError{Message: "Category not found"}
}

type fakeCouponsAPI struct {
	mu          sync.Mutex
	listCalls   int
	listErr     error
	mutationErr error
	mutations   []string
}

func (f *fakeCouponsAPI) ListCoupons(context.Context) ([]model.Coupon, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return []model.Coupon{{ID: 1, Code: "WELCOME10", Type: model.CouponTypePercentage}}, nil
}

func (f *fakeCouponsAPI) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls
}

func (f *fakeCouponsAPI) record(op string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mutations = append(f.mutations, op)
	return f.mutationErr
}

func (f *fakeCouponsAPI) GetCoupon(_ context.Context, id int64) (*model.Coupon, error) {
	if err := f.record("get"); err != nil {
		return nil, err
	}
	return &model.Coupon{ID: id, Code: "WELCOME10"}, nil
}

func (f *fakeCouponsAPI) CreateCoupon(_ context.Context, req dto.CouponRequest) (*model.Coupon, error) {
	if err := f.record("create"); err != nil {
		return nil, err
	}
	return &model.Coupon{ID: 9, Code: req.Code}, nil
}

func (f *fakeCouponsAPI) UpdateCoupon(_ context.Context, id int64, req dto.CouponRequest) (*model.Coupon, error) {
	if err := f.record("update"); err != nil {
		return nil, err
	}
	return &model.Coupon{ID: id, Code: req.Code}, nil
}

func (f *fakeCouponsAPI) DeleteCoupon(context.Context, int64) error {
	return f.record("delete")
}

type fakeUsersAPI struct {
	mu        sync.Mutex
	listCalls []dto.UserFilter
}

func (f *fakeUsersAPI) ListUsers(_ context.Context, filter dto.UserFilter) ([]model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls = append(f.listCalls, filter)
	return []model.User{{ID: 1, Name: "Jane", Status: model.UserStatusActive}}, nil
}

func (f *fakeUsersAPI) calls() []dto.UserFilter {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]dto.UserFilter(nil), f.listCalls...)
}

func (f *fakeUsersAPI) GetUser(_ context.Context, id int64) (*model.User, error) {
	return &model.User{ID: id, Name: "Jane"}, nil
}
