package stubapi

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/flicky/ecom-admin-console/internal/dto"
	"github.com/flicky/ecom-admin-console/internal/model"
)

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrCouponNotFound       = errors.New("coupon not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrInsufficientStock    = errors.New("insufficient stock")
	ErrDuplicateCoupon      = errors.New("coupon code already exists")
)

const defaultPageSize = 10

// Store is the in-memory state behind the stub backend. Identifiers are
// assigned here, never by callers.
type Store struct {
	mu     sync.RWMutex
	now    func() time.Time
	nextID int64

	categories    map[int64]*model.Category
	products      map[int64]*model.Product
	orders        map[int64]*model.Order
	users         map[int64]*model.User
	coupons       map[int64]*model.Coupon
	notifications map[int64]*model.Notification
}

func NewStore() *Store {
	return &Store{
		now:           time.Now,
		nextID:        1000,
		categories:    make(map[int64]*model.Category),
		products:      make(map[int64]*model.Product),
		orders:        make(map[int64]*model.Order),
		users:         make(map[int64]*model.User),
		coupons:       make(map[int64]*model.Coupon),
		notifications: make(map[int64]*model.Notification),
	}
}

func (s *Store) stamp() model.Time { return model.NewTime(s.now().UTC().Truncate(time.Second)) }

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

// --- Products ---

func (s *Store) ListProducts(f dto.ProductFilter) model.Page[model.Product] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(f.Search))
	var items []model.Product
	for _, p := range sortedValues(s.products) {
		if f.CategoryID > 0 && p.CategoryID != f.CategoryID {
			continue
		}
		if f.InStock != nil && p.InStock != *f.InStock {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.SKU), search) {
			continue
		}
		items = append(items, p)
	}

	page, size := 0, defaultPageSize
	if f.Page != nil && *f.Page > 0 {
		page = *f.Page
	}
	if f.Size != nil && *f.Size > 0 {
		size = *f.Size
	}
	return model.NewPage(items, page, size)
}

func (s *Store) GetProduct(id int64) (model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		return model.Product{}, fmt.Errorf("%w with id: %d", ErrProductNotFound, id)
	}
	return *p, nil
}

func (s *Store) CreateProduct(req dto.ProductCreateRequest) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cat, ok := s.categories[req.CategoryID]
	if !ok {
		return model.Product{}, fmt.Errorf("%w with id: %d", ErrCategoryNotFound, req.CategoryID)
	}
	now := s.stamp()
	p := &model.Product{
		ID:              s.id(),
		Name:            req.Name,
		SKU:             req.SKU,
		Description:     req.Description,
		Price:           req.Price,
		DiscountPrice:   req.DiscountPrice,
		CategoryID:      cat.ID,
		CategoryName:    cat.Name,
		StockQuantity:   req.StockQuantity,
		InStock:         req.StockQuantity > 0,
		IsActive:        req.IsActive,
		Thumbnail:       req.Thumbnail,
		MetaDescription: req.MetaDescription,
		MetaKeywords:    req.MetaKeywords,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	s.products[p.ID] = p
	cat.ItemCount++
	return *p, nil
}

func (s *Store) UpdateProduct(id int64, req dto.ProductUpdateRequest) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return model.Product{}, fmt.Errorf("%w with id: %d", ErrProductNotFound, id)
	}
	if req.CategoryID != nil && *req.CategoryID != p.CategoryID {
		cat, ok := s.categories[*req.CategoryID]
		if !ok {
			return model.Product{}, fmt.Errorf("%w with id: %d", ErrCategoryNotFound, *req.CategoryID)
		}
		if old, ok := s.categories[p.CategoryID]; ok {
			old.ItemCount--
		}
		cat.ItemCount++
		p.CategoryID, p.CategoryName = cat.ID, cat.Name
	}
	assign(&p.Name, req.Name)
	assign(&p.Description, req.Description)
	assign(&p.Price, req.Price)
	assign(&p.SKU, req.SKU)
	assign(&p.Thumbnail, req.Thumbnail)
	assign(&p.IsActive, req.IsActive)
	assign(&p.MetaDescription, req.MetaDescription)
	assign(&p.MetaKeywords, req.MetaKeywords)
	if req.DiscountPrice != nil {
		d := *req.DiscountPrice
		p.DiscountPrice = &d
	}
	if req.StockQuantity != nil {
		p.StockQuantity = *req.StockQuantity
		p.InStock = p.StockQuantity > 0
	}
	p.UpdatedAt = s.stamp()
	return *p, nil
}

func (s *Store) DeleteProduct(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return fmt.Errorf("%w with id: %d", ErrProductNotFound, id)
	}
	if cat, ok := s.categories[p.CategoryID]; ok {
		cat.ItemCount--
	}
	delete(s.products, id)
	return nil
}

func (s *Store) AdjustStock(id int64, req dto.StockAdjustRequest) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return model.Product{}, fmt.Errorf("%w with id: %d", ErrProductNotFound, id)
	}
	switch req.Type {
	case dto.StockAdd:
		p.StockQuantity += req.Quantity
	case dto.StockRemove:
		if req.Quantity > p.StockQuantity {
			return model.Product{}, fmt.Errorf("%w: %d available", ErrInsufficientStock, p.StockQuantity)
		}
		p.StockQuantity -= req.Quantity
	}
	p.InStock = p.StockQuantity > 0
	p.UpdatedAt = s.stamp()
	return *p, nil
}

// --- Categories ---

func (s *Store) ListCategories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.categories)
}

func (s *Store) GetCategory(id int64) (model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.categories[id]
	if !ok {
		return model.Category{}, fmt.Errorf("%w with id: %d", ErrCategoryNotFound, id)
	}
	return *c, nil
}

// --- Orders ---

// ListOrders pages orders newest first. Page is zero-based and the limit
// defaults to 10.
func (s *Store) ListOrders(f dto.OrderFilter) dto.OrderList {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := strings.ToLower(strings.TrimSpace(f.Status))
	search := strings.ToLower(strings.TrimSpace(f.Search))
	var items []model.Order
	for _, o := range sortedValues(s.orders) {
		if status != "" && status != dto.FilterAll && string(o.Status) != status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(o.OrderNumber), search) &&
			!strings.Contains(strings.ToLower(o.Customer.Name), search) &&
			!strings.Contains(strings.ToLower(o.Customer.Email), search) {
			continue
		}
		items = append(items, o)
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt.Time) })

	page, limit := 0, defaultPageSize
	if f.Page != nil && *f.Page > 0 {
		page = *f.Page
	}
	if f.Limit != nil && *f.Limit > 0 {
		limit = *f.Limit
	}
	p := model.NewPage(items, page, limit)
	return dto.OrderList{Orders: p.Content, Total: p.TotalElements, Page: page, TotalPages: p.TotalPages}
}

func (s *Store) GetOrder(id int64) (model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	if !ok {
		return model.Order{}, fmt.Errorf("%w with id: %d", ErrOrderNotFound, id)
	}
	return *o, nil
}

// UpdateOrderStatus applies any requested status; transition rules belong to
// the real backend.
func (s *Store) UpdateOrderStatus(id int64, status model.OrderStatus) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return model.Order{}, fmt.Errorf("%w with id: %d", ErrOrderNotFound, id)
	}
	o.Status = status
	o.UpdatedAt = s.stamp()
	return *o, nil
}

// --- Users ---

func (s *Store) ListUsers(f dto.UserFilter) []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := strings.ToLower(strings.TrimSpace(f.Status))
	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := []model.User{}
	for _, u := range sortedValues(s.users) {
		if status != "" && status != dto.FilterAll && string(u.Status) != status {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(u.Name), search) &&
			!strings.Contains(strings.ToLower(u.Email), search) {
			continue
		}
		out = append(out, u)
	}
	return out
}

func (s *Store) GetUser(id int64) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return model.User{}, fmt.Errorf("%w with id: %d", ErrUserNotFound, id)
	}
	return *u, nil
}

// --- Coupons ---

func (s *Store) ListCoupons() []model.Coupon {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.coupons)
}

func (s *Store) GetCoupon(id int64) (model.Coupon, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.coupons[id]
	if !ok {
		return model.Coupon{}, fmt.Errorf("%w with id: %d", ErrCouponNotFound, id)
	}
	return *c, nil
}

func (s *Store) CreateCoupon(req dto.CouponRequest) (model.Coupon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if s.couponCodeTaken(code, 0) {
		return model.Coupon{}, fmt.Errorf("%w: %s", ErrDuplicateCoupon, code)
	}
	c := &model.Coupon{ID: s.id()}
	applyCoupon(c, code, req)
	s.coupons[c.ID] = c
	return *c, nil
}

func (s *Store) UpdateCoupon(id int64, req dto.CouponRequest) (model.Coupon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.coupons[id]
	if !ok {
		return model.Coupon{}, fmt.Errorf("%w with id: %d", ErrCouponNotFound, id)
	}
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if s.couponCodeTaken(code, id) {
		return model.Coupon{}, fmt.Errorf("%w: %s", ErrDuplicateCoupon, code)
	}
	applyCoupon(c, code, req)
	return *c, nil
}

func (s *Store) DeleteCoupon(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.coupons[id]; !ok {
		return fmt.Errorf("%w with id: %d", ErrCouponNotFound, id)
	}
	delete(s.coupons, id)
	return nil
}

func (s *Store) couponCodeTaken(code string, except int64) bool {
	for id, c := range s.coupons {
		if id != except && c.Code == code {
			return true
		}
	}
	return false
}

func applyCoupon(c *model.Coupon, code string, req dto.CouponRequest) {
	c.Code = code
	c.Type = req.Type
	c.Value = req.Value
	c.MinPurchase = req.MinPurchase
	c.MaxDiscount = req.MaxDiscount
	c.UsageLimit = req.UsageLimit
	c.ExpiresAt = req.ExpiresAt
	c.IsActive = req.IsActive
}

// --- Notifications ---

func (s *Store) ListNotifications(unreadOnly bool) []model.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []model.Notification{}
	for _, n := range sortedValues(s.notifications) {
		if unreadOnly && n.IsRead {
			continue
		}
		out = append(out, n)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt.Time) })
	return out
}

func (s *Store) UnreadCount() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int64
	for _, v := range s.notifications {
		if !v.IsRead {
			n++
		}
	}
	return n
}

func (s *Store) MarkNotificationRead(id int64) (model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notifications[id]
	if !ok {
		return model.Notification{}, fmt.Errorf("%w with id: %d", ErrNotificationNotFound, id)
	}
	if !n.IsRead {
		n.IsRead = true
		at := s.stamp()
		n.ReadAt = &at
	}
	return *n, nil
}

func (s *Store) MarkAllNotificationsRead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	at := s.stamp()
	for _, n := range s.notifications {
		if !n.IsRead {
			n.IsRead = true
			stamp := at
			n.ReadAt = &stamp
		}
	}
}

// --- Dashboard ---

func (s *Store) DashboardStats() model.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var st model.DashboardStats
	for _, o := range s.orders {
		if o.Status == model.OrderStatusCancelled {
			continue
		}
		st.TotalOrders++
		st.TotalRevenue = st.TotalRevenue.Add(o.Total)
	}
	st.TotalCustomers = int64(len(s.users))
	if st.TotalOrders > 0 {
		st.AverageOrderValue = st.TotalRevenue.Div(decimal.NewFromInt(st.TotalOrders)).Round(2)
	}
	return st
}

// SalesData buckets non-cancelled orders per day over the last days days,
// oldest first, including empty days.
func (s *Store) SalesData(days int) []model.SalesDataPoint {
	if days <= 0 {
		days = dto.DefaultSalesDays
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	today := s.now().UTC().Truncate(24 * time.Hour)
	start := today.AddDate(0, 0, -(days - 1))
	points := make([]model.SalesDataPoint, days)
	index := make(map[string]int, days)
	for i := range points {
		d := start.AddDate(0, 0, i).Format(time.DateOnly)
		points[i].Date = d
		index[d] = i
	}
	for _, o := range s.orders {
		if o.Status == model.OrderStatusCancelled {
			continue
		}
		i, ok := index[o.CreatedAt.UTC().Format(time.DateOnly)]
		if !ok {
			continue
		}
		points[i].Orders++
		points[i].Revenue = points[i].Revenue.Add(o.Total)
	}
	return points
}

func assign[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func sortedValues[T any](m map[int64]*T) []T {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, *m[id])
	}
	return out
}
