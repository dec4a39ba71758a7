package model

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID              int64            `json:"id" validate:"gt=0"`
	Name            string           `json:"name" validate:"required"`
	SKU             string           `json:"sku"`
	Description     string           `json:"description"`
	Price           decimal.Decimal  `json:"price"`
	OriginalPrice   *decimal.Decimal `json:"originalPrice,omitempty"`
	DiscountPrice   *decimal.Decimal `json:"discountPrice,omitempty"`
	CategoryID      int64            `json:"categoryId"`
	CategoryName    string           `json:"categoryName"`
	StockQuantity   int              `json:"stockQuantity" validate:"gte=0"`
	InStock         bool             `json:"inStock"`
	IsActive        bool             `json:"isActive"`
	ImageURL        string           `json:"imageUrl,omitempty"`
	Thumbnail       string           `json:"thumbnail,omitempty"`
	MetaDescription string           `json:"metaDescription,omitempty"`
	MetaKeywords    string           `json:"metaKeywords,omitempty"`
	Badge           string           `json:"badge,omitempty"`
	Rating          float64          `json:"rating"`
	Reviews         int              `json:"reviews"`
	CreatedAt       Time             `json:"createdAt"`
	UpdatedAt       Time             `json:"updatedAt"`
}

type Category struct {
	ID          int64  `json:"id" validate:"gt=0"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	ItemCount   int    `json:"itemCount"`
	CreatedAt   Time   `json:"createdAt"`
	UpdatedAt   Time   `json:"updatedAt"`
}

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s is one of the statuses the backend accepts.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

func (s *OrderStatus) UnmarshalJSON(b []byte) error {
	return unmarshalLower(b, (*string)(s))
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

func (s *PaymentStatus) UnmarshalJSON(b []byte) error {
	return unmarshalLower(b, (*string)(s))
}

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type OrderItem struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity" validate:"gte=0"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
}

type ShippingAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type Order struct {
	ID              int64           `json:"id" validate:"gt=0"`
	OrderNumber     string          `json:"orderNumber"`
	Customer        Customer        `json:"customer"`
	Items           []OrderItem     `json:"items" validate:"dive"`
	Total           decimal.Decimal `json:"total"`
	Status          OrderStatus     `json:"status" validate:"oneof=pending processing shipped delivered cancelled"`
	PaymentStatus   PaymentStatus   `json:"paymentStatus" validate:"omitempty,oneof=pending paid refunded"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	CreatedAt       Time            `json:"createdAt"`
	UpdatedAt       Time            `json:"updatedAt"`
}

type CouponType string

const (
	CouponTypePercentage CouponType = "percentage"
	CouponTypeFixed      CouponType = "fixed"
)

func (t *CouponType) UnmarshalJSON(b []byte) error {
	return unmarshalLower(b, (*string)(t))
}

// Coupon.UsageCount is maintained by the backend and never sent by the client.
type Coupon struct {
	ID          int64            `json:"id" validate:"gt=0"`
	Code        string           `json:"code" validate:"required"`
	Type        CouponType       `json:"type" validate:"oneof=percentage fixed"`
	Value       decimal.Decimal  `json:"value"`
	MinPurchase decimal.Decimal  `json:"minPurchase"`
	MaxDiscount *decimal.Decimal `json:"maxDiscount,omitempty"`
	UsageLimit  int              `json:"usageLimit"`
	UsageCount  int              `json:"usageCount" validate:"gte=0"`
	ExpiresAt   Time             `json:"expiresAt"`
	IsActive    bool             `json:"isActive"`
}

type UserStatus string

const (
	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
)

func (s *UserStatus) UnmarshalJSON(b []byte) error {
	return unmarshalLower(b, (*string)(s))
}

type User struct {
	ID          int64           `json:"id" validate:"gt=0"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	TotalOrders int64           `json:"totalOrders" validate:"gte=0"`
	TotalSpent  decimal.Decimal `json:"totalSpent"`
	JoinedAt    Time            `json:"joinedAt"`
	Status      UserStatus      `json:"status" validate:"oneof=active blocked"`
}

type Notification struct {
	ID            int64  `json:"id" validate:"gt=0"`
	Title         string `json:"title"`
	Message       string `json:"message"`
	Type          string `json:"type"`
	IsRead        bool   `json:"isRead"`
	ReferenceType string `json:"referenceType,omitempty"`
	ReferenceID   *int64 `json:"referenceId,omitempty"`
	CreatedAt     Time   `json:"createdAt"`
	ReadAt        *Time  `json:"readAt,omitempty"`
}

type DashboardStats struct {
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	TotalOrders       int64           `json:"totalOrders" validate:"gte=0"`
	TotalCustomers    int64           `json:"totalCustomers" validate:"gte=0"`
	AverageOrderValue decimal.Decimal `json:"averageOrderValue"`
	RevenueChange     float64         `json:"revenueChange"`
	OrdersChange      float64         `json:"ordersChange"`
	CustomersChange   float64         `json:"customersChange"`
}

type SalesDataPoint struct {
	Date    string          `json:"date" validate:"required"`
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int64           `json:"orders" validate:"gte=0"`
}

// The backend serializes Java enum names (PENDING); the console works with the
// lower-case form.
func unmarshalLower(b []byte, dst *string) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*dst = strings.ToLower(s)
	return nil
}
