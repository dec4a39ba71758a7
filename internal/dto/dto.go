package dto

import (
	"github.com/shopspring/decimal"

	"github.com/flicky/ecom-admin-console/internal/model"
)

// --- Envelope ---

// Envelope is the uniform wrapper of every admin API response.
type Envelope[T any] struct {
	Success bool    `json:"success"`
	Message *string `json:"message"`
	Data    T       `json:"data"`
}

func OK[T any](data T) Envelope[T] {
	return Envelope[T]{Success: true, Data: data}
}

func OKWithMessage[T any](message string, data T) Envelope[T] {
	return Envelope[T]{Success: true, Message: &message, Data: data}
}

func Fail(message string) Envelope[any] {
	return Envelope[any]{Success: false, Message: &message}
}

// --- Product ---

type ProductCreateRequest struct {
	Name            string           `json:"name" binding:"required"`
	Description     string           `json:"description"`
	Price           decimal.Decimal  `json:"price"`
	DiscountPrice   *decimal.Decimal `json:"discountPrice,omitempty"`
	CategoryID      int64            `json:"categoryId" binding:"required,gt=0"`
	StockQuantity   int              `json:"stockQuantity" binding:"gte=0"`
	SKU             string           `json:"sku,omitempty"`
	Thumbnail       string           `json:"thumbnail,omitempty"`
	IsActive        bool             `json:"isActive"`
	MetaDescription string           `json:"metaDescription,omitempty"`
	MetaKeywords    string           `json:"metaKeywords,omitempty"`
}

// ProductUpdateRequest is a partial update; nil fields are left untouched.
type ProductUpdateRequest struct {
	Name            *string          `json:"name,omitempty"`
	Description     *string          `json:"description,omitempty"`
	Price           *decimal.Decimal `json:"price,omitempty"`
	DiscountPrice   *decimal.Decimal `json:"discountPrice,omitempty"`
	CategoryID      *int64           `json:"categoryId,omitempty"`
	StockQuantity   *int             `json:"stockQuantity,omitempty" binding:"omitempty,gte=0"`
	SKU             *string          `json:"sku,omitempty"`
	Thumbnail       *string          `json:"thumbnail,omitempty"`
	IsActive        *bool            `json:"isActive,omitempty"`
	MetaDescription *string          `json:"metaDescription,omitempty"`
	MetaKeywords    *string          `json:"metaKeywords,omitempty"`
}

type StockAdjustment string

const (
	StockAdd    StockAdjustment = "add"
	StockRemove StockAdjustment = "remove"
)

type StockAdjustRequest struct {
	Type     StockAdjustment `json:"type" binding:"required,oneof=add remove"`
	Quantity int             `json:"quantity" binding:"required,gt=0"`
}

// --- Coupon ---

// CouponRequest is used for both create and update; usageCount is never sent.
type CouponRequest struct {
	Code        string           `json:"code" binding:"required"`
	Type        model.CouponType `json:"type" binding:"required,oneof=percentage fixed"`
	Value       decimal.Decimal  `json:"value"`
	MinPurchase decimal.Decimal  `json:"minPurchase"`
	MaxDiscount *decimal.Decimal `json:"maxDiscount,omitempty"`
	UsageLimit  int              `json:"usageLimit" binding:"gte=0"`
	ExpiresAt   model.Time       `json:"expiresAt"`
	IsActive    bool             `json:"isActive"`
}

// --- Order ---

type OrderStatusUpdateRequest struct {
	Status model.OrderStatus `json:"status" binding:"required,oneof=pending processing shipped delivered cancelled"`
}

// OrderList is the payload of the orders listing endpoint.
type OrderList struct {
	Orders     []model.Order `json:"orders" validate:"dive"`
	Total      int64         `json:"total" validate:"gte=0"`
	Page       int           `json:"page" validate:"gte=0"`
	TotalPages int           `json:"totalPages" validate:"gte=0"`
}
