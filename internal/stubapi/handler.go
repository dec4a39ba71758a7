package stubapi

import (
	"log/slog"
	"net/http"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/flicky/ecom-admin-console/internal/dto"
)

// Handler serves the admin REST contract from a Store. Every response is an
// envelope; business failures answer 200 with success=false, malformed
// requests answer 400.
type Handler struct {
	store *Store
	log   *slog.Logger
}

func NewHandler(store *Store, log *slog.Logger) *Handler {
	return &Handler{store: store, log: log}
}

func ok[T any](c *gin.Context, data T) {
	c.JSON(http.StatusOK, dto.OK(data))
}

func okWithMessage[T any](c *gin.Context, message string, data T) {
	c.JSON(http.StatusOK, dto.OKWithMessage(message, data))
}

func (h *Handler) fail(c *gin.Context, err error) {
	h.log.Info("request rejected", "request_id", c.GetString(ctxRequestID), "error", err)
	c.JSON(http.StatusOK, dto.Fail(sentence(err.Error())))
}

func badRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.Fail(message))
}

func pathID(c *gin.Context, what string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "Invalid "+what+" ID")
		return 0, false
	}
	return id, true
}

func sentence(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}

// --- Products ---

func (h *Handler) ListProducts(c *gin.Context) {
	var f dto.ProductFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		badRequest(c, err.Error())
		return
	}
	ok(c, h.store.ListProducts(f))
}

func (h *Handler) GetProduct(c *gin.Context) {
	id, valid := pathID(c, "product")
	if !valid {
		return
	}
	p, err := h.store.GetProduct(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, p)
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req dto.ProductCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	p, err := h.store.CreateProduct(req)
	if err != nil {
		h.fail(c, err)
		return
	}
	okWithMessage(c, "Product created successfully", p)
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	id, valid := pathID(c, "product")
	if !valid {
		return
	}
	var req dto.ProductUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	p, err := h.store.UpdateProduct(id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	okWithMessage(c, "Product updated successfully", p)
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	id, valid := pathID(c, "product")
	if !valid {
		return
	}
	if err := h.store.DeleteProduct(id); err != nil {
		h.fail(c, err)
		return
	}
	okWithMessage[any](c, "Product deleted successfully", nil)
}

func (h *Handler) AdjustStock(c *gin.Context) {
	id, valid := pathID(c, "product")
	if !valid {
		return
	}
	var req dto.StockAdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	p, err := h.store.AdjustStock(id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	okWithMessage(c, "Stock updated successfully", p)
}

// --- Categories ---

func (h *Handler) ListCategories(c *gin.Context) {
	ok(c, h.store.ListCategories())
}

func (h *Handler) GetCategory(c *gin.Context) {
	id, valid := pathID(c, "category")
	if !valid {
		return
	}
	cat, err := h.store.GetCategory(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, cat)
}

// --- Dashboard ---

func (h *Handler) DashboardStats(c *gin.Context) {
	ok(c, h.store.DashboardStats())
}

func (h *Handler) SalesData(c *gin.Context) {
	var f dto.SalesFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		badRequest(c, err.Error())
		return
	}
	ok(c, h.store.SalesData(f.EffectiveDays()))
}

// --- Orders ---

func (h *Handler) ListOrders(c *gin.Context) {
	var f dto.OrderFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		badRequest(c, err.Error())
		return
	}
	ok(c, h.store.ListOrders(f))
}

func (h *Handler) GetOrder(c *gin.Context) {
	id, valid := pathID(c, "order")
	if !valid {
		return
	}
	o, err := h.store.GetOrder(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, o)
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, valid := pathID(c, "order")
	if !valid {
		return
	}
	var req dto.OrderStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	o, err := h.store.UpdateOrderStatus(id, req.Status)
	if err != nil {
		h.fail(c, err)
		return
	}
	okWithMessage(c, "Order status updated successfully", o)
}

// --- Users ---

func (h *Handler) ListUsers(c *gin.Context) {
	var f dto.UserFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		badRequest(c, err.Error())
		return
	}
	ok(c, h.store.ListUsers(f))
}

func (h *Handler) GetUser(c *gin.Context) {
	id, valid := pathID(c, "user")
	if !valid {
		return
	}
	u, err := h.store.GetUser(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, u)
}

// --- Coupons ---

func (h *Handler) ListCoupons(c *gin.Context) {
	ok(c, h.store.ListCoupons())
}

func (h *Handler) GetCoupon(c *gin.Context) {
	id, valid := pathID(c, "coupon")
	if !valid {
		return
	}
	cp, err := h.store.GetCoupon(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, cp)
}

func (h *Handler) CreateCoupon(c *gin.Context) {
	var req dto.CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	cp, err := h.store.CreateCoupon(req)
	if err != nil {
		h.fail(c, err)
		return
	}
	okWithMessage(c, "Coupon created successfully", cp)
}

func (h *Handler) UpdateCoupon(c *gin.Context) {
	id, valid := pathID(c, "coupon")
	if !valid {
		return
	}
	var req dto.CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	cp, err := h.store.UpdateCoupon(id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	okWithMessage(c, "Coupon updated successfully", cp)
}

func (h *Handler) DeleteCoupon(c *gin.Context) {
	id, valid := pathID(c, "coupon")
	if !valid {
		return
	}
	if err := h.store.DeleteCoupon(id); err != nil {
		h.fail(c, err)
		return
	}
	okWithMessage[any](c, "Coupon deleted successfully", nil)
}

// --- Notifications ---

func (h *Handler) ListNotifications(c *gin.Context) {
	ok(c, h.store.ListNotifications(false))
}

func (h *Handler) UnreadNotifications(c *gin.Context) {
	ok(c, h.store.ListNotifications(true))
}

func (h *Handler) UnreadCount(c *gin.Context) {
	ok(c, h.store.UnreadCount())
}

func (h *Handler) MarkNotificationRead(c *gin.Context) {
	id, valid := pathID(c, "notification")
	if !valid {
		return
	}
	n, err := h.store.MarkNotificationRead(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, n)
}

func (h *Handler) MarkAllNotificationsRead(c *gin.Context) {
	h.store.MarkAllNotificationsRead()
	okWithMessage[any](c, "All notifications marked as read", nil)
}
