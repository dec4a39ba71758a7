// Package stubapi is an in-memory implementation of the admin REST API for
// local development and end-to-end tests of the console.
package stubapi

import (
	"io"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/flicky/ecom-admin-console/internal/session"
)

type Options struct {
	Log *slog.Logger
	// Issuer enables bearer-token checks on /admin; nil leaves it open.
	Issuer *session.Issuer
}

func NewRouter(store *Store, opts Options) *gin.Engine {
	log := opts.Log
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	h := NewHandler(store, log)
	healthH := NewHealthHandler(store)

	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), Logger(log))
	router.GET("/healthz", healthH.Healthz)
	router.GET("/readyz", healthH.Readyz)

	admin := router.Group("/admin")
	if opts.Issuer != nil {
		admin.Use(Auth(opts.Issuer))
	}
	{
		products := admin.Group("/products")
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProduct)
		products.POST("", h.CreateProduct)
		products.PUT("/:id", h.UpdateProduct)
		products.DELETE("/:id", h.DeleteProduct)
		products.PUT("/:id/stock", h.AdjustStock)

		categories := admin.Group("/categories")
		categories.GET("", h.ListCategories)
		categories.GET("/:id", h.GetCategory)

		dashboard := admin.Group("/dashboard")
		dashboard.GET("/stats", h.DashboardStats)
		dashboard.GET("/sales", h.SalesData)

		orders := admin.Group("/orders")
		orders.GET("", h.ListOrders)
		orders.GET("/:id", h.GetOrder)
		orders.PATCH("/:id/status", h.UpdateOrderStatus)

		users := admin.Group("/users")
		users.GET("", h.ListUsers)
		users.GET("/:id", h.GetUser)

		coupons := admin.Group("/coupons")
		coupons.GET("", h.ListCoupons)
		coupons.GET("/:id", h.GetCoupon)
		coupons.POST("", h.CreateCoupon)
		coupons.PUT("/:id", h.UpdateCoupon)
		coupons.DELETE("/:id", h.DeleteCoupon)

		notifications := admin.Group("/notifications")
		notifications.GET("", h.ListNotifications)
		notifications.GET("/unread", h.UnreadNotifications)
		notifications.GET("/count", h.UnreadCount)
		notifications.PATCH("/mark-all-read", h.MarkAllNotificationsRead)
		notifications.PATCH("/:id/read", h.MarkNotificationRead)
	}
	return router
}
