package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/flicky/ecom-admin-console/internal/adminapi"
	"github.com/flicky/ecom-admin-console/internal/config"
	"github.com/flicky/ecom-admin-console/internal/dto"
	"github.com/flicky/ecom-admin-console/internal/hooks"
	"github.com/flicky/ecom-admin-console/internal/session"
)

func main() {
	categoryID := flag.Int64("category", 0, "only list products of this category")
	search := flag.String("search", "", "product search term")
	page := flag.Int("page", 0, "zero-based product page")
	size := flag.Int("size", 10, "products per page")
	days := flag.Int("days", dto.DefaultSalesDays, "sales window in days")
	logout := flag.Bool("logout", false, "clear the stored session token and exit")
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}
	log = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Session
	var store session.TokenStore = session.NewMemoryStore()
	if cfg.Session.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Session.RedisAddr,
			Password: cfg.Session.RedisPassword,
			DB:       cfg.Session.RedisDB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Error("connect to Redis", "error", err)
			os.Exit(1)
		}
		log.Info("connected to Redis")
		store = session.NewRedisStore(redisClient, "")
	}

	issuer, err := session.NewIssuer(cfg.Session.JWTSecret, cfg.Session.TTL)
	if err != nil {
		log.Error("create token issuer", "error", err)
		os.Exit(1)
	}
	sess := session.NewStub(issuer, store, log)

	if *logout {
		if err := sess.Logout(ctx); err != nil {
			log.Error("logout", "error", err)
			os.Exit(1)
		}
		return
	}
	if err := sess.Init(ctx); err != nil {
		log.Error("init session", "error", err)
		os.Exit(1)
	}

	client, err := adminapi.New(cfg.API.BaseURL,
		adminapi.WithTokenSource(sess),
		adminapi.WithLogger(log),
	)
	if err != nil {
		log.Error("create api client", "error", err)
		os.Exit(1)
	}

	unread, err := client.UnreadCount(ctx)
	if err != nil {
		log.Warn("fetch unread count", "error", err)
	}

	// Hooks
	dashboard := hooks.NewDashboard(client, dto.SalesFilter{Days: *days}, hooks.WithLogger(log))
	products := hooks.NewProducts(client, dto.ProductFilter{
		CategoryID: *categoryID,
		Search:     *search,
		Page:       page,
		Size:       size,
	}, hooks.WithLogger(log))
	notifications := hooks.NewNotifications(client, dto.NotificationFilter{}, hooks.WithLogger(log))

	dashboard.Mount(ctx)
	products.Mount(ctx)
	notifications.Mount(ctx)
	defer dashboard.Unmount()
	defer products.Unmount()
	defer notifications.Unmount()

	out := struct {
		Admin         *session.Admin           `json:"admin"`
		UnreadCount   int64                    `json:"unreadCount"`
		Dashboard     hooks.DashboardState     `json:"dashboard"`
		Products      hooks.ProductsState      `json:"products"`
		Notifications hooks.NotificationsState `json:"notifications"`
	}{
		Admin:         sess.Admin(),
		UnreadCount:   unread,
		Dashboard:     dashboard.State(),
		Products:      products.State(),
		Notifications: notifications.State(),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Error("write output", "error", err)
		os.Exit(1)
	}
}
