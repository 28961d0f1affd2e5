package main

import (
	"context"
	"net/http"
	"os"

	"github.com/fishweb-iq/fishweb-backend/api/controllers"
	"github.com/fishweb-iq/fishweb-backend/api/routes"
	"github.com/fishweb-iq/fishweb-backend/internal/auth"
	"github.com/fishweb-iq/fishweb-backend/internal/cart"
	"github.com/fishweb-iq/fishweb-backend/internal/coupons"
	"github.com/fishweb-iq/fishweb-backend/internal/orders"
	"github.com/fishweb-iq/fishweb-backend/internal/products"
	"github.com/fishweb-iq/fishweb-backend/internal/reviews"
	"github.com/fishweb-iq/fishweb-backend/internal/species"
	"github.com/fishweb-iq/fishweb-backend/internal/users"
	"github.com/fishweb-iq/fishweb-backend/internal/wishlist"
	"github.com/fishweb-iq/fishweb-backend/pkg/auth/session"
	"github.com/fishweb-iq/fishweb-backend/pkg/config"
	"github.com/fishweb-iq/fishweb-backend/pkg/db"
	"github.com/fishweb-iq/fishweb-backend/pkg/logger"
	"github.com/fishweb-iq/fishweb-backend/pkg/metrics"
	"github.com/fishweb-iq/fishweb-backend/pkg/migrate"
	"github.com/fishweb-iq/fishweb-backend/pkg/redis"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	userRepo := users.NewRepository(dbClient.DB())
	productRepo := products.NewRepository(dbClient.DB())
	cartRepo := cart.NewRepository(dbClient.DB())
	wishlistRepo := wishlist.NewRepository(dbClient.DB())
	orderRepo := orders.NewRepository(dbClient.DB())
	reviewRepo := reviews.NewRepository(dbClient.DB())
	couponRepo := coupons.NewRepository(dbClient.DB())

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       userRepo,
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	registerService, err := auth.NewRegisterService(auth.RegisterServiceParams{
		DB:             dbClient,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create register service", err)
		os.Exit(1)
	}

	productService, err := products.NewService(productRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create products service", err)
		os.Exit(1)
	}

	cartService, err := cart.NewService(cart.ServiceParams{
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	wishlistService, err := wishlist.NewService(wishlist.ServiceParams{
		WishlistRepo: wishlistRepo,
		ProductRepo:  productRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create wishlist service", err)
		os.Exit(1)
	}

	couponService, err := coupons.NewService(couponRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create coupons service", err)
		os.Exit(1)
	}

	orderService, err := orders.NewService(orders.ServiceParams{
		DB:          dbClient,
		OrderRepo:   orderRepo,
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
		CouponRepo:  couponRepo,
		Coupons:     couponService,
		Idempotency: redisClient,
		Checkout:    cfg.Checkout,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}

	reviewService, err := reviews.NewService(reviews.ServiceParams{
		DB:          dbClient,
		ReviewRepo:  reviewRepo,
		ProductRepo: productRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create reviews service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	id := os.Getenv("DYNO")
	if id == "" {
		id = "local"
	}
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"instance": id,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Params{
			Config:  cfg,
			Logger:  logg,
			Metrics: httpMetrics,
			Pingers: map[string]controllers.Pinger{
				"postgres": dbClient,
				"redis":    redisClient,
			},
			MetricsHandler:  promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
			SessionManager:  sessionManager,
			AuthService:     authService,
			RegisterService: registerService,
			ProductService:  productService,
			CartService:     cartService,
			WishlistService: wishlistService,
			OrderService:    orderService,
			ReviewService:   reviewService,
			CouponService:   couponService,
			SpeciesService:  species.NewService(),
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
