package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fishweb-iq/fishweb-backend/api/controllers"
	"github.com/fishweb-iq/fishweb-backend/api/middleware"
	"github.com/fishweb-iq/fishweb-backend/internal/auth"
	"github.com/fishweb-iq/fishweb-backend/internal/cart"
	"github.com/fishweb-iq/fishweb-backend/internal/coupons"
	"github.com/fishweb-iq/fishweb-backend/internal/orders"
	products "github.com/fishweb-iq/fishweb-backend/internal/products"
	"github.com/fishweb-iq/fishweb-backend/internal/reviews"
	"github.com/fishweb-iq/fishweb-backend/internal/species"
	"github.com/fishweb-iq/fishweb-backend/internal/wishlist"
	"github.com/fishweb-iq/fishweb-backend/pkg/auth/session"
	"github.com/fishweb-iq/fishweb-backend/pkg/config"
	"github.com/fishweb-iq/fishweb-backend/pkg/logger"
	"github.com/fishweb-iq/fishweb-backend/pkg/metrics"
)

// Params bundles everything the router needs. Optional fields may be nil;
// the affected routes then fail with a typed internal error instead of
// panicking at startup.
type Params struct {
	Config  *config.Config
	Logger  *logger.Logger
	Metrics *metrics.HTTPMetrics

	// Health checks, keyed by dependency name.
	Pingers map[string]controllers.Pinger

	// MetricsHandler serves the Prometheus scrape endpoint when set.
	MetricsHandler http.Handler

	SessionManager  session.AccessSessionChecker
	AuthService     auth.Service
	RegisterService auth.RegisterService
	ProductService  products.Service
	CartService     cart.Service
	WishlistService wishlist.Service
	OrderService    orders.Service
	ReviewService   reviews.Service
	CouponService   coupons.Service
	SpeciesService  *species.Service
}

func NewRouter(p Params) http.Handler {
	cfg := p.Config
	logg := p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(p.Metrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, p.Pingers))
	})

	if p.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", p.MetricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		// Public catalog and reference data.
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductsList(p.ProductService, logg))
			r.Get("/{productId}", controllers.ProductDetail(p.ProductService, logg))
			r.Get("/{productId}/reviews", controllers.ReviewsList(p.ReviewService, logg))
			r.Get("/{productId}/reviews/summary", controllers.ReviewsSummary(p.ReviewService, logg))
		})

		r.Route("/fish", func(r chi.Router) {
			r.Get("/", controllers.FishList(p.SpeciesService, logg))
			r.Get("/setup", controllers.FishRecommendSetup(p.SpeciesService, logg))
			r.Get("/{speciesId}", controllers.FishDetail(p.SpeciesService, logg))
			r.Get("/{speciesId}/breeding-timeline", controllers.FishBreedingTimeline(p.SpeciesService, logg))
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", controllers.AuthRegister(p.RegisterService, p.AuthService, logg))
			r.Post("/login", controllers.AuthLogin(p.AuthService, logg))
			r.Post("/refresh", controllers.AuthRefresh(p.AuthService, logg))
			r.Post("/logout", controllers.AuthLogout(p.AuthService, cfg.JWT, logg))
		})

		// Everything below requires a live session.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, p.SessionManager, logg))

			r.Get("/auth/me", controllers.AuthMe(logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartFetch(p.CartService, logg))
				r.Post("/", controllers.CartAddItem(p.CartService, logg))
				r.Put("/{productId}", controllers.CartUpdateItem(p.CartService, logg))
				r.Delete("/{productId}", controllers.CartRemoveItem(p.CartService, logg))
				r.Delete("/", controllers.CartClear(p.CartService, logg))
			})

			r.Route("/favorites", func(r chi.Router) {
				r.Get("/", controllers.WishlistList(p.WishlistService, logg))
				r.Post("/{productId}", controllers.WishlistAddItem(p.WishlistService, logg))
				r.Delete("/{productId}", controllers.WishlistRemoveItem(p.WishlistService, logg))
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", controllers.OrdersList(p.OrderService, logg))
				r.Get("/{orderId}", controllers.OrderDetail(p.OrderService, logg))
			})
			r.Post("/checkout", controllers.Checkout(p.OrderService, logg))

			r.Post("/coupons/validate", controllers.CouponValidate(p.CouponService, logg))

			r.Post("/products/{productId}/reviews", controllers.ReviewCreate(p.ReviewService, logg))
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, p.SessionManager, logg))
		r.Use(middleware.RequireAdmin(logg))

		r.Route("/products", func(r chi.Router) {
			r.Post("/", controllers.AdminCreateProduct(p.ProductService, logg))
			r.Patch("/{productId}", controllers.AdminUpdateProduct(p.ProductService, logg))
			r.Delete("/{productId}", controllers.AdminDeleteProduct(p.ProductService, logg))
			r.Delete("/{productId}/reviews/{userId}", controllers.AdminDeleteReview(p.ReviewService, logg))
		})

		r.Route("/coupons", func(r chi.Router) {
			r.Get("/", controllers.AdminListCoupons(p.CouponService, logg))
			r.Post("/", controllers.AdminCreateCoupon(p.CouponService, logg))
			r.Delete("/{code}", controllers.AdminDeactivateCoupon(p.CouponService, logg))
		})

		r.Put("/orders/{orderId}/status", controllers.AdminUpdateOrderStatus(p.OrderService, logg))
	})

	return r
}
