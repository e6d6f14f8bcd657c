package api

import (
	"net/http"

	"vesture-be/internal/address"
	"vesture-be/internal/cart"
	"vesture-be/internal/coupon"
	"vesture-be/internal/logger"
	"vesture-be/internal/metrics"
	"vesture-be/internal/middleware"
	"vesture-be/internal/order"
	"vesture-be/internal/product"
	"vesture-be/internal/user"

	"github.com/go-chi/chi/v5"
)

// Handlers carries one handler per domain; the router owns no logic.
type Handlers struct {
	User    *user.Handler
	Product *product.Handler
	Cart    *cart.Handler
	Coupon  *coupon.Handler
	Address *address.Handler
	Order   *order.Handler
}

// NewRouter builds the HTTP router for the storefront API.
func NewRouter(h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(logger.RequestIDMiddleware)
	r.Use(middleware.AuthMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.RateLimitMiddleware)
	r.Use(metrics.Middleware)

	// health
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.User.Register)
			r.Post("/login", h.User.Login)
			r.With(middleware.RequireAuth).Get("/profile", h.User.Profile)
		})

		// Public catalog
		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.Product.List)
			r.Get("/{productID}", h.Product.Get)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/", h.Cart.Get)
			r.Delete("/", h.Cart.Clear)
			r.Post("/items", h.Cart.AddItem)
			r.Put("/items", h.Cart.UpdateQuantity)
			r.Delete("/items", h.Cart.RemoveItem)
		})

		r.Post("/coupons/validate", h.Coupon.Validate)

		r.Route("/addresses", func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/", h.Address.List)
			r.Post("/", h.Address.Create)
			r.Put("/{addressID}", h.Address.Update)
			r.Delete("/{addressID}", h.Address.Delete)
			r.Put("/{addressID}/default", h.Address.SetDefault)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/", h.Order.ListMine)
			r.Post("/checkout", h.Order.Checkout)
			r.Get("/{orderID}", h.Order.Detail)
		})

		// Admin endpoints
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.RequireAdmin)

			r.Post("/products", h.Product.Create)
			r.Put("/products/{productID}", h.Product.Update)
			r.Delete("/products/{productID}", h.Product.Delete)

			r.Get("/coupons", h.Coupon.List)
			r.Post("/coupons", h.Coupon.Create)
			r.Put("/coupons/{couponID}", h.Coupon.Update)
			r.Delete("/coupons/{couponID}", h.Coupon.Deactivate)

			r.Get("/orders", h.Order.AdminList)
			r.Put("/orders/{orderID}/status", h.Order.UpdateStatus)
		})
	})

	return r
}
