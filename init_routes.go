// Package main — HTTP route registration.
//
// Middleware chain helper'ları:
//   - open: middleware yok (health, servis bilgisi)
//   - read: auth (açıksa)
//   - write: auth (açıksa) + rate limit (açıksa)
package main

import (
	"net/http"

	"github.com/akinalp/wpsync/middleware"
	"github.com/akinalp/wpsync/pkg/ratelimit"
	"github.com/akinalp/wpsync/services"
)

// initRoutes, middleware chain'i kurar ve tüm endpoint'leri mux'a bağlar.
// authService nil ise auth katmanı, limiter nil ise rate limit katmanı atlanır.
func initRoutes(mux *http.ServeMux, h *Handlers, authService services.AuthService, limiter *ratelimit.Limiter) {
	// ─── Middleware Chain Helpers ───
	auth := func(next http.Handler) http.Handler { return next }
	if authService != nil {
		auth = middleware.NewAuthMiddleware(authService).Require
	}
	limit := middleware.RateLimit(limiter)

	read := func(handler http.HandlerFunc) http.Handler {
		return auth(handler)
	}
	write := func(handler http.HandlerFunc) http.Handler {
		return auth(limit(handler))
	}

	// ─── Service ───
	mux.HandleFunc("GET /{$}", h.Health.Root)
	mux.HandleFunc("GET /api/health", h.Health.Health)

	// ─── Sync (birleşik endpoint) ───
	mux.Handle("POST /api/sync", write(h.Sync.Sync))
	mux.Handle("GET /api/sync", read(h.Sync.List))

	// ─── WooCommerce ───
	mux.Handle("GET /api/wc/products", read(h.WooCommerce.ListProducts))
	mux.Handle("POST /api/wc/products", write(h.WooCommerce.CreateProduct))
	mux.Handle("GET /api/wc/orders", read(h.WooCommerce.ListOrders))
	mux.Handle("POST /api/wc/orders", write(h.WooCommerce.CreateOrder))

	// ─── WordPress ───
	mux.Handle("GET /api/wp/posts", read(h.WordPress.ListPosts))
	mux.Handle("POST /api/wp/posts", write(h.WordPress.CreatePost))
	mux.Handle("GET /api/wp/posts/{id}", read(h.WordPress.GetPost))

	// ─── Validation (uzak API'ye gitmez) ───
	mux.Handle("POST /api/validation/validate-product", write(h.Validation.ValidateProduct))
	mux.Handle("POST /api/validation/validate-i18n", write(h.Validation.ValidateI18n))
	mux.Handle("GET /api/validation/schema-examples", read(h.Validation.SchemaExamples))
}
