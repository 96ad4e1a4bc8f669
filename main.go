// Package main, wpsync servisinin giriş noktasıdır.
//
// Dependency Injection "wire-up":
//  1. Config'i yükle
//  2. Logger'ı kur
//  3. i18n mesaj kataloglarını yükle
//  4. Uzak API client'larını oluştur (WordPress, WooCommerce)
//  5. Service'leri oluştur
//  6. Handler'ları oluştur
//  7. Route'ları ve middleware zincirini bağla
//  8. CORS, HTTP server, graceful shutdown
//
// Global değişken YOK. Her şey burada oluşturulup birbirine bağlanır.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/akinalp/wpsync/config"
	"github.com/akinalp/wpsync/middleware"
	"github.com/akinalp/wpsync/pkg/i18n"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

func main() {
	// ─── 1. Config ───
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	// ─── 2. Logger ───
	logger := initLogger(cfg.Log)
	log := logger.WithField("component", "main")
	log.WithFields(logrus.Fields{
		"addr":       cfg.Server.Addr(),
		"remote":     cfg.Remote.BaseURL,
		"auth":       cfg.Auth.Enabled(),
		"rate_limit": cfg.RateLimit.Requests,
	}).Info("wpsync server starting")

	// ─── 3. i18n ───
	if err := i18n.LoadEmbedded(); err != nil {
		log.WithError(err).Fatal("failed to load i18n catalogs")
	}

	// ─── 4-5. Remote client'lar + Service'ler ───
	svcs, limiter := initServices(cfg)
	if limiter != nil {
		defer limiter.Stop()
	}

	// ─── 6. Handler'lar ───
	h := initHandlers(svcs)

	// ─── 7. Router ───
	mux := http.NewServeMux()
	initRoutes(mux, h, svcs.Auth, limiter)

	// ─── 8. CORS ───
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "Accept-Language", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "Retry-After"},
		AllowCredentials: true,
	})

	handler := middleware.Logging(logger)(corsHandler.Handler(mux))

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Remote.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ─── Graceful Shutdown ───
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Infof("server listening on %s", cfg.Server.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server error")
		}
	}()

	<-done
	log.Info("shutting down...")

	// Yeni istek kabul edilmez, devam eden uzak API çağrılarının bitmesi beklenir.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Remote.Timeout+5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("forced shutdown")
		return
	}

	log.Info("server stopped gracefully")
}
