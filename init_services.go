// Package main — Service katmanı başlatma.
//
// initServices, uzak API client'larını ve service'leri oluşturur.
// Service'ler uzak API'lere interface (wpapi.ContentAPI / CommerceAPI) üzerinden erişir.
package main

import (
	"github.com/akinalp/wpsync/config"
	"github.com/akinalp/wpsync/pkg/ratelimit"
	"github.com/akinalp/wpsync/pkg/wpapi"
	"github.com/akinalp/wpsync/services"
)

// Services, tüm service instance'larını tutan container struct.
type Services struct {
	Auth       services.AuthService // nil ise JWT doğrulaması kapalı
	Transform  services.TransformService
	Validation services.ValidationService
	Sync       services.SyncService
}

// initServices, service'leri ve (açıksa) rate limiter'ı oluşturur.
func initServices(cfg *config.Config) (*Services, *ratelimit.Limiter) {
	content := wpapi.NewWordPress(cfg.Remote)
	commerce := wpapi.NewWooCommerce(cfg.Remote)

	transform := services.NewTransformService()
	validation := services.NewValidationService()

	svcs := &Services{
		Transform:  transform,
		Validation: validation,
		Sync:       services.NewSyncService(transform, validation, content, commerce),
	}
	if cfg.Auth.Enabled() {
		svcs.Auth = services.NewAuthService(cfg.Auth.JWTSecret)
	}

	var limiter *ratelimit.Limiter
	if cfg.RateLimit.Requests > 0 {
		limiter = ratelimit.New(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	}

	return svcs, limiter
}
