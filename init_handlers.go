// Package main — Handler katmanı başlatma.
//
// Handler'lar "thin" dir: sadece HTTP parse + service call + response write.
package main

import "github.com/akinalp/wpsync/handlers"

// Handlers, tüm handler instance'larını tutan container struct.
type Handlers struct {
	Health      *handlers.HealthHandler
	Sync        *handlers.SyncHandler
	WooCommerce *handlers.WooCommerceHandler
	WordPress   *handlers.WordPressHandler
	Validation  *handlers.ValidationHandler
}

// initHandlers, tüm handler'ları service dependency'leri ile oluşturur.
func initHandlers(svcs *Services) *Handlers {
	return &Handlers{
		Health:      handlers.NewHealthHandler(),
		Sync:        handlers.NewSyncHandler(svcs.Sync),
		WooCommerce: handlers.NewWooCommerceHandler(svcs.Sync),
		WordPress:   handlers.NewWordPressHandler(svcs.Sync),
		Validation:  handlers.NewValidationHandler(svcs.Validation),
	}
}
