// Package ratelimit, IP bazlı sabit pencereli istek limiti sağlar.
//
// Sync API'si her çağrıda uzak WordPress/WooCommerce sitesine istek atar;
// tek bir client'ın siteyi boğmaması için her IP pencere başına
// maxRequests istekle sınırlanır. Bucket'lar pkg/cache'te pencere sonuna kadar
// yaşar; süresi dolanlar arka planda Purge edilir.
package ratelimit

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/akinalp/wpsync/pkg/cache"
)

// bucket, bir IP adresi için istek sayacı ve pencere başlangıcı.
type bucket struct {
	count       int
	windowStart time.Time
}

// Limiter, IP bazlı rate limiter.
//
//	limiter := ratelimit.New(60, time.Minute)
//	defer limiter.Stop()
//	if !limiter.Allow(ip) { return 429 }
type Limiter struct {
	mu          sync.Mutex // Allow'un oku-artır-yaz adımını atomik tutar
	buckets     *cache.TTL[string, bucket]
	maxRequests int
	window      time.Duration
	now         func() time.Time
	stopCleanup chan struct{}
	stopOnce    sync.Once
}

// New, limiter oluşturur ve temizleme goroutine'ini başlatır.
func New(maxRequests int, window time.Duration) *Limiter {
	rl := &Limiter{
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}
	rl.buckets = cache.NewWithClock[string, bucket](window, func() time.Time { return rl.now() })

	go rl.cleanupLoop()

	return rl
}

// Allow, IP'nin bu pencerede istek hakkı olup olmadığını döner.
// Her çağrı sayacı artırır.
func (rl *Limiter) Allow(ip string) bool {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, exists := rl.buckets.Get(ip)
	if !exists {
		b = bucket{windowStart: now}
	}

	b.count++
	rl.buckets.SetUntil(ip, b, b.windowStart.Add(rl.window))
	return b.count <= rl.maxRequests
}

// RetryAfterSeconds, pencere bitene kadar kalan süre (Retry-After header değeri).
func (rl *Limiter) RetryAfterSeconds(ip string) int {
	b, exists := rl.buckets.Get(ip)
	if !exists {
		return 0
	}

	remaining := rl.window - rl.now().Sub(b.windowStart)
	if remaining <= 0 {
		return 0
	}
	return int(remaining.Seconds()) + 1
}

// Stop, temizleme goroutine'ini durdurur. Birden fazla çağrılabilir.
func (rl *Limiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCleanup) })
}

func (rl *Limiter) cleanupLoop() {
	ticker := time.NewTicker(60 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stopCleanup:
			return
		}
	}
}

// cleanup, penceresi dolmuş tüm bucket'ları siler.
func (rl *Limiter) cleanup() {
	rl.buckets.Purge()
}

// ExtractIP, HTTP request'ten client IP adresini çıkarır.
//
// Öncelik: X-Forwarded-For (ilk IP), X-Real-IP, RemoteAddr.
// Production'da servis genellikle bir reverse proxy arkasındadır.
func ExtractIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// FormatRetryMessage, kalan süreyi okunabilir formata çevirir.
// Örn: 120 → "2 minute(s)", 45 → "45 second(s)"
func FormatRetryMessage(seconds int) string {
	if seconds >= 60 {
		return fmt.Sprintf("%d minute(s)", seconds/60)
	}
	return fmt.Sprintf("%d second(s)", seconds)
}
