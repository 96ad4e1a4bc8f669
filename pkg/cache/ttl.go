// Package cache, generic in-memory TTL cache.
//
//	c := cache.New[string, int](time.Minute)
//	c.Set("203.0.113.7", 1)
//	v, ok := c.Get("203.0.113.7")
//
// Süresi dolan kayıtlar Get'te görünmez. Map'ten fiziksel silme Purge ile yapılır;
// paket kendi goroutine'ini başlatmaz, periyodik Purge çağıranın işidir.
package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// TTL, thread-safe generic cache. Sıfır değeri kullanılamaz; New ile oluşturulur.
type TTL[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]entry[V]
	ttl     time.Duration
	now     func() time.Time
}

// New, her kaydı ttl süresince tutan cache oluşturur.
func New[K comparable, V any](ttl time.Duration) *TTL[K, V] {
	return NewWithClock[K, V](ttl, time.Now)
}

// NewWithClock, zaman kaynağı verilebilen New. Testler ve kendi saatini
// tutan çağıranlar (ör: ratelimit) için.
func NewWithClock[K comparable, V any](ttl time.Duration, now func() time.Time) *TTL[K, V] {
	return &TTL[K, V]{
		entries: make(map[K]entry[V]),
		ttl:     ttl,
		now:     now,
	}
}

// Get, key varsa ve süresi dolmamışsa (value, true) döner.
func (c *TTL[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || !c.now().Before(e.expiresAt) {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set, değeri şimdiden itibaren ttl süresiyle yazar.
func (c *TTL[K, V]) Set(key K, value V) {
	c.SetUntil(key, value, c.now().Add(c.ttl))
}

// SetUntil, değeri verilen ana kadar geçerli olacak şekilde yazar.
// Sabit pencereli sayaçlarda pencere sonu yeniden yazımda değişmez.
func (c *TTL[K, V]) SetUntil(key K, value V, expiresAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[V]{value: value, expiresAt: expiresAt}
}

// Purge, süresi dolmuş kayıtları map'ten siler ve silinen sayısını döner.
func (c *TTL[K, V]) Purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for k, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, k)
			removed++
		}
	}
	return removed
}

// Len, map'teki kayıt sayısı (henüz Purge edilmemiş süresi dolmuşlar dahil).
func (c *TTL[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
