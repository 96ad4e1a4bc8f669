package middleware

import (
	"net/http"
	"strconv"

	"github.com/akinalp/wpsync/pkg"
	"github.com/akinalp/wpsync/pkg/i18n"
	"github.com/akinalp/wpsync/pkg/ratelimit"
)

// RateLimit, IP başına limiti aşan istekleri 429 ile reddeder.
// limiter nil ise middleware devre dışıdır.
func RateLimit(limiter *ratelimit.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ratelimit.ExtractIP(r)
			if limiter.Allow(ip) {
				next.ServeHTTP(w, r)
				return
			}

			retryAfter := limiter.RetryAfterSeconds(ip)
			loc := i18n.NewLocalizer(i18n.DetectLanguage(r.Header.Get("Accept-Language")))

			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			pkg.ErrorWithMessage(w, http.StatusTooManyRequests,
				loc.TWithParams("errors.rateLimited", map[string]string{"retry": ratelimit.FormatRetryMessage(retryAfter)}))
		})
	}
}
