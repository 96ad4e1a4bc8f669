package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestIDContextKey, request'e atanan id. X-Request-ID header'ı ile de döner.
const RequestIDContextKey contextKey = "request_id"

// RequestIDFromContext, logging middleware'ı dışında çağrılırsa boş döner.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDContextKey).(string)
	return id
}

// Logging, her isteği method, path, status, yazılan byte ve süre ile loglar.
// Client X-Request-ID gönderdiyse aynen kullanılır, yoksa uuid üretilir.
func Logging(logger *logrus.Logger) func(http.Handler) http.Handler {
	log := logger.WithField("component", "http")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set("X-Request-ID", requestID)
			r = r.WithContext(context.WithValue(r.Context(), RequestIDContextKey, requestID))

			lw := &loggedWriter{ResponseWriter: w}
			next.ServeHTTP(lw, r)

			if lw.statusCode == 0 {
				lw.statusCode = http.StatusOK
			}

			entry := log.WithFields(logrus.Fields{
				"request_id": requestID,
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     lw.statusCode,
				"written":    lw.written,
				"duration":   time.Since(start),
			})
			switch {
			case lw.err != nil:
				entry.WithError(lw.err).Error("response writer")
			case lw.statusCode >= http.StatusInternalServerError:
				entry.Warn("done")
			default:
				entry.Info("done")
			}
		})
	}
}

type loggedWriter struct {
	http.ResponseWriter

	statusCode int
	written    int
	err        error
}

func (w *loggedWriter) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *loggedWriter) Write(b []byte) (int, error) {
	if w.statusCode == 0 {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.written += n
	w.err = err
	return n, err
}
