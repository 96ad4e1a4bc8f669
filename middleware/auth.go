// Package middleware, HTTP request pipeline'ına eklenen ara katmanları barındırır.
//
// Go'da middleware bir fonksiyondur:
//
//	func(next http.Handler) http.Handler
//
// Zincir: Logging → Auth → RateLimit → Handler.
// Middleware işini yapar, sonra next'i çağırır. Hata varsa next çağrılmaz.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/akinalp/wpsync/pkg"
	"github.com/akinalp/wpsync/pkg/i18n"
	"github.com/akinalp/wpsync/services"
)

type contextKey string

// ClientIDContextKey, doğrulanmış token'ın client_id claim'ini taşır.
const ClientIDContextKey contextKey = "client_id"

// ClientIDFromContext, auth kapalıysa veya istek doğrulanmadıysa boş döner.
func ClientIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ClientIDContextKey).(string)
	return id
}

// AuthMiddleware, Bearer JWT doğrulama middleware'ı.
type AuthMiddleware struct {
	authService services.AuthService
}

// NewAuthMiddleware, constructor.
func NewAuthMiddleware(authService services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// Require, geçerli bir token olmadan isteği 401 ile keser.
//
// Header formatı: Authorization: Bearer <token>
// Token geçerliyse client_id context'e eklenir ve next çağrılır.
func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		loc := i18n.NewLocalizer(i18n.DetectLanguage(r.Header.Get("Accept-Language")))

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			pkg.ErrorWithMessage(w, http.StatusUnauthorized, loc.T("errors.unauthorized"), "authorization header required")
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || strings.TrimSpace(tokenString) == "" {
			pkg.ErrorWithMessage(w, http.StatusUnauthorized, loc.T("errors.unauthorized"),
				"invalid authorization format, use: Bearer <token>")
			return
		}

		claims, err := m.authService.ValidateAccessToken(strings.TrimSpace(tokenString))
		if err != nil {
			pkg.ErrorWithMessage(w, http.StatusUnauthorized, loc.T("errors.unauthorized"), err.Error())
			return
		}

		ctx := context.WithValue(r.Context(), ClientIDContextKey, claims.ClientID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
