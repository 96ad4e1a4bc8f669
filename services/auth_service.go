// Package services, business logic katmanını barındırır.
//
// Handler (HTTP) ile uzak API client'ları (pkg/wpapi) arasında oturur.
// Dönüştürme, i18n çözümleme ve doğrulama kuralları burada yaşar.
// Service http.Request/Response bilmez; sadece domain modelleri alır/verir.
package services

import (
	"fmt"

	"github.com/akinalp/wpsync/models"
	"github.com/akinalp/wpsync/pkg"
	"github.com/golang-jwt/jwt/v5"
)

// AuthService, API'yi çağıran client'ların JWT'lerini doğrular.
// Token üretimi bu servisin işi değildir; paylaşılan secret ile dışarıda imzalanır.
type AuthService interface {
	ValidateAccessToken(tokenString string) (*models.TokenClaims, error)
}

type authService struct {
	jwtSecret []byte
}

// NewAuthService, HS256 secret ile doğrulayan AuthService oluşturur.
func NewAuthService(jwtSecret string) AuthService {
	return &authService{jwtSecret: []byte(jwtSecret)}
}

// ValidateAccessToken, JWT'yi doğrular ve claims'i döner.
// Süresi dolmuş, imzası hatalı veya client_id taşımayan token'lar reddedilir.
func (s *authService) ValidateAccessToken(tokenString string) (*models.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.TokenClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: invalid token", pkg.ErrUnauthorized)
	}

	claims, ok := token.Claims.(*models.TokenClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: invalid token claims", pkg.ErrUnauthorized)
	}
	if claims.ClientID == "" {
		return nil, fmt.Errorf("%w: token has no client_id", pkg.ErrUnauthorized)
	}

	return claims, nil
}
