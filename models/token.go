package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims, API'yi çağıran client'ın JWT payload'ı.
//
// Token bu servis tarafından üretilmez; paylaşılan secret ile client tarafında
// (veya bir API gateway'de) imzalanır. Servis sadece doğrular.
type TokenClaims struct {
	ClientID string `json:"client_id"`
	jwt.RegisteredClaims
}
