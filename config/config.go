// Package config, uygulamanın tüm konfigürasyonunu merkezi olarak yönetir.
// Environment variable'lardan okur, .env dosyasını da destekler.
//
// Her alt bölüm ayrı bir struct: Server, Remote (WordPress/WooCommerce),
// Auth, RateLimit, CORS ve Log. Servisler sadece ihtiyaç duydukları bölümü alır.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config, uygulamanın tüm konfigürasyon değerlerini taşır.
type Config struct {
	Server    ServerConfig
	Remote    RemoteConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Log       LogConfig
}

// ServerConfig, HTTP server ayarları.
type ServerConfig struct {
	Host string
	Port int
}

// RemoteConfig, uzak WordPress/WooCommerce sitesinin erişim bilgileri.
type RemoteConfig struct {
	BaseURL  string // Site kökü (ör: https://eidcarosse.ch), sonda "/" olmadan
	AuthType string // "basic" veya "bearer"

	// WordPress REST API, application password ile basic auth.
	// AuthType=bearer ise WPAppPassword token olarak gönderilir.
	WPUsername    string
	WPAppPassword string

	// WooCommerce REST API, consumer key/secret ile basic auth.
	WCConsumerKey    string
	WCConsumerSecret string

	Timeout time.Duration
}

// AuthConfig, gelen isteklerin JWT doğrulaması.
// Secret boşsa doğrulama kapalıdır.
type AuthConfig struct {
	JWTSecret string
}

// Enabled, JWT doğrulamasının aktif olup olmadığını döner.
func (a AuthConfig) Enabled() bool {
	return a.JWTSecret != ""
}

// RateLimitConfig, IP başına istek limiti. Requests=0 ise limit yok.
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// CORSConfig, izin verilen origin listesi.
type CORSConfig struct {
	AllowedOrigins []string
}

// LogConfig, logrus seviyesi ve çıktı formatı.
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // text veya json
}

// Load, environment variable'lardan Config oluşturur.
// .env dosyası varsa önce onu yükler; dosya yoksa sessizce devam eder.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("SERVER_PORT", "8000"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	timeoutSec, err := strconv.Atoi(getEnv("REMOTE_TIMEOUT_SECONDS", "30"))
	if err != nil || timeoutSec <= 0 {
		return nil, fmt.Errorf("invalid REMOTE_TIMEOUT_SECONDS: must be a positive integer")
	}

	rlRequests, err := strconv.Atoi(getEnv("RATE_LIMIT_REQUESTS", "60"))
	if err != nil || rlRequests < 0 {
		return nil, fmt.Errorf("invalid RATE_LIMIT_REQUESTS: must be a non-negative integer")
	}

	rlWindow, err := strconv.Atoi(getEnv("RATE_LIMIT_WINDOW_SECONDS", "60"))
	if err != nil || rlWindow <= 0 {
		return nil, fmt.Errorf("invalid RATE_LIMIT_WINDOW_SECONDS: must be a positive integer")
	}

	authType := strings.ToLower(getEnv("WP_AUTH_TYPE", "basic"))
	if authType != "basic" && authType != "bearer" {
		return nil, fmt.Errorf("invalid WP_AUTH_TYPE %q: must be basic or bearer", authType)
	}

	logFormat := strings.ToLower(getEnv("LOG_FORMAT", "text"))
	if logFormat != "text" && logFormat != "json" {
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: must be text or json", logFormat)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: port,
		},
		Remote: RemoteConfig{
			BaseURL:          strings.TrimRight(getEnv("BASE_URL", "https://eidcarosse.ch"), "/"),
			AuthType:         authType,
			WPUsername:       getEnv("WP_USERNAME", ""),
			WPAppPassword:    getEnv("WP_APP_PASSWORD", ""),
			WCConsumerKey:    getEnv("WC_CONSUMER_KEY", ""),
			WCConsumerSecret: getEnv("WC_CONSUMER_SECRET", ""),
			Timeout:          time.Duration(timeoutSec) * time.Second,
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("API_JWT_SECRET", ""),
		},
		RateLimit: RateLimitConfig{
			Requests: rlRequests,
			Window:   time.Duration(rlWindow) * time.Second,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: logFormat,
		},
	}

	return cfg, nil
}

// Addr, HTTP server'ın dinleyeceği adresi döner (ör: "0.0.0.0:8000").
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv, environment variable'ı okur, yoksa fallback değeri döner.
func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

// splitList, virgülle ayrılmış listeyi trim'leyip boşları atar.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
