package models

import (
	"fmt"
	"strings"
)

// SyncType, POST /api/sync isteğindeki "type" alanının kanonik değerleri.
type SyncType string

const (
	SyncCreateProduct   SyncType = "create_product"
	SyncCreateOrder     SyncType = "create_order"
	SyncCreatePost      SyncType = "create_post"
	SyncValidateProduct SyncType = "validate_product"
	SyncValidateI18n    SyncType = "validate_i18n"
)

// syncTypeAliases, eski client'ların kullandığı platform önekli isimleri de kabul eder.
var syncTypeAliases = map[string]SyncType{
	"create_product":   SyncCreateProduct,
	"wc_product":       SyncCreateProduct,
	"create_order":     SyncCreateOrder,
	"wc_order":         SyncCreateOrder,
	"create_post":      SyncCreatePost,
	"wp_post":          SyncCreatePost,
	"validate_product": SyncValidateProduct,
	"validate_i18n":    SyncValidateI18n,
}

// SupportedSyncTypes, hata mesajlarında listelenen type değerleri.
var SupportedSyncTypes = []string{
	"create_product", "create_order", "create_post",
	"validate_product", "validate_i18n",
	"wc_product", "wc_order", "wp_post",
}

// ParseSyncType, client'ın gönderdiği type değerini kanonik forma çevirir.
func ParseSyncType(s string) (SyncType, bool) {
	t, ok := syncTypeAliases[strings.ToLower(strings.TrimSpace(s))]
	return t, ok
}

// ListType, GET /api/sync?type=... için listelenebilir kaynaklar.
type ListType string

const (
	ListProducts ListType = "wc_products"
	ListOrders   ListType = "wc_orders"
	ListPosts    ListType = "wp_posts"
)

// SupportedListTypes, GET /api/sync için kabul edilen type değerleri.
var SupportedListTypes = []string{string(ListProducts), string(ListOrders), string(ListPosts)}

// ParseListType, listeleme type'ını doğrular. "products" gibi öneksiz isimler de kabul edilir.
func ParseListType(s string) (ListType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wc_products", "products":
		return ListProducts, true
	case "wc_orders", "orders":
		return ListOrders, true
	case "wp_posts", "posts":
		return ListPosts, true
	}
	return "", false
}

// SyncRequest, dönüştürme/doğrulama isteğinin gövdesi.
//
// FallbackLanguage kabul edilir ve yanıtta geri dönülür, fakat çözümleme
// her zaman base dile (en) düşer. Bu alan Resolve tarafından kullanılmaz.
type SyncRequest struct {
	Type             string         `json:"type"`
	Data             map[string]any `json:"data"`
	Language         string         `json:"language"`
	FallbackLanguage string         `json:"fallback_language"`
}

// SyncResult, Dispatch sonucunu handler'a taşır.
// Create işlemlerinde Data uzak API'nin normalize yanıtıdır;
// validation işlemlerinde Validation doludur.
type SyncResult struct {
	Type             SyncType          `json:"type"`
	Language         LanguageCode      `json:"language"`
	FallbackLanguage LanguageCode      `json:"fallback_language"`
	Data             any               `json:"data,omitempty"`
	Validation       *ValidationResult `json:"validation,omitempty"`
}

// Pagination, listeleme endpoint'lerinin query parametreleri.
// Handler önce default'ları (page=1, per_page=10) atar, sonra query'yi decode eder.
type Pagination struct {
	Page    int `schema:"page"`
	PerPage int `schema:"per_page"`
}

// Pagination limitleri.
const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// DefaultPagination, parametresiz isteklerin kullandığı değerler.
func DefaultPagination() Pagination {
	return Pagination{Page: DefaultPage, PerPage: DefaultPerPage}
}

// Validate, sayfa değerlerinin aralıkta olup olmadığını kontrol eder.
func (p *Pagination) Validate() error {
	if p.Page < 1 {
		return fmt.Errorf("page must be greater than or equal to 1")
	}
	if p.PerPage < 1 || p.PerPage > MaxPerPage {
		return fmt.Errorf("per_page must be between 1 and %d", MaxPerPage)
	}
	return nil
}

// PaginationMeta, liste yanıtındaki sayfalama bilgisi.
type PaginationMeta struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Total   int `json:"total"`
	Pages   int `json:"pages"`
}

// PaginatedResponse, uzak API'den gelen sayfalı liste.
// Üst seviye total/page/per_page/pages alanları eski client'lar için tekrarlanır.
type PaginatedResponse[T any] struct {
	Items      []T            `json:"items"`
	Pagination PaginationMeta `json:"pagination"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	PerPage    int            `json:"per_page"`
	Pages      int            `json:"pages"`
}

// NewPaginatedResponse, meta alanlarını tek yerden doldurur.
func NewPaginatedResponse[T any](items []T, p Pagination, total, pages int) *PaginatedResponse[T] {
	if items == nil {
		items = []T{}
	}
	return &PaginatedResponse[T]{
		Items: items,
		Pagination: PaginationMeta{
			Page:    p.Page,
			PerPage: p.PerPage,
			Total:   total,
			Pages:   pages,
		},
		Total:   total,
		Page:    p.Page,
		PerPage: p.PerPage,
		Pages:   pages,
	}
}
