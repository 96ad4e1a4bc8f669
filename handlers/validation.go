package handlers

import (
	"net/http"

	"github.com/akinalp/wpsync/pkg"
	"github.com/akinalp/wpsync/services"
)

// ValidationHandler, /api/validation/* endpoint'lerini yönetir.
// Bulgular hata değil veridir: yanıt her zaman 200, success = valid.
type ValidationHandler struct {
	validationService services.ValidationService
}

// NewValidationHandler, constructor.
func NewValidationHandler(validationService services.ValidationService) *ValidationHandler {
	return &ValidationHandler{validationService: validationService}
}

// ValidateProduct godoc
// POST /api/validation/validate-product
// Body doğrudan ürün dokümanıdır (data sarmalayıcısı yok).
func (h *ValidationHandler) ValidateProduct(w http.ResponseWriter, r *http.Request) {
	loc := localizer(r)

	var doc map[string]any
	if err := decodeBody(r, &doc); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, loc.T("sync.invalidBody"), err.Error())
		return
	}

	result := h.validationService.ValidateProduct(doc)
	writeValidation(w, loc.TWithParams(validationKey("validation.product", result), countParams(result)), result)
}

// ValidateI18n godoc
// POST /api/validation/validate-i18n
func (h *ValidationHandler) ValidateI18n(w http.ResponseWriter, r *http.Request) {
	loc := localizer(r)

	var doc map[string]any
	if err := decodeBody(r, &doc); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, loc.T("sync.invalidBody"), err.Error())
		return
	}

	result := h.validationService.ValidateI18n(doc)
	writeValidation(w, loc.TWithParams(validationKey("validation.i18n", result), countParams(result)), result)
}

// SchemaExamples godoc
// GET /api/validation/schema-examples
// Client geliştiricileri için geçerli/geçersiz örnek payload'lar ve kurallar.
func (h *ValidationHandler) SchemaExamples(w http.ResponseWriter, r *http.Request) {
	pkg.JSONWithMessage(w, http.StatusOK, schemaExamples, localizer(r).T("validation.schemaExamples"))
}

var schemaExamples = map[string]any{
	"valid_product_example": map[string]any{
		"name": map[string]any{
			"en": map[string]any{"translation": "BMW X5", "notes": "Product name", "limit": 50},
			"fr": map[string]any{"translation": "BMW X5", "notes": "Nom du produit", "limit": 50},
		},
		"description": map[string]any{
			"en": map[string]any{"translation": "Luxury SUV", "notes": "Product description", "limit": 500},
			"fr": map[string]any{"translation": "SUV de luxe", "notes": "Description du produit", "limit": 500},
		},
		"price":          "89,500",
		"stock_quantity": 3,
	},
	"invalid_product_example": map[string]any{
		"name": map[string]any{
			"en": map[string]any{"translation": "BMW X5", "notes": "Product name"},
		},
		"price":          "invalid_price",
		"stock_quantity": -5,
	},
	"validation_rules": map[string]any{
		"required_fields": []string{"name", "description", "price"},
		"i18n_required":   []string{"en translation"},
		"data_types": map[string]string{
			"price":          "string or number",
			"stock_quantity": "integer >= 0",
			"categories":     "array of objects with id and name",
		},
		"i18n_structure": map[string]string{
			"translation": "required string",
			"notes":       "optional string",
			"context":     "optional string",
			"limit":       "optional integer",
		},
	},
}
