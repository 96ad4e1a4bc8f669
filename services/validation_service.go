package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/akinalp/wpsync/models"
	"github.com/akinalp/wpsync/pkg/document"
)

// ValidationService, client dokümanlarının yapısal doğrulaması.
//
// Doğrulama hata döndürmez: tüm kontroller çalışır, bulgular ValidationResult'ta
// toplanır. Transformer'dan bağımsızdır, router tarafından doğrudan çağrılır.
type ValidationService interface {
	ValidateProduct(doc map[string]any) *models.ValidationResult
	ValidateI18n(doc map[string]any) *models.ValidationResult
}

type validationService struct{}

// NewValidationService, stateless ValidationService döner.
func NewValidationService() ValidationService {
	return &validationService{}
}

// ValidateProduct, ürün dokümanının zorunlu alanlarını ve tiplerini kontrol eder.
//
//   - name, description: zorunlu, geçerli çok dilli obje olmalı
//   - price: zorunlu, string veya sayı
//   - categories: varsa id ve name içeren obje listesi
//   - stock_quantity: varsa negatif olmayan tam sayı
func (s *validationService) ValidateProduct(doc map[string]any) *models.ValidationResult {
	result := models.NewValidationResult()

	validateI18nField(result, doc, "name", "Product name")
	validateI18nField(result, doc, "description", "Product description")

	if !document.Has(doc, "price") {
		result.AddError("Product price is required")
	} else if _, isString := doc["price"].(string); !isString && !document.IsNumber(doc["price"]) {
		result.AddError("Product price must be a string or number")
	}

	if document.Has(doc, "categories") {
		categories, isList := doc["categories"].([]any)
		if !isList {
			result.AddError("Categories must be a list")
		}
		for i, c := range categories {
			cat, isObj := c.(map[string]any)
			switch {
			case !isObj:
				result.AddError(fmt.Sprintf("Category %d must be an object", i))
			case !document.Has(cat, "id") || !document.Has(cat, "name"):
				result.AddError(fmt.Sprintf("Category %d must have 'id' and 'name' fields", i))
			}
		}
	}

	if document.Has(doc, "stock_quantity") {
		stock := doc["stock_quantity"]
		if !document.IsInteger(stock) {
			result.AddError("Stock quantity must be an integer")
		} else if n, _ := document.ToInt(stock); n < 0 {
			result.AddError("Stock quantity cannot be negative")
		}
	}

	result.Finish()
	if result.Valid {
		result.ValidatedData = doc
	}
	return result
}

// validateI18nField, zorunlu bir çok dilli alanı kontrol eder.
// Geçerli yapı bilgi amaçlı bir uyarı ekler.
func validateI18nField(result *models.ValidationResult, doc map[string]any, key, label string) {
	if !document.Has(doc, key) {
		result.AddError(label + " is required")
		return
	}

	obj, isObj := doc[key].(map[string]any)
	if !isObj {
		result.AddError(label + " validation failed: expected a multi-language object")
		return
	}
	if _, err := models.NewI18nData(obj); err != nil {
		result.AddError(fmt.Sprintf("%s validation failed: %v", label, err))
		return
	}
	result.AddWarning(label + " i18n structure is valid")
}

// ValidateI18n, dokümandaki her alanı i18n veya düz değer olarak sınıflandırır.
//
// i18n alanları kurulur (hata → error), eksik diller uyarı olarak raporlanır ve
// karakter limitini aşan her çeviri için bir error eklenir. Düz alanlar sadece uyarıdır.
func (s *validationService) ValidateI18n(doc map[string]any) *models.ValidationResult {
	result := models.NewValidationResult()
	result.I18nFields = []string{}

	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, field := range keys {
		obj, isI18n := models.IsI18nObject(doc[field])
		if !isI18n {
			result.AddWarning(field + " is not i18n data (single value)")
			continue
		}
		result.I18nFields = append(result.I18nFields, field)

		data, err := models.NewI18nData(obj)
		if err != nil {
			result.AddError(fmt.Sprintf("%s i18n validation failed: %v", field, err))
			continue
		}
		result.AddWarning(field + " i18n structure is valid")

		if missing := data.MissingLanguages(); len(missing) > 0 {
			codes := make([]string, len(missing))
			for i, code := range missing {
				codes[i] = string(code)
			}
			result.AddWarning(fmt.Sprintf("%s missing translations for: %s", field, strings.Join(codes, ", ")))
		}

		for _, code := range models.SupportedLanguages {
			if t := data.Get(code); t.ExceedsLimit() {
				result.AddError(fmt.Sprintf("%s %s translation exceeds %d character limit", field, code, *t.Limit))
			}
		}
	}

	return result.Finish()
}
