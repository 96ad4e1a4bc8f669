package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProductDoc() map[string]any {
	return map[string]any{
		"name": map[string]any{
			"en": map[string]any{"translation": "BMW X5", "notes": "Product name", "limit": 50.0},
			"fr": map[string]any{"translation": "BMW X5", "notes": "Nom du produit", "limit": 50.0},
		},
		"description": map[string]any{
			"en": map[string]any{"translation": "Luxury SUV"},
		},
		"price":          "89,500",
		"stock_quantity": 3.0,
		"categories":     []any{map[string]any{"id": 1.0, "name": "SUV"}},
	}
}

func TestValidateProductValid(t *testing.T) {
	doc := validProductDoc()
	got := NewValidationService().ValidateProduct(doc)

	assert.True(t, got.Valid)
	assert.Empty(t, got.Errors)
	assert.Equal(t, []string{
		"Product name i18n structure is valid",
		"Product description i18n structure is valid",
	}, got.Warnings)
	assert.Equal(t, doc, got.ValidatedData)
}

func TestValidateProductCollectsAllFindings(t *testing.T) {
	got := NewValidationService().ValidateProduct(map[string]any{
		"price":          100.0,
		"stock_quantity": -5.0,
	})

	assert.False(t, got.Valid)
	assert.Equal(t, []string{
		"Product name is required",
		"Product description is required",
		"Stock quantity cannot be negative",
	}, got.Errors)
	assert.Nil(t, got.ValidatedData)
}

func TestValidateProductFieldRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(doc map[string]any)
		wantErr string
	}{
		{"missing price", func(d map[string]any) { delete(d, "price") }, "Product price is required"},
		{"price is bool", func(d map[string]any) { d["price"] = true }, "Product price must be a string or number"},
		{"price is object", func(d map[string]any) { d["price"] = map[string]any{} }, "Product price must be a string or number"},
		{"fractional stock", func(d map[string]any) { d["stock_quantity"] = 2.5 }, "Stock quantity must be an integer"},
		{"bool stock", func(d map[string]any) { d["stock_quantity"] = true }, "Stock quantity must be an integer"},
		{"string stock", func(d map[string]any) { d["stock_quantity"] = "3" }, "Stock quantity must be an integer"},
		{"categories not list", func(d map[string]any) { d["categories"] = "SUV" }, "Categories must be a list"},
		{"category not object", func(d map[string]any) { d["categories"] = []any{"SUV"} }, "Category 0 must be an object"},
		{"category missing name", func(d map[string]any) {
			d["categories"] = []any{map[string]any{"id": 1.0, "name": "ok"}, map[string]any{"id": 2.0}}
		}, "Category 1 must have 'id' and 'name' fields"},
		{"name not i18n object", func(d map[string]any) { d["name"] = "BMW X5" }, "Product name validation failed: expected a multi-language object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validProductDoc()
			tt.mutate(doc)

			got := NewValidationService().ValidateProduct(doc)
			assert.False(t, got.Valid)
			assert.Equal(t, []string{tt.wantErr}, got.Errors)
		})
	}
}

func TestValidateProductBrokenI18n(t *testing.T) {
	doc := validProductDoc()
	doc["name"] = map[string]any{"fr": map[string]any{"translation": "Bonjour"}}

	got := NewValidationService().ValidateProduct(doc)
	require.Len(t, got.Errors, 1)
	assert.True(t, strings.HasPrefix(got.Errors[0], "Product name validation failed: "))
	assert.Contains(t, got.Errors[0], "English translation is required")
	// description hala geçerli → uyarı eklenir
	assert.Equal(t, []string{"Product description i18n structure is valid"}, got.Warnings)
}

func TestValidateI18nCharacterLimit(t *testing.T) {
	got := NewValidationService().ValidateI18n(map[string]any{
		"name": map[string]any{
			"en": map[string]any{"translation": strings.Repeat("a", 51), "limit": 50.0},
		},
	})

	assert.False(t, got.Valid)
	require.Len(t, got.Errors, 1)
	assert.Equal(t, "name en translation exceeds 50 character limit", got.Errors[0])
	assert.Equal(t, []string{"name"}, got.I18nFields)
}

func TestValidateI18nWarnings(t *testing.T) {
	got := NewValidationService().ValidateI18n(map[string]any{
		"title": map[string]any{
			"en": map[string]any{"translation": "Hello"},
			"fr": map[string]any{"translation": "Bonjour"},
			"de": map[string]any{"translation": ""},
		},
		"price": "100",
		"body": map[string]any{
			"fr": map[string]any{"translation": "Bonjour", "limit": 2.0},
		},
	})

	assert.False(t, got.Valid)
	assert.Equal(t, []string{"body", "title"}, got.I18nFields)
	require.Len(t, got.Errors, 1)
	assert.Contains(t, got.Errors[0], "body i18n validation failed")

	assert.Equal(t, []string{
		"price is not i18n data (single value)",
		"title i18n structure is valid",
		"title missing translations for: de, it, es",
	}, got.Warnings)
}

func TestValidateI18nLimitZeroIgnored(t *testing.T) {
	got := NewValidationService().ValidateI18n(map[string]any{
		"name": map[string]any{
			"en": map[string]any{"translation": "long enough", "limit": 0.0},
			"fr": map[string]any{"translation": "trop long", "limit": 3.0},
		},
	})

	assert.Equal(t, []string{"name fr translation exceeds 3 character limit"}, got.Errors)
}
