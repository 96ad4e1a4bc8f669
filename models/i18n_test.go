package models

import (
	"errors"
	"testing"

	"github.com/akinalp/wpsync/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	data, err := NewI18nData(map[string]any{
		"en": map[string]any{"translation": "Luxury SUV"},
		"fr": map[string]any{"translation": "SUV de luxe"},
		"de": map[string]any{"translation": ""},
	})
	require.NoError(t, err)

	assert.Equal(t, "Luxury SUV", data.Resolve(LangEN))
	assert.Equal(t, "SUV de luxe", data.Resolve(LangFR))
	// Boş çeviri ve eksik dil base'e düşer
	assert.Equal(t, "Luxury SUV", data.Resolve(LangDE))
	assert.Equal(t, "Luxury SUV", data.Resolve(LangIT))
}

func TestNewI18nDataRequiresEnglish(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
	}{
		{"missing en", map[string]any{"fr": map[string]any{"translation": "Bonjour"}}},
		{"empty en", map[string]any{"en": map[string]any{"translation": ""}}},
		{"null en", map[string]any{"en": nil, "fr": map[string]any{"translation": "Bonjour"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewI18nData(tt.raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, pkg.ErrStructuralInput))
			assert.Contains(t, err.Error(), "English translation is required")
		})
	}
}

func TestNewI18nDataEntryShape(t *testing.T) {
	tests := []struct {
		name  string
		entry any
	}{
		{"entry not object", "Hello"},
		{"translation not string", map[string]any{"translation": 5.0}},
		{"notes not string", map[string]any{"translation": "Hi", "notes": true}},
		{"fractional limit", map[string]any{"translation": "Hi", "limit": 2.5}},
		{"negative limit", map[string]any{"translation": "Hi", "limit": -1.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewI18nData(map[string]any{"en": tt.entry})
			assert.True(t, errors.Is(err, pkg.ErrStructuralInput))
		})
	}
}

func TestTranslationMetadata(t *testing.T) {
	data, err := NewI18nData(map[string]any{
		"en": map[string]any{
			"translation": "BMW X5",
			"notes":       "Product name",
			"context":     "catalog",
			"limit":       50.0,
		},
	})
	require.NoError(t, err)

	require.NotNil(t, data.EN.Limit)
	assert.Equal(t, 50, *data.EN.Limit)
	assert.Equal(t, "Product name", *data.EN.Notes)
	assert.Equal(t, "catalog", *data.EN.Context)
	assert.False(t, data.EN.ExceedsLimit())
	assert.Equal(t, []LanguageCode{LangFR, LangDE, LangIT, LangES}, data.MissingLanguages())
}

func TestExceedsLimitCountsRunes(t *testing.T) {
	limit := 5
	assert.False(t, (&Translation{Text: "ééééé", Limit: &limit}).ExceedsLimit())
	assert.True(t, (&Translation{Text: "éééééé", Limit: &limit}).ExceedsLimit())

	zero := 0
	assert.False(t, (&Translation{Text: "anything", Limit: &zero}).ExceedsLimit())
}

func TestIsI18nObject(t *testing.T) {
	_, ok := IsI18nObject(map[string]any{"fr": map[string]any{}})
	assert.True(t, ok)

	_, ok = IsI18nObject(map[string]any{"street": "x"})
	assert.False(t, ok)

	_, ok = IsI18nObject("en")
	assert.False(t, ok)
}

func TestParseLanguageCode(t *testing.T) {
	tests := []struct {
		in      string
		want    LanguageCode
		wantErr bool
	}{
		{"", LangEN, false},
		{"fr", LangFR, false},
		{"fr-CH", LangFR, false},
		{"DE", LangDE, false},
		{"es-419", LangES, false},
		{"pt", "", true},
		{"not a code", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLanguageCode(tt.in)
			if tt.wantErr {
				assert.True(t, errors.Is(err, pkg.ErrBadRequest))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPaginationValidate(t *testing.T) {
	p := DefaultPagination()
	assert.NoError(t, p.Validate())

	assert.Error(t, (&Pagination{Page: 0, PerPage: 10}).Validate())
	assert.Error(t, (&Pagination{Page: 1, PerPage: 0}).Validate())
	assert.Error(t, (&Pagination{Page: 1, PerPage: 101}).Validate())
	assert.NoError(t, (&Pagination{Page: 3, PerPage: 100}).Validate())
}

func TestParseSyncType(t *testing.T) {
	got, ok := ParseSyncType("wc_product")
	assert.True(t, ok)
	assert.Equal(t, SyncCreateProduct, got)

	got, ok = ParseSyncType("WP_POST")
	assert.True(t, ok)
	assert.Equal(t, SyncCreatePost, got)

	_, ok = ParseSyncType("delete_product")
	assert.False(t, ok)
}
