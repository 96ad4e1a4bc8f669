package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedAllLanguages(t *testing.T) {
	require.NoError(t, LoadEmbedded())

	for _, lang := range SupportedLanguages {
		l := NewLocalizer(lang)
		msg := l.T("product.created")
		assert.NotEqual(t, "product.created", msg, "missing key for %s", lang)
		assert.Contains(t, msg, "{{lang}}")
	}
}

func TestLocalizerFallback(t *testing.T) {
	require.NoError(t, Load(fstest.MapFS{
		"x.yaml": {Data: []byte("language: en\nmessages:\n  test.onlyEnglish: \"english only\"\n")},
	}))

	assert.Equal(t, "english only", NewLocalizer("de").T("test.onlyEnglish"))
	assert.Equal(t, "test.unknownKey", NewLocalizer("de").T("test.unknownKey"))
	assert.Equal(t, "en", NewLocalizer("pt").Lang())
}

func TestTWithParams(t *testing.T) {
	require.NoError(t, LoadEmbedded())

	msg := NewLocalizer("en").TWithParams("product.created", map[string]string{"lang": "fr"})
	assert.Equal(t, "WooCommerce product created successfully in fr", msg)
}

func TestLoadRejectsMissingLanguage(t *testing.T) {
	err := Load(fstest.MapFS{
		"bad.yaml": {Data: []byte("messages:\n  a: b\n")},
	})
	assert.Error(t, err)
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"", "en"},
		{"fr-CH,fr;q=0.9,en;q=0.8", "fr"},
		{"de-DE", "de"},
		{"ja,it;q=0.5", "it"},
		{"ja", "en"},
		{"es-419", "es"},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLanguage(tt.header))
		})
	}
}
