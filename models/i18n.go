package models

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/akinalp/wpsync/pkg"
	"github.com/akinalp/wpsync/pkg/document"
	"golang.org/x/text/language"
)

// LanguageCode, desteklenen içerik dillerini temsil eder.
// Go'da enum yerine typed constant kullanılır: kapalı bir küme.
type LanguageCode string

const (
	LangEN LanguageCode = "en"
	LangFR LanguageCode = "fr"
	LangDE LanguageCode = "de"
	LangIT LanguageCode = "it"
	LangES LanguageCode = "es"
)

// BaseLanguage, her çok dilli değerde zorunlu olan ve fallback olarak kullanılan dil.
const BaseLanguage = LangEN

// SupportedLanguages, sabit sıralı dil listesi. Base dil her zaman ilk sırada.
var SupportedLanguages = []LanguageCode{LangEN, LangFR, LangDE, LangIT, LangES}

// IsSupported, kodun desteklenen kümede olup olmadığını döner.
func (c LanguageCode) IsSupported() bool {
	switch c {
	case LangEN, LangFR, LangDE, LangIT, LangES:
		return true
	}
	return false
}

// ParseLanguageCode, client'tan gelen dil değerini LanguageCode'a çevirir.
// Boş değer → base dil. BCP 47 region/script alt etiketleri atılır: "fr-CH" → fr.
func ParseLanguageCode(s string) (LanguageCode, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return BaseLanguage, nil
	}

	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: invalid language code %q", pkg.ErrBadRequest, s)
	}

	base, _ := tag.Base()
	code := LanguageCode(base.String())
	if !code.IsSupported() {
		return "", fmt.Errorf("%w: unsupported language %q (supported: en, fr, de, it, es)", pkg.ErrBadRequest, s)
	}
	return code, nil
}

// Translation, tek bir dildeki metin ve opsiyonel metadata.
// JSON alan adları client sözleşmesidir: translation, notes, context, limit.
type Translation struct {
	Text    string  `json:"translation"`
	Notes   *string `json:"notes,omitempty"`
	Context *string `json:"context,omitempty"`
	Limit   *int    `json:"limit,omitempty"` // Karakter limiti (rune sayısı)
}

// ExceedsLimit, metin tanımlı karakter limitini aşıyorsa true döner.
// Limit tanımsız veya 0 ise kontrol yapılmaz.
func (t *Translation) ExceedsLimit() bool {
	if t == nil || t.Limit == nil || *t.Limit <= 0 {
		return false
	}
	return utf8.RuneCountInString(t.Text) > *t.Limit
}

// I18nData, bir alanın dil bazlı çevirilerini tutar.
// EN zorunludur (değer olarak tutulur), diğer diller opsiyoneldir (pointer, nil = yok).
// Dil → alan erişimi Get() içindeki switch ile yapılır.
type I18nData struct {
	EN Translation  `json:"en"`
	FR *Translation `json:"fr,omitempty"`
	DE *Translation `json:"de,omitempty"`
	IT *Translation `json:"it,omitempty"`
	ES *Translation `json:"es,omitempty"`
}

// Get, istenen dilin çevirisini döner; yoksa nil.
func (d *I18nData) Get(code LanguageCode) *Translation {
	switch code {
	case LangEN:
		return &d.EN
	case LangFR:
		return d.FR
	case LangDE:
		return d.DE
	case LangIT:
		return d.IT
	case LangES:
		return d.ES
	}
	return nil
}

// Resolve, hedef dil için gösterilecek metni döner.
// İstenen dil yoksa veya metni boşsa İngilizce'ye düşer.
func (d *I18nData) Resolve(code LanguageCode) string {
	if code == BaseLanguage {
		return d.EN.Text
	}
	if t := d.Get(code); t != nil && t.Text != "" {
		return t.Text
	}
	return d.EN.Text
}

// MissingLanguages, base dışındaki eksik veya boş çevirilerin kodlarını döner.
func (d *I18nData) MissingLanguages() []LanguageCode {
	var missing []LanguageCode
	for _, code := range SupportedLanguages[1:] {
		if t := d.Get(code); t == nil || t.Text == "" {
			missing = append(missing, code)
		}
	}
	return missing
}

// set, Get'in yazma karşılığı.
func (d *I18nData) set(code LanguageCode, t *Translation) {
	switch code {
	case LangEN:
		d.EN = *t
	case LangFR:
		d.FR = t
	case LangDE:
		d.DE = t
	case LangIT:
		d.IT = t
	case LangES:
		d.ES = t
	}
}

// IsI18nObject, değerin en az bir desteklenen dil kodu anahtarı içeren obje olup
// olmadığını kontrol eder. Öyleyse objeyi döner.
func IsI18nObject(v any) (map[string]any, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	for _, code := range SupportedLanguages {
		if _, exists := obj[string(code)]; exists {
			return obj, true
		}
	}
	return nil, false
}

// NewI18nData, decode edilmiş bir JSON objesinden I18nData oluşturur.
//
// Kurallar:
//   - Her dil girdisi obje olmalı ve string "translation" alanı taşımalı
//   - null dil girdisi "yok" sayılır
//   - "en" zorunludur ve metni boş olamaz
//
// İlk hatada durur; hata pkg.ErrStructuralInput'u wrap eder.
func NewI18nData(raw map[string]any) (*I18nData, error) {
	d := &I18nData{}
	hasBase := false

	for _, code := range SupportedLanguages {
		entry, exists := raw[string(code)]
		if !exists || entry == nil {
			continue
		}

		t, err := parseTranslation(code, entry)
		if err != nil {
			return nil, err
		}
		d.set(code, t)
		if code == BaseLanguage {
			hasBase = true
		}
	}

	if !hasBase || d.EN.Text == "" {
		return nil, fmt.Errorf("%w: English translation is required", pkg.ErrStructuralInput)
	}
	return d, nil
}

// NewSingleLanguage, düz bir string'i sadece İngilizce içeren I18nData'ya yükseltir.
func NewSingleLanguage(text, notes string) (*I18nData, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: English translation is required", pkg.ErrStructuralInput)
	}
	return &I18nData{EN: Translation{Text: text, Notes: &notes}}, nil
}

func parseTranslation(code LanguageCode, entry any) (*Translation, error) {
	obj, ok := entry.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be an object with a translation field", pkg.ErrStructuralInput, code)
	}

	text, ok := obj["translation"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: %s.translation is required and must be a string", pkg.ErrStructuralInput, code)
	}
	t := &Translation{Text: text}

	for _, field := range []string{"notes", "context"} {
		v, exists := obj[field]
		if !exists || v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s must be a string", pkg.ErrStructuralInput, code, field)
		}
		if field == "notes" {
			t.Notes = &s
		} else {
			t.Context = &s
		}
	}

	if v, exists := obj["limit"]; exists && v != nil {
		limit, _ := document.ToInt(v)
		if !document.IsInteger(v) || limit < 0 {
			return nil, fmt.Errorf("%w: %s.limit must be a non-negative integer", pkg.ErrStructuralInput, code)
		}
		t.Limit = &limit
	}

	return t, nil
}
