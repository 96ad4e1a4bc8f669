// Package i18n, API yanıt mesajlarının çoklu dil desteğini sağlar.
//
// İçerik dili (ürün adı hangi dilde yazılacak) ile mesaj dili ayrıdır:
// içerik dili istek gövdesindeki "language" alanından gelir, mesaj dili
// Accept-Language header'ından belirlenir.
//
// Kullanım:
//
//	localizer := i18n.NewLocalizer(i18n.DetectLanguage(r.Header.Get("Accept-Language")))
//	msg := localizer.TWithParams("product.created", map[string]string{"lang": "fr"})
//	// → "Produit WooCommerce créé avec succès en fr"
package i18n

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// SupportedLanguages, desteklenen mesaj dilleri. İlk eleman varsayılandır.
var SupportedLanguages = []string{"en", "fr", "de", "it", "es"}

// DefaultLanguage, varsayılan mesaj dili.
const DefaultLanguage = "en"

// matcher, Accept-Language eşleştirmesi için. Sıra SupportedLanguages ile aynı.
var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.French,
	language.German,
	language.Italian,
	language.Spanish,
})

// catalogFile, locales/*.yaml dosyalarının yapısı.
type catalogFile struct {
	Language string            `yaml:"language"`
	Messages map[string]string `yaml:"messages"`
}

// translations, map[lang]map[key]value. Load sonrası sadece okunur.
var (
	translations = map[string]map[string]string{}
	loadMu       sync.RWMutex
	embeddedOnce sync.Once
	embeddedErr  error
)

// Load, fs.FS içindeki tüm .yaml/.yml kataloglarını yükler.
// Aynı dil için birden fazla dosya varsa anahtarlar birleştirilir.
func Load(localesFS fs.FS) error {
	return fs.WalkDir(localesFS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if ext := path.Ext(p); ext != ".yaml" && ext != ".yml" {
			return nil
		}

		data, err := fs.ReadFile(localesFS, p)
		if err != nil {
			return fmt.Errorf("failed to read translation file %s: %w", p, err)
		}

		var cf catalogFile
		if err := yaml.Unmarshal(data, &cf); err != nil {
			return fmt.Errorf("failed to parse translation file %s: %w", p, err)
		}
		if cf.Language == "" {
			return fmt.Errorf("translation file %s missing 'language' field", p)
		}

		register(cf.Language, cf.Messages)
		logrus.WithField("component", "i18n").Debugf("loaded %d keys for language: %s", len(cf.Messages), cf.Language)
		return nil
	})
}

// LoadEmbedded, binary'ye gömülü katalogları bir kere yükler.
func LoadEmbedded() error {
	embeddedOnce.Do(func() {
		sub, err := fs.Sub(EmbeddedLocales, "locales")
		if err != nil {
			embeddedErr = err
			return
		}
		embeddedErr = Load(sub)
	})
	return embeddedErr
}

func register(lang string, msgs map[string]string) {
	loadMu.Lock()
	defer loadMu.Unlock()

	if _, ok := translations[lang]; !ok {
		translations[lang] = make(map[string]string, len(msgs))
	}
	for k, v := range msgs {
		translations[lang][k] = v
	}
}

func lookup(lang, key string) (string, bool) {
	loadMu.RLock()
	defer loadMu.RUnlock()
	msg, ok := translations[lang][key]
	return msg, ok
}

// Localizer, belirli bir dil için çeviri yapar.
type Localizer struct {
	lang string
}

// NewLocalizer, desteklenmeyen dil verilirse varsayılana düşer.
func NewLocalizer(lang string) *Localizer {
	if !isSupported(lang) {
		lang = DefaultLanguage
	}
	return &Localizer{lang: lang}
}

// Lang, localizer'ın dilini döner.
func (l *Localizer) Lang() string {
	return l.lang
}

// T, anahtarın çevirisini döner. Dilde yoksa İngilizce'ye, orada da yoksa
// anahtarın kendisine düşer.
func (l *Localizer) T(key string) string {
	if msg, ok := lookup(l.lang, key); ok {
		return msg
	}
	if msg, ok := lookup(DefaultLanguage, key); ok {
		return msg
	}
	return key
}

// TWithParams, {{param}} yer tutucularını değerlerle değiştirir.
func (l *Localizer) TWithParams(key string, params map[string]string) string {
	msg := l.T(key)
	for k, v := range params {
		msg = strings.ReplaceAll(msg, "{{"+k+"}}", v)
	}
	return msg
}

// DetectLanguage, Accept-Language header'ından en uygun dili belirler.
// Header formatı: "fr-CH,fr;q=0.9,en;q=0.8". Eşleşme yoksa varsayılan dil.
func DetectLanguage(acceptLanguage string) string {
	if strings.TrimSpace(acceptLanguage) == "" {
		return DefaultLanguage
	}

	tag, _ := language.MatchStrings(matcher, acceptLanguage)
	base, _ := tag.Base()
	if lang := base.String(); isSupported(lang) {
		return lang
	}
	return DefaultLanguage
}

func isSupported(lang string) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}
