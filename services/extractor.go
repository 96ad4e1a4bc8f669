package services

import (
	"sort"

	"github.com/akinalp/wpsync/models"
)

// ExtractI18n, dokümanın üst seviye alanlarından çok dilli değerleri çıkarır.
//
//   - En az bir dil kodu anahtarı içeren obje → I18nData
//   - Düz string → sadece İngilizce içeren I18nData ("Auto-generated for <key>" notu ile)
//   - Diğer her şey (sayı, liste, dil kodu içermeyen obje, null) → atlanır
//
// Anahtarlar sıralı gezilir; ilk kurulum hatası döner ve map atılır.
// Boş string de hata verir: İngilizce metin boş olamaz.
func ExtractI18n(doc map[string]any) (map[string]*models.I18nData, error) {
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]*models.I18nData)
	for _, key := range keys {
		switch v := doc[key].(type) {
		case string:
			data, err := models.NewSingleLanguage(v, "Auto-generated for "+key)
			if err != nil {
				return nil, err
			}
			out[key] = data

		case map[string]any:
			obj, ok := models.IsI18nObject(v)
			if !ok {
				continue
			}
			data, err := models.NewI18nData(obj)
			if err != nil {
				return nil, err
			}
			out[key] = data
		}
	}
	return out, nil
}
