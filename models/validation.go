package models

import "encoding/json"

// ValidationResult, yapısal doğrulamanın çıktısı.
// Errors boşsa Valid=true; Warnings geçerliliği etkilemez.
// I18nFields sadece validate_i18n sonucunda set edilir; set edildiyse boş liste de yazılır.
type ValidationResult struct {
	Valid         bool           `json:"valid"`
	Errors        []string       `json:"errors"`
	Warnings      []string       `json:"warnings"`
	ValidatedData map[string]any `json:"validated_data,omitempty"`
	I18nFields    []string       `json:"i18n_fields,omitempty"`
}

// MarshalJSON, I18nFields nil değilse i18n_fields anahtarını her zaman yazar.
func (v ValidationResult) MarshalJSON() ([]byte, error) {
	type plain ValidationResult
	if v.I18nFields == nil {
		return json.Marshal(plain(v))
	}
	return json.Marshal(struct {
		plain
		I18nFields []string `json:"i18n_fields"`
	}{plain: plain(v), I18nFields: v.I18nFields})
}

// NewValidationResult, boş (nil olmayan) listelerle başlar; JSON'da [] görünür.
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		Errors:   []string{},
		Warnings: []string{},
	}
}

// AddError, bir hata bulgusu ekler.
func (r *ValidationResult) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
}

// AddWarning, geçerliliği etkilemeyen bir bulgu ekler.
func (r *ValidationResult) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// Finish, Valid flag'ini hesaplar. Tüm kontroller bittikten sonra çağrılır.
func (r *ValidationResult) Finish() *ValidationResult {
	r.Valid = len(r.Errors) == 0
	return r
}
