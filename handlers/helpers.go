// Package handlers, HTTP endpoint'lerini barındırır.
//
// Thin handler pattern: handler sadece request parse + response yazımı yapar.
// İş mantığı services paketindedir.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/akinalp/wpsync/models"
	"github.com/akinalp/wpsync/pkg"
	"github.com/akinalp/wpsync/pkg/i18n"
	"github.com/zitadel/schema"
)

// maxBodySize, create/validate body'leri için üst sınır (4MB).
const maxBodySize = 4 << 20

// resourceRequest, resource bazlı create endpoint'lerinin body'si.
// type alanı yoktur; endpoint zaten işlemi belirler.
type resourceRequest struct {
	Data             map[string]any `json:"data"`
	Language         string         `json:"language"`
	FallbackLanguage string         `json:"fallback_language"`
}

// localizer, response mesajlarının dilini Accept-Language header'ından seçer.
// İçerik dili (body.language) bundan bağımsızdır.
func localizer(r *http.Request) *i18n.Localizer {
	return i18n.NewLocalizer(i18n.DetectLanguage(r.Header.Get("Accept-Language")))
}

// decodeBody, JSON body'yi dst'ye parse eder. Boş body hata sayılır.
func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty request body", pkg.ErrBadRequest)
		}
		return fmt.Errorf("%w: %v", pkg.ErrBadRequest, err)
	}
	return nil
}

// parsePagination, ?page=&per_page= query'sini okur.
// Eksik parametreler default kalır; aralık kontrolü service katmanında yapılır.
func parsePagination(r *http.Request) (models.Pagination, error) {
	p := models.DefaultPagination()

	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	if err := d.Decode(&p, r.URL.Query()); err != nil {
		return p, fmt.Errorf("%w: invalid pagination: %v", pkg.ErrBadRequest, err)
	}
	return p, nil
}

// parseResourceRequest, resource create body'sini okur.
// Hata durumunda yanıtı kendisi yazar ve false döner.
func parseResourceRequest(w http.ResponseWriter, r *http.Request) (*resourceRequest, bool) {
	loc := localizer(r)

	var req resourceRequest
	if err := decodeBody(r, &req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, loc.T("sync.invalidBody"), err.Error())
		return nil, false
	}
	if req.Data == nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, loc.T("sync.dataRequired"))
		return nil, false
	}
	return &req, true
}

// parseContentLanguage, içerik dilini çözer. fallback_language sadece doğrulanır.
func parseContentLanguage(req *resourceRequest) (models.LanguageCode, error) {
	lang, err := models.ParseLanguageCode(req.Language)
	if err != nil {
		return "", err
	}
	if _, err := models.ParseLanguageCode(req.FallbackLanguage); err != nil {
		return "", err
	}
	return lang, nil
}

func countParams(v *models.ValidationResult) map[string]string {
	return map[string]string{
		"errors":   strconv.Itoa(len(v.Errors)),
		"warnings": strconv.Itoa(len(v.Warnings)),
	}
}
