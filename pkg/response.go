package pkg

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
)

// APIResponse, tüm API yanıtları için standart (normalize edilmiş) format.
// Client her zaman aynı yapıyı bekler: {success, data, message, errors}.
type APIResponse struct {
	Success bool     `json:"success"`
	Data    any      `json:"data"`
	Message *string  `json:"message"`
	Errors  []string `json:"errors"`
}

// JSON, başarılı bir yanıt gönderir.
func JSON(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, APIResponse{
		Success: true,
		Data:    data,
	})
}

// JSONWithMessage, başarılı yanıtı kullanıcıya gösterilecek bir mesajla gönderir.
func JSONWithMessage(w http.ResponseWriter, status int, data any, message string) {
	writeJSON(w, status, APIResponse{
		Success: true,
		Data:    data,
		Message: &message,
	})
}

// Result, success flag'i çağıranın belirlediği yanıtı gönderir.
// Validation endpoint'leri bunu kullanır: bulgular 200 ile döner,
// success=false sadece "geçersiz" anlamına gelir.
func Result(w http.ResponseWriter, status int, success bool, data any, message string, errs []string) {
	writeJSON(w, status, APIResponse{
		Success: success,
		Data:    data,
		Message: &message,
		Errors:  errs,
	})
}

// Error, hata yanıtı gönderir.
// Domain error'ları otomatik olarak uygun HTTP status code'a çevrilir.
// Map'lenmeyen error'lar loglanır ve client'a sadece ErrInternal mesajı gider.
func Error(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)
	if status == http.StatusInternalServerError && !errors.Is(err, ErrInternal) {
		logrus.WithField("component", "http").WithError(err).Error("unhandled error")
		err = ErrInternal
	}

	msg := err.Error()
	writeJSON(w, status, APIResponse{
		Success: false,
		Message: &msg,
		Errors:  []string{msg},
	})
}

// ErrorWithMessage, özel mesajlı hata yanıtı gönderir.
// details verilirse errors listesine eklenir (ör: desteklenen type'lar).
func ErrorWithMessage(w http.ResponseWriter, status int, message string, details ...string) {
	errs := append([]string{message}, details...)
	writeJSON(w, status, APIResponse{
		Success: false,
		Message: &message,
		Errors:  errs,
	})
}

func writeJSON(w http.ResponseWriter, status int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// mapErrorToStatus, domain error'ları HTTP status code'larına eşler.
// errors.Is() wrap edilmiş error'ları da doğru match eder.
func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, ErrStructuralInput), errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrTooManyRequests):
		return http.StatusTooManyRequests
	case errors.Is(err, ErrRemote):
		// Upstream 4xx/5xx aynen yansıtılır; bağlantı hataları 502 olur.
		var sc StatusCoder
		if errors.As(err, &sc) {
			if status := sc.HTTPStatus(); status >= 400 && status < 600 {
				return status
			}
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
