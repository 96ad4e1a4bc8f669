// Package pkg, projede paylaşılan utility'leri barındırır.
// Bu dosya domain-level error tanımlarını içerir.
//
// Error karşılaştırması string yerine referans ile yapılır:
//
//	if errors.Is(err, pkg.ErrStructuralInput) { ... }
package pkg

import "errors"

// Domain-level error'lar.
// Handler katmanı bu error'ları HTTP status code'larına map'ler.
// Service katmanı bunları wrap ederek döner: fmt.Errorf("%w: ...", pkg.ErrBadRequest)
var (
	ErrNotFound        = errors.New("not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrBadRequest      = errors.New("bad request")
	ErrTooManyRequests = errors.New("too many requests")
	ErrInternal        = errors.New("internal error")

	// ErrStructuralInput, çok dilli bir alan kurulamadığında döner
	// (İngilizce çeviri eksik/boş, dil girdisi obje değil vb.).
	// Client hatasıdır, 400 olarak raporlanır.
	ErrStructuralInput = errors.New("invalid i18n structure")

	// ErrRemote, WordPress/WooCommerce tarafından dönen hataları işaretler.
	// Detaylı status code için wpapi.Error'a errors.As ile erişilir.
	ErrRemote = errors.New("remote api error")
)

// StatusCoder, kendi HTTP status code'unu taşıyan error'lar için interface.
// wpapi.Error bunu implement eder; pkg paketi wpapi'yi import etmeden
// upstream status'u response'a yansıtabilir.
type StatusCoder interface {
	HTTPStatus() int
}
