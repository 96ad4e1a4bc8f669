package handlers

import (
	"net/http"
	"strings"

	"github.com/akinalp/wpsync/models"
	"github.com/akinalp/wpsync/pkg"
	"github.com/akinalp/wpsync/services"
)

// SyncHandler, birleşik /api/sync endpoint'ini yönetir.
// Tek endpoint üzerinden type alanına göre create/validate işlemleri yapılır.
type SyncHandler struct {
	syncService services.SyncService
}

// NewSyncHandler, constructor.
func NewSyncHandler(syncService services.SyncService) *SyncHandler {
	return &SyncHandler{syncService: syncService}
}

// Sync godoc
// POST /api/sync
// Body: {type, data, language, fallback_language}
//
// Create type'ları uzak API'nin normalize yanıtını 201 ile döner.
// Validate type'ları bulguları 200 ile döner; success alanı valid sonucunu taşır.
func (h *SyncHandler) Sync(w http.ResponseWriter, r *http.Request) {
	loc := localizer(r)

	var req models.SyncRequest
	if err := decodeBody(r, &req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, loc.T("sync.invalidBody"), err.Error())
		return
	}

	syncType, ok := models.ParseSyncType(req.Type)
	if !ok {
		supported := strings.Join(models.SupportedSyncTypes, ", ")
		pkg.ErrorWithMessage(w, http.StatusBadRequest,
			loc.TWithParams("sync.unsupportedType", map[string]string{"type": req.Type, "supported": supported}),
			"supported types: "+supported)
		return
	}

	result, err := h.syncService.Dispatch(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	lang := map[string]string{"lang": string(result.Language)}

	switch syncType {
	case models.SyncCreateProduct:
		pkg.JSONWithMessage(w, http.StatusCreated, result, loc.TWithParams("product.created", lang))
	case models.SyncCreateOrder:
		pkg.JSONWithMessage(w, http.StatusCreated, result, loc.TWithParams("order.created", lang))
	case models.SyncCreatePost:
		pkg.JSONWithMessage(w, http.StatusCreated, result, loc.TWithParams("post.created", lang))
	case models.SyncValidateProduct:
		writeValidation(w, loc.TWithParams(validationKey("validation.product", result.Validation), countParams(result.Validation)), result.Validation)
	case models.SyncValidateI18n:
		writeValidation(w, loc.TWithParams(validationKey("validation.i18n", result.Validation), countParams(result.Validation)), result.Validation)
	}
}

// List godoc
// GET /api/sync?type=wc_products|wc_orders|wp_posts&page=1&per_page=10
func (h *SyncHandler) List(w http.ResponseWriter, r *http.Request) {
	loc := localizer(r)

	raw := r.URL.Query().Get("type")
	listType, ok := models.ParseListType(raw)
	if !ok {
		supported := strings.Join(models.SupportedListTypes, ", ")
		pkg.ErrorWithMessage(w, http.StatusBadRequest,
			loc.TWithParams("sync.unsupportedType", map[string]string{"type": raw, "supported": supported}),
			"supported types: "+supported)
		return
	}

	p, err := parsePagination(r)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	page, err := h.syncService.List(r.Context(), listType, p)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	var key string
	switch listType {
	case models.ListProducts:
		key = "products.fetched"
	case models.ListOrders:
		key = "orders.fetched"
	default:
		key = "posts.fetched"
	}
	pkg.JSONWithMessage(w, http.StatusOK, page, loc.T(key))
}

// validationKey, valid sonucuna göre "...Passed" / "...Failed" mesaj anahtarını seçer.
func validationKey(prefix string, v *models.ValidationResult) string {
	if v.Valid {
		return prefix + "Passed"
	}
	return prefix + "Failed"
}

func writeValidation(w http.ResponseWriter, message string, v *models.ValidationResult) {
	pkg.Result(w, http.StatusOK, v.Valid, v, message, v.Errors)
}
