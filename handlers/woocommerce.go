package handlers

import (
	"net/http"

	"github.com/akinalp/wpsync/pkg"
	"github.com/akinalp/wpsync/services"
)

// WooCommerceHandler, /api/wc/* resource endpoint'lerini yönetir.
type WooCommerceHandler struct {
	syncService services.SyncService
}

// NewWooCommerceHandler, constructor.
func NewWooCommerceHandler(syncService services.SyncService) *WooCommerceHandler {
	return &WooCommerceHandler{syncService: syncService}
}

// ListProducts godoc
// GET /api/wc/products?page=1&per_page=10
func (h *WooCommerceHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	p, err := parsePagination(r)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	page, err := h.syncService.ListProducts(r.Context(), p)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSONWithMessage(w, http.StatusOK, page, localizer(r).T("products.fetched"))
}

// CreateProduct godoc
// POST /api/wc/products
// Body: {data, language, fallback_language}
func (h *WooCommerceHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	loc := localizer(r)

	req, ok := parseResourceRequest(w, r)
	if !ok {
		return
	}

	lang, err := parseContentLanguage(req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	product, err := h.syncService.CreateProduct(r.Context(), req.Data, lang)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSONWithMessage(w, http.StatusCreated, product,
		loc.TWithParams("product.created", map[string]string{"lang": string(lang)}))
}

// ListOrders godoc
// GET /api/wc/orders?page=1&per_page=10
func (h *WooCommerceHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	p, err := parsePagination(r)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	page, err := h.syncService.ListOrders(r.Context(), p)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSONWithMessage(w, http.StatusOK, page, localizer(r).T("orders.fetched"))
}

// CreateOrder godoc
// POST /api/wc/orders
func (h *WooCommerceHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	loc := localizer(r)

	req, ok := parseResourceRequest(w, r)
	if !ok {
		return
	}

	lang, err := parseContentLanguage(req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	order, err := h.syncService.CreateOrder(r.Context(), req.Data, lang)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSONWithMessage(w, http.StatusCreated, order,
		loc.TWithParams("order.created", map[string]string{"lang": string(lang)}))
}
