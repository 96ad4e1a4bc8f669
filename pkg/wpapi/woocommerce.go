package wpapi

import (
	"context"

	"github.com/akinalp/wpsync/config"
	"github.com/akinalp/wpsync/models"
	"github.com/akinalp/wpsync/pkg/document"
)

// CommerceAPI, WooCommerce REST API (wc/v3) işlemleri.
type CommerceAPI interface {
	CreateProduct(ctx context.Context, product *models.Product) (*models.RemoteProduct, error)
	ListProducts(ctx context.Context, p models.Pagination) (*models.PaginatedResponse[models.RemoteProduct], error)
	CreateOrder(ctx context.Context, order *models.Order) (*models.RemoteOrder, error)
	ListOrders(ctx context.Context, p models.Pagination) (*models.PaginatedResponse[models.RemoteOrder], error)
}

type wooCommerce struct {
	client *Client
}

// NewWooCommerce, consumer key/secret ile basic auth yapan CommerceAPI oluşturur.
func NewWooCommerce(cfg config.RemoteConfig) CommerceAPI {
	auth := Auth{
		Username: cfg.WCConsumerKey,
		Password: cfg.WCConsumerSecret,
	}
	return &wooCommerce{client: NewClient("WooCommerce", cfg.BaseURL, "wc/v3", auth, cfg.Timeout)}
}

func (w *wooCommerce) CreateProduct(ctx context.Context, product *models.Product) (*models.RemoteProduct, error) {
	resp, err := w.client.Do(ctx, "POST", "products", nil, product)
	if err != nil {
		return nil, err
	}
	obj, _ := resp.Body.(map[string]any)
	result := normalizeProduct(obj)
	return &result, nil
}

func (w *wooCommerce) ListProducts(ctx context.Context, p models.Pagination) (*models.PaginatedResponse[models.RemoteProduct], error) {
	resp, err := w.client.Do(ctx, "GET", "products", pageQuery(p.Page, p.PerPage), nil)
	if err != nil {
		return nil, err
	}

	total, pages := w.client.Count(ctx, "products", p.PerPage)

	raw := objects(resp.Body)
	items := make([]models.RemoteProduct, 0, len(raw))
	for _, obj := range raw {
		items = append(items, normalizeProduct(obj))
	}
	return models.NewPaginatedResponse(items, p, total, pages), nil
}

func (w *wooCommerce) CreateOrder(ctx context.Context, order *models.Order) (*models.RemoteOrder, error) {
	resp, err := w.client.Do(ctx, "POST", "orders", nil, order)
	if err != nil {
		return nil, err
	}
	obj, _ := resp.Body.(map[string]any)
	result := normalizeOrder(obj)
	return &result, nil
}

func (w *wooCommerce) ListOrders(ctx context.Context, p models.Pagination) (*models.PaginatedResponse[models.RemoteOrder], error) {
	resp, err := w.client.Do(ctx, "GET", "orders", pageQuery(p.Page, p.PerPage), nil)
	if err != nil {
		return nil, err
	}

	total, pages := w.client.Count(ctx, "orders", p.PerPage)

	raw := objects(resp.Body)
	items := make([]models.RemoteOrder, 0, len(raw))
	for _, obj := range raw {
		items = append(items, normalizeOrder(obj))
	}
	return models.NewPaginatedResponse(items, p, total, pages), nil
}

// ─── Normalization ───

func normalizeProduct(obj map[string]any) models.RemoteProduct {
	p := models.RemoteProduct{
		ID:               document.Int(obj, 0, "id"),
		Name:             document.String(obj, "", "name"),
		Type:             document.String(obj, "", "type"),
		Status:           document.String(obj, "", "status"),
		Price:            document.String(obj, "", "price"),
		RegularPrice:     document.String(obj, "", "regular_price"),
		SalePrice:        document.String(obj, "", "sale_price"),
		Description:      document.String(obj, "", "description"),
		ShortDescription: document.String(obj, "", "short_description"),
		Categories:       []models.RemoteProductCategory{},
		Images:           []models.RemoteProductImage{},
		StockStatus:      document.String(obj, "", "stock_status"),
		Weight:           document.String(obj, "", "weight"),
		Dimensions:       document.Object(obj, "dimensions"),
		Link:             document.String(obj, "", "permalink"),
		DateCreated:      document.String(obj, "", "date_created"),
		DateModified:     document.String(obj, "", "date_modified"),
	}

	// stock_quantity, stok yönetimi kapalı ürünlerde null gelir.
	if v, ok := document.Lookup(obj, "stock_quantity"); ok {
		if n, ok := document.ToInt(v); ok {
			p.StockQuantity = &n
		}
	}

	for _, c := range objects(document.List(obj, "categories")) {
		p.Categories = append(p.Categories, models.RemoteProductCategory{
			ID:   document.Int(c, 0, "id"),
			Name: document.String(c, "", "name"),
			Slug: document.String(c, "", "slug"),
		})
	}
	for _, img := range objects(document.List(obj, "images")) {
		p.Images = append(p.Images, models.RemoteProductImage{
			ID:   document.Int(img, 0, "id"),
			Src:  document.String(img, "", "src"),
			Name: document.String(img, "", "name"),
			Alt:  document.String(img, "", "alt"),
		})
	}
	for _, a := range objects(document.List(obj, "attributes")) {
		p.Attributes = append(p.Attributes, models.RemoteAttribute{
			ID:        document.Int(a, 0, "id"),
			Name:      document.String(a, "", "name"),
			Visible:   document.Bool(a, false, "visible"),
			Variation: document.Bool(a, false, "variation"),
			Options:   stringList(document.List(a, "options")),
		})
	}
	return p
}

func normalizeOrder(obj map[string]any) models.RemoteOrder {
	o := models.RemoteOrder{
		ID:                 document.Int(obj, 0, "id"),
		Number:             document.String(obj, "", "number"),
		Status:             document.String(obj, "", "status"),
		Currency:           document.String(obj, "", "currency"),
		Total:              document.String(obj, "", "total"),
		Subtotal:           document.String(obj, "", "subtotal"),
		TotalTax:           document.String(obj, "", "total_tax"),
		ShippingTotal:      document.String(obj, "", "shipping_total"),
		PaymentMethod:      document.String(obj, "", "payment_method"),
		PaymentMethodTitle: document.String(obj, "", "payment_method_title"),
		Billing:            document.Object(obj, "billing"),
		Shipping:           document.Object(obj, "shipping"),
		LineItems:          []models.RemoteLineItem{},
		Link:               document.String(obj, "", "permalink"),
		DateCreated:        document.String(obj, "", "date_created"),
		DateModified:       document.String(obj, "", "date_modified"),
	}

	for _, item := range objects(document.List(obj, "line_items")) {
		o.LineItems = append(o.LineItems, models.RemoteLineItem{
			ID:        document.Int(item, 0, "id"),
			Name:      document.String(item, "", "name"),
			ProductID: document.Int(item, 0, "product_id"),
			Quantity:  document.Int(item, 0, "quantity"),
			Price:     document.String(item, "", "price"),
			Subtotal:  document.String(item, "", "subtotal"),
			Total:     document.String(item, "", "total"),
		})
	}
	return o
}

func stringList(list []any) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if s, ok := document.ToString(v); ok {
			out = append(out, s)
		}
	}
	return out
}
