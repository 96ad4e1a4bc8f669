package services

import (
	"github.com/akinalp/wpsync/models"
	"github.com/akinalp/wpsync/pkg/document"
)

// TransformService, client dokümanını WordPress/WooCommerce payload'ına dönüştürür.
//
// Çıktı struct'ları doğrudan kurulur; hiçbir alan atlanmaz, eksik kaynak veri
// dokümante edilen default'a düşer. Dönüşüm saf bir fonksiyondur: aynı girdi ve
// dil her zaman aynı çıktıyı üretir.
type TransformService interface {
	ToProduct(doc map[string]any, i18n map[string]*models.I18nData, lang models.LanguageCode) *models.Product
	ToOrder(doc map[string]any, i18n map[string]*models.I18nData, lang models.LanguageCode) *models.Order
	ToPost(doc map[string]any, i18n map[string]*models.I18nData, lang models.LanguageCode) *models.Post
}

type transformService struct{}

// NewTransformService, stateless TransformService döner.
func NewTransformService() TransformService {
	return &transformService{}
}

// addressFields, billing ve shipping objelerinden aynen aktarılan alanlar.
var addressFields = []string{"address_1", "address_2", "city", "state", "postcode", "country", "phone"}

func (s *transformService) ToProduct(doc map[string]any, i18n map[string]*models.I18nData, lang models.LanguageCode) *models.Product {
	p := &models.Product{
		Name:             localized(doc, i18n, lang, "Product", "name", "title"),
		Type:             document.String(doc, "simple", "type"),
		RegularPrice:     document.String(doc, "0", "price", "regular_price"),
		Description:      localized(doc, i18n, lang, "", "description", "content"),
		ShortDescription: localized(doc, i18n, lang, "", "short_description", "summary"),
		Categories:       []models.ProductCategory{},
		Images:           []models.ProductImage{},
		Attributes:       []models.ProductAttribute{},
		StockQuantity:    document.Int(doc, 0, "stock_quantity", "stock"),
		Weight:           document.String(doc, "0", "weight"),
	}

	for _, c := range objectList(doc, "categories") {
		p.Categories = append(p.Categories, models.ProductCategory{
			ID:   document.Int(c, 0, "id"),
			Name: document.String(c, "", "name"),
		})
	}

	for _, img := range objectList(doc, "images") {
		p.Images = append(p.Images, models.ProductImage{
			Src:  document.String(img, "", "url", "src"),
			Name: document.String(img, "", "name", "alt"),
		})
	}

	for _, a := range objectList(doc, "attributes") {
		p.Attributes = append(p.Attributes, models.ProductAttribute{
			Name:      document.String(a, "", "name"),
			Visible:   document.Bool(a, true, "visible"),
			Variation: document.Bool(a, false, "variation"),
			Options:   scalarStrings(document.List(a, "options")),
		})
	}

	return p
}

func (s *transformService) ToOrder(doc map[string]any, i18n map[string]*models.I18nData, lang models.LanguageCode) *models.Order {
	o := &models.Order{
		PaymentMethod:      document.String(doc, "bacs", "payment_method"),
		PaymentMethodTitle: localized(doc, i18n, lang, "Bank transfer", "payment_method_title"),
		SetPaid:            document.Bool(doc, false, "set_paid"),
		Billing: models.BillingAddress{
			FirstName: document.String(doc, "", "billing.first_name", "customer.first_name"),
			LastName:  document.String(doc, "", "billing.last_name", "customer.last_name"),
			Email:     document.String(doc, "", "billing.email", "customer.email"),
		},
		Shipping: models.ShippingAddress{
			FirstName: document.String(doc, "", "shipping.first_name"),
			LastName:  document.String(doc, "", "shipping.last_name"),
		},
		LineItems: []models.LineItem{},
	}

	billing := addressValues(doc, "billing")
	o.Billing.Address1 = billing["address_1"]
	o.Billing.Address2 = billing["address_2"]
	o.Billing.City = billing["city"]
	o.Billing.State = billing["state"]
	o.Billing.Postcode = billing["postcode"]
	o.Billing.Country = billing["country"]
	o.Billing.Phone = billing["phone"]

	shipping := addressValues(doc, "shipping")
	o.Shipping.Address1 = shipping["address_1"]
	o.Shipping.Address2 = shipping["address_2"]
	o.Shipping.City = shipping["city"]
	o.Shipping.State = shipping["state"]
	o.Shipping.Postcode = shipping["postcode"]
	o.Shipping.Country = shipping["country"]
	o.Shipping.Phone = shipping["phone"]

	for _, item := range objectList(doc, "items", "line_items") {
		o.LineItems = append(o.LineItems, models.LineItem{
			ProductID: document.Int(item, 0, "product_id", "id"),
			Quantity:  document.Int(item, 1, "quantity"),
			Name:      document.String(item, "", "name"),
			Price:     document.String(item, "0", "price"),
		})
	}

	return o
}

func (s *transformService) ToPost(doc map[string]any, i18n map[string]*models.I18nData, lang models.LanguageCode) *models.Post {
	p := &models.Post{
		Title:         localized(doc, i18n, lang, "Post", "title", "name"),
		Content:       localized(doc, i18n, lang, "", "content", "description"),
		Excerpt:       localized(doc, i18n, lang, "", "excerpt", "summary", "short_description"),
		Status:        document.String(doc, "publish", "status"),
		Categories:    idList(document.List(doc, "categories")),
		Tags:          idList(document.List(doc, "tags")),
		FeaturedMedia: document.Int(doc, 0, "featured_media", "image_id"),
		Meta:          map[string]string{},
	}

	for k, v := range document.Object(doc, "meta") {
		p.Meta[k] = document.Display(v)
	}

	return p
}

// ─── Helpers ───

// localized, i18n-aware alias chain. Her aday alan için önce çıkarılmış çok dilli
// değer, yoksa dokümandaki scalar değer denenir; ilk eşleşme kazanır.
func localized(doc map[string]any, i18n map[string]*models.I18nData, lang models.LanguageCode, def string, fields ...string) string {
	for _, field := range fields {
		if data, ok := i18n[field]; ok && data != nil {
			return data.Resolve(lang)
		}
		if v, ok := document.Lookup(doc, field); ok {
			if s, ok := document.ToString(v); ok {
				return s
			}
		}
	}
	return def
}

// objectList, ilk bulunan listenin obje elemanlarını döner; diğer elemanlar atlanır.
func objectList(doc map[string]any, paths ...string) []map[string]any {
	list := document.List(doc, paths...)
	out := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if obj, ok := item.(map[string]any); ok {
			out = append(out, obj)
		}
	}
	return out
}

// idList, WordPress kategori/etiket listesini düz ID listesine çevirir.
// Obje elemanlarında "id" alanı, sayı elemanlarda değerin kendisi kullanılır.
func idList(list []any) []int {
	out := make([]int, 0, len(list))
	for _, item := range list {
		switch v := item.(type) {
		case map[string]any:
			out = append(out, document.Int(v, 0, "id"))
		default:
			if document.IsNumber(v) {
				n, _ := document.ToInt(v)
				out = append(out, n)
			}
		}
	}
	return out
}

// scalarStrings, listedeki scalar değerleri string'e çevirir.
func scalarStrings(list []any) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if s, ok := document.ToString(v); ok {
			out = append(out, s)
		}
	}
	return out
}

// addressValues, nested adres objesindeki alanları okur; eksikler "" olur.
func addressValues(doc map[string]any, key string) map[string]string {
	obj := document.Object(doc, key)
	out := make(map[string]string, len(addressFields))
	for _, f := range addressFields {
		out[f] = document.String(obj, "", f)
	}
	return out
}
