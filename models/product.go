package models

// Product, WooCommerce'e gönderilen ürün payload'ı (POST /wp-json/wc/v3/products).
// Tüm alanlar her zaman serialize edilir; eksik client verisi default değere düşer.
type Product struct {
	Name             string             `json:"name"`
	Type             string             `json:"type"`
	RegularPrice     string             `json:"regular_price"`
	Description      string             `json:"description"`
	ShortDescription string             `json:"short_description"`
	Categories       []ProductCategory  `json:"categories"`
	Images           []ProductImage     `json:"images"`
	Attributes       []ProductAttribute `json:"attributes"`
	StockQuantity    int                `json:"stock_quantity"`
	Weight           string             `json:"weight"`
}

// ProductCategory, ürüne bağlı kategori referansı.
type ProductCategory struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ProductImage, ürün görseli. Src uzak bir URL'dir, WooCommerce indirip media'ya ekler.
type ProductImage struct {
	Src  string `json:"src"`
	Name string `json:"name"`
}

// ProductAttribute, ürün niteliği (ör: Renk → [Siyah, Beyaz]).
type ProductAttribute struct {
	Name      string   `json:"name"`
	Visible   bool     `json:"visible"`
	Variation bool     `json:"variation"`
	Options   []string `json:"options"`
}

// RemoteProduct, WooCommerce yanıtının client'a dönen sade hali.
type RemoteProduct struct {
	ID               int                     `json:"id"`
	Name             string                  `json:"name"`
	Type             string                  `json:"type"`
	Status           string                  `json:"status"`
	Price            string                  `json:"price"`
	RegularPrice     string                  `json:"regular_price"`
	SalePrice        string                  `json:"sale_price"`
	Description      string                  `json:"description"`
	ShortDescription string                  `json:"short_description"`
	Categories       []RemoteProductCategory `json:"categories"`
	Images           []RemoteProductImage    `json:"images"`
	Attributes       []RemoteAttribute       `json:"attributes,omitempty"`
	StockQuantity    *int                    `json:"stock_quantity"`
	StockStatus      string                  `json:"stock_status,omitempty"`
	Weight           string                  `json:"weight,omitempty"`
	Dimensions       map[string]any          `json:"dimensions,omitempty"`
	Link             string                  `json:"link,omitempty"`
	DateCreated      string                  `json:"date_created"`
	DateModified     string                  `json:"date_modified"`
}

// RemoteProductCategory, WooCommerce kategori referansı.
type RemoteProductCategory struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// RemoteProductImage, WooCommerce görsel kaydı.
type RemoteProductImage struct {
	ID   int    `json:"id"`
	Src  string `json:"src"`
	Name string `json:"name"`
	Alt  string `json:"alt"`
}

// RemoteAttribute, WooCommerce nitelik kaydı.
type RemoteAttribute struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Visible   bool     `json:"visible"`
	Variation bool     `json:"variation"`
	Options   []string `json:"options"`
}
