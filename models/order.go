package models

// Order, WooCommerce'e gönderilen sipariş payload'ı (POST /wp-json/wc/v3/orders).
type Order struct {
	PaymentMethod      string          `json:"payment_method"`
	PaymentMethodTitle string          `json:"payment_method_title"`
	SetPaid            bool            `json:"set_paid"`
	Billing            BillingAddress  `json:"billing"`
	Shipping           ShippingAddress `json:"shipping"`
	LineItems          []LineItem      `json:"line_items"`
}

// BillingAddress, fatura adresi. Email ve telefon sadece billing'de zorunlu.
type BillingAddress struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address1  string `json:"address_1"`
	Address2  string `json:"address_2"`
	City      string `json:"city"`
	State     string `json:"state"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// ShippingAddress, teslimat adresi.
type ShippingAddress struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address1  string `json:"address_1"`
	Address2  string `json:"address_2"`
	City      string `json:"city"`
	State     string `json:"state"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
}

// LineItem, sipariş satırı.
type LineItem struct {
	ProductID int    `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Name      string `json:"name"`
	Price     string `json:"price"`
}

// RemoteOrder, WooCommerce sipariş yanıtının sade hali.
// Billing/Shipping WooCommerce'ten geldiği gibi aktarılır.
type RemoteOrder struct {
	ID                 int              `json:"id"`
	Number             string           `json:"number"`
	Status             string           `json:"status"`
	Currency           string           `json:"currency"`
	Total              string           `json:"total"`
	Subtotal           string           `json:"subtotal,omitempty"`
	TotalTax           string           `json:"total_tax"`
	ShippingTotal      string           `json:"shipping_total"`
	PaymentMethod      string           `json:"payment_method"`
	PaymentMethodTitle string           `json:"payment_method_title"`
	Billing            map[string]any   `json:"billing"`
	Shipping           map[string]any   `json:"shipping"`
	LineItems          []RemoteLineItem `json:"line_items"`
	Link               string           `json:"link,omitempty"`
	DateCreated        string           `json:"date_created"`
	DateModified       string           `json:"date_modified"`
}

// RemoteLineItem, WooCommerce sipariş satırı.
type RemoteLineItem struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ProductID int    `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
	Subtotal  string `json:"subtotal"`
	Total     string `json:"total"`
}
