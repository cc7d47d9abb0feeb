package entity

// ReceiptHeader holds the shop identity block printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Tagline   string `json:"tagline,omitempty"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name       string  `json:"name"`
	WeightKg   float64 `json:"weight_kg"`
	PricePerKg float64 `json:"price_per_kg"`
	Total      float64 `json:"total"`
}

// Receipt is a value object representing a printable sale receipt. It is not
// a database entity; it is composed from an invoice and the store settings at
// render time.
type Receipt struct {
	Header        ReceiptHeader `json:"header"`
	InvoiceNumber string        `json:"invoice_number"`
	Date          string        `json:"date"`
	Customer      string        `json:"customer"`
	Phone         string        `json:"phone"`
	PaymentMethod string        `json:"payment_method"`
	Items         []ReceiptItem `json:"items"`
	Total         float64       `json:"total"`
	Footer        string        `json:"footer,omitempty"`
}
