package request

import "github.com/google/uuid"

// SaleItemRequest is one drafted line item of a sale. The line total is
// carried through to the invoice exactly as submitted.
type SaleItemRequest struct {
	ProductID   uuid.UUID `json:"product_id" binding:"required"`
	ProductName string    `json:"product_name" binding:"required"`
	WeightKg    float64   `json:"weight_kg" binding:"required,gt=0"`
	PricePerKg  float64   `json:"price_per_kg" binding:"required,gt=0"`
	TotalPrice  float64   `json:"total_price" binding:"required,gt=0"`
}

// CompleteSaleRequest represents a sale completion request
type CompleteSaleRequest struct {
	CustomerName  *string           `json:"customer_name"`
	CustomerPhone *string           `json:"customer_phone"`
	PaymentMethod string            `json:"payment_method" binding:"required,oneof=cash card mobile check"`
	Items         []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
}

// InvoiceFilterRequest represents invoice listing filter parameters
type InvoiceFilterRequest struct {
	Search  string `form:"search"`
	From    string `form:"from"`
	To      string `form:"to"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
