package repository

import (
	"context"
	"time"
)

// SalesSummary aggregates invoices over a date range
type SalesSummary struct {
	InvoiceCount   int64   `json:"invoice_count"`
	TotalRevenue   float64 `json:"total_revenue"`
	AverageInvoice float64 `json:"average_invoice"`
}

// DailySalesRow is one day's invoice count and revenue
type DailySalesRow struct {
	Date         time.Time `json:"date"`
	InvoiceCount int64     `json:"invoice_count"`
	Revenue      float64   `json:"revenue"`
}

// TopProductRow aggregates sales of one product over a date range
type TopProductRow struct {
	ProductName string  `json:"product_name"`
	TotalWeight float64 `json:"total_weight_kg"`
	TimesSold   int64   `json:"times_sold"`
	Revenue     float64 `json:"revenue"`
}

// PaymentMethodRow is the invoice count and revenue for one payment method
type PaymentMethodRow struct {
	PaymentMethod string  `json:"payment_method"`
	InvoiceCount  int64   `json:"invoice_count"`
	Revenue       float64 `json:"revenue"`
}

// HourlySalesRow is the invoice count and revenue for one hour of day (0-23)
type HourlySalesRow struct {
	Hour         int     `json:"hour"`
	InvoiceCount int64   `json:"invoice_count"`
	Revenue      float64 `json:"revenue"`
}

// SalesListRow is one invoice in a flat export listing
type SalesListRow struct {
	InvoiceNumber string    `json:"invoice_number"`
	CreatedAt     time.Time `json:"created_at"`
	CustomerName  string    `json:"customer_name"`
	PaymentMethod string    `json:"payment_method"`
	TotalAmount   float64   `json:"total_amount"`
}

// ReportRepository defines read-only aggregation queries over persisted
// invoices and line items. Every call recomputes from scratch; catalog sizes
// are single-shop scale. All ranges are half-open [from, to).
type ReportRepository interface {
	Summary(ctx context.Context, from, to time.Time) (*SalesSummary, error)
	DailySales(ctx context.Context, from, to time.Time) ([]DailySalesRow, error)
	TopProducts(ctx context.Context, from, to time.Time, limit int) ([]TopProductRow, error)
	PaymentBreakdown(ctx context.Context, from, to time.Time) ([]PaymentMethodRow, error)
	HourlySales(ctx context.Context, from, to time.Time) ([]HourlySalesRow, error)
	SalesList(ctx context.Context, from, to time.Time) ([]SalesListRow, error)
}
