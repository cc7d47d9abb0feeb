package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nyamari/meatpos-api/internal/domain/entity"
	"github.com/nyamari/meatpos-api/pkg/pagination"
)

// InsufficientStockError reports a line item whose requested weight exceeds
// the product's current stock. The whole sale it belongs to is rolled back.
type InsufficientStockError struct {
	ProductID   uuid.UUID
	ProductName string
	AvailableKg float64
	RequestedKg float64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: available %.3f kg, requested %.3f kg",
		e.ProductName, e.AvailableKg, e.RequestedKg)
}

// ProductMissingError reports a line item referencing a product that no
// longer exists.
type ProductMissingError struct {
	ProductID   uuid.UUID
	ProductName string
}

func (e *ProductMissingError) Error() string {
	return fmt.Sprintf("product %s not found", e.ProductName)
}

// InvoiceRepository defines the interface for invoice data operations
type InvoiceRepository interface {
	// CreateWithItems persists the invoice header and all items, and
	// decrements each referenced product's stock by the sold weight, in a
	// single transaction. If any item's stock check fails the whole
	// operation rolls back and the error is an *InsufficientStockError or
	// *ProductMissingError.
	CreateWithItems(ctx context.Context, invoice *entity.Invoice, items []entity.InvoiceItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	// GetWithItems retrieves an invoice with its line items preloaded
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	// List returns invoices newest first, optionally restricted to a date
	// range and a search term over invoice number / customer name
	List(ctx context.Context, params *InvoiceFilterParams) ([]entity.Invoice, int64, error)
}

// InvoiceFilterParams contains filtering parameters for invoice queries
type InvoiceFilterParams struct {
	Pagination *pagination.PaginationParams
	// From/To bound created_at; both are optional. To is exclusive.
	From   *time.Time
	To     *time.Time
	Search string
}
