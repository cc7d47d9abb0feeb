package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/nyamari/meatpos-api/internal/domain/entity"
	"github.com/nyamari/meatpos-api/internal/domain/enum"
	"github.com/nyamari/meatpos-api/internal/domain/repository"
	"github.com/nyamari/meatpos-api/pkg/apperror"
	"github.com/nyamari/meatpos-api/pkg/pagination"
	"github.com/nyamari/meatpos-api/pkg/utils"
)

// SaleService completes sales: it turns a drafted list of line items into a
// persisted invoice with atomically decremented stock.
type SaleService struct {
	invoiceRepo repository.InvoiceRepository
	now         func() time.Time
}

// NewSaleService creates a new sale service
func NewSaleService(invoiceRepo repository.InvoiceRepository) *SaleService {
	return &SaleService{
		invoiceRepo: invoiceRepo,
		now:         time.Now,
	}
}

// SaleItemInput is one drafted line item. TotalPrice is carried through to
// the invoice as-is rather than recomputed from weight and unit price.
type SaleItemInput struct {
	ProductID   uuid.UUID
	ProductName string
	WeightKg    float64
	PricePerKg  float64
	TotalPrice  float64
}

// CompleteSaleInput represents the complete sale input
type CompleteSaleInput struct {
	CustomerName  *string
	CustomerPhone *string
	Items         []SaleItemInput
	PaymentMethod enum.PaymentMethod
}

// CompleteSale finalizes a sale. The invoice header, all line items, and all
// stock decrements are persisted in a single transaction; any failed stock
// check aborts the whole sale leaving no partial state behind.
func (s *SaleService) CompleteSale(ctx context.Context, input *CompleteSaleInput) (*entity.Invoice, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("A sale must contain at least one item")
	}
	if !input.PaymentMethod.Valid() {
		return nil, apperror.NewBadRequestError("Invalid payment method")
	}

	var total float64
	items := make([]entity.InvoiceItem, 0, len(input.Items))
	for _, item := range input.Items {
		total += item.TotalPrice
		items = append(items, entity.InvoiceItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			WeightKg:    item.WeightKg,
			PricePerKg:  item.PricePerKg,
			TotalPrice:  item.TotalPrice,
		})
	}

	invoice := &entity.Invoice{
		InvoiceNumber: utils.GenerateInvoiceNumber(s.now()),
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		TotalAmount:   total,
		PaymentMethod: input.PaymentMethod,
	}

	if err := s.invoiceRepo.CreateWithItems(ctx, invoice, items); err != nil {
		var stockErr *repository.InsufficientStockError
		if errors.As(err, &stockErr) {
			return nil, apperror.NewInsufficientStockError(stockErr.ProductName, stockErr.AvailableKg, stockErr.RequestedKg)
		}
		var missingErr *repository.ProductMissingError
		if errors.As(err, &missingErr) {
			return nil, apperror.NewNotFoundError("Product " + missingErr.ProductName)
		}
		return nil, err
	}

	return s.invoiceRepo.GetWithItems(ctx, invoice.ID)
}

// GetInvoice retrieves an invoice with its line items
func (s *SaleService) GetInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// ListInvoices lists invoices newest first with optional filtering
func (s *SaleService) ListInvoices(ctx context.Context, params *repository.InvoiceFilterParams) (*pagination.PaginatedResult[entity.Invoice], error) {
	invoices, total, err := s.invoiceRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(invoices, pag), nil
}
