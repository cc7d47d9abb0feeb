package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/nyamari/meatpos-api/internal/domain/entity"
	domainRepo "github.com/nyamari/meatpos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{db: db}
}

// CreateWithItems persists the invoice header, its line items, and the stock
// decrements in one transaction. The decrement is conditional:
//
//	UPDATE products SET stock_kg = stock_kg - w WHERE id = ? AND stock_kg >= w
//
// so concurrent sales against the same product serialize on the row without
// application-level locking. Zero rows affected means either insufficient
// stock or a missing product; both abort and roll back everything.
func (r *invoiceRepository) CreateWithItems(ctx context.Context, invoice *entity.Invoice, items []entity.InvoiceItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(invoice).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].InvoiceID = invoice.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}

			result := tx.Model(&entity.Product{}).
				Where("id = ? AND stock_kg >= ?", items[i].ProductID, items[i].WeightKg).
				Update("stock_kg", gorm.Expr("stock_kg - ?", items[i].WeightKg))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				var product entity.Product
				err := tx.First(&product, "id = ?", items[i].ProductID).Error
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &domainRepo.ProductMissingError{
						ProductID:   items[i].ProductID,
						ProductName: items[i].ProductName,
					}
				}
				if err != nil {
					return err
				}
				return &domainRepo.InsufficientStockError{
					ProductID:   items[i].ProductID,
					ProductName: items[i].ProductName,
					AvailableKg: product.StockKg,
					RequestedKg: items[i].WeightKg,
				}
			}
		}

		return nil
	})
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *invoiceRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("invoice_items.created_at ASC") }).
		First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *invoiceRepository) List(ctx context.Context, params *domainRepo.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	var invoices []entity.Invoice
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Invoice{})

	if params.From != nil {
		query = query.Where("created_at >= ?", *params.From)
	}
	if params.To != nil {
		query = query.Where("created_at < ?", *params.To)
	}
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("invoice_number LIKE ? OR customer_name LIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at DESC").
		Find(&invoices).Error

	return invoices, total, err
}
