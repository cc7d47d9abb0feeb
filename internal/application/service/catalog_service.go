package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/nyamari/meatpos-api/internal/domain/entity"
	"github.com/nyamari/meatpos-api/internal/domain/repository"
	"github.com/nyamari/meatpos-api/pkg/apperror"
	"github.com/nyamari/meatpos-api/pkg/pagination"
)

// CatalogService handles product catalog operations
type CatalogService struct {
	productRepo  repository.ProductRepository
	settingsRepo repository.SettingsRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(productRepo repository.ProductRepository, settingsRepo repository.SettingsRepository) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		settingsRepo: settingsRepo,
	}
}

// AddProductInput represents the add product input
type AddProductInput struct {
	Name        string
	PricePerKg  float64
	StockKg     float64
	Category    string
	Description *string
	ImagePath   *string
}

// AddProduct creates a new catalog product with the caller-supplied initial stock
func (s *CatalogService) AddProduct(ctx context.Context, input *AddProductInput) (*entity.Product, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Product name is required")
	}
	if input.PricePerKg <= 0 {
		return nil, apperror.NewBadRequestError("Price per kg must be positive")
	}
	if input.StockKg < 0 {
		return nil, apperror.NewBadRequestError("Initial stock cannot be negative")
	}

	product := &entity.Product{
		Name:        input.Name,
		PricePerKg:  input.PricePerKg,
		StockKg:     input.StockKg,
		Category:    input.Category,
		Description: input.Description,
		ImagePath:   input.ImagePath,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct retrieves a product by ID
func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists products ordered by name with optional filters
func (s *CatalogService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// UpdateProductInput is an explicit partial update: only non-nil fields are
// applied. Replaces the dynamic field-subset update of the legacy system.
type UpdateProductInput struct {
	ProductID   uuid.UUID
	Name        *string
	PricePerKg  *float64
	Category    *string
	Description *string
	ImagePath   *string
}

// UpdateProduct applies a partial update to the mutable product fields
func (s *CatalogService) UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperror.NewBadRequestError("Product name cannot be empty")
		}
		product.Name = *input.Name
	}
	if input.PricePerKg != nil {
		if *input.PricePerKg <= 0 {
			return nil, apperror.NewBadRequestError("Price per kg must be positive")
		}
		product.PricePerKg = *input.PricePerKg
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.ImagePath != nil {
		product.ImagePath = input.ImagePath
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// SetStock sets an absolute stock value for a product (last write wins)
func (s *CatalogService) SetStock(ctx context.Context, id uuid.UUID, stockKg float64) (*entity.Product, error) {
	if stockKg < 0 {
		return nil, apperror.NewBadRequestError("Stock cannot be negative")
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if err := s.productRepo.UpdateStock(ctx, id, stockKg); err != nil {
		return nil, err
	}
	return s.productRepo.GetByID(ctx, id)
}

// LowStockProducts returns products with stock below the threshold, ordered
// ascending by stock. A zero threshold means "use the configured default".
func (s *CatalogService) LowStockProducts(ctx context.Context, thresholdKg float64) ([]entity.Product, error) {
	if thresholdKg <= 0 {
		thresholdKg = entity.DefaultLowStockThreshold
		settings, err := s.settingsRepo.Get(ctx)
		if err != nil {
			return nil, err
		}
		if settings != nil && settings.LowStockThreshold > 0 {
			thresholdKg = settings.LowStockThreshold
		}
	}
	return s.productRepo.LowStock(ctx, thresholdKg)
}

// Categories returns the distinct categories in use
func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	return s.productRepo.Categories(ctx)
}
