package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/nyamari/meatpos-api/internal/domain/entity"
	"github.com/nyamari/meatpos-api/pkg/pagination"
)

// ProductRepository defines the interface for catalog data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// GetByIDs retrieves multiple products by their IDs in a single query
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// List returns products ordered by name with optional search/category filters
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
	// UpdateStock sets an absolute stock value (last write wins)
	UpdateStock(ctx context.Context, id uuid.UUID, stockKg float64) error
	// LowStock returns products with stock_kg strictly below the threshold,
	// ordered ascending by stock
	LowStock(ctx context.Context, thresholdKg float64) ([]entity.Product, error)
	// Categories returns the distinct category names in use
	Categories(ctx context.Context) ([]string, error)
}

// ProductFilterParams contains filtering parameters for catalog queries
type ProductFilterParams struct {
	Pagination *pagination.PaginationParams
	// Search matches product name or category by substring
	Search   string
	Category string
}
